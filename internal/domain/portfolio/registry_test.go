package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hengtai25/portfolio-api/pkg/apperror"
)

func newTestPortfolio(t *testing.T, version, name string) *Portfolio {
	t.Helper()
	p, err := New("pf-"+version, version,
		Profile{Name: name, Title: "t", Greeting: "g", Description: "d"},
		nil,
		nil,
		ContactInfo{Email: "t@example.com"},
	)
	require.NoError(t, err)
	return p
}

func TestRegistryDefaultSwitching(t *testing.T) {
	r := NewRegistry()
	r.Register("alpha", newTestPortfolio(t, "alpha", "A"))
	r.Register("beta", newTestPortfolio(t, "beta", "B"))
	require.NoError(t, r.SetDefault("alpha"))

	p, err := r.Get("")
	require.NoError(t, err)
	assert.Equal(t, "A", p.Profile.Name)

	require.NoError(t, r.SetDefault("beta"))
	p, err = r.Get("")
	require.NoError(t, err)
	assert.Equal(t, "B", p.Profile.Name)

	err = r.SetDefault("gamma")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRegistryGetUnknownVersion(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Contains(t, err.Error(), "nope")
}

func TestRegistryDefaultInvariant(t *testing.T) {
	r := NewRegistry()
	r.Register("alpha", newTestPortfolio(t, "alpha", "A"))
	r.Register("beta", newTestPortfolio(t, "beta", "B"))
	require.NoError(t, r.SetDefault("beta"))

	implicit, err := r.Get("")
	require.NoError(t, err)
	explicit, err := r.Get(r.DefaultVersion())
	require.NoError(t, err)
	assert.Same(t, explicit, implicit)
}

func TestRegistryFirstRegistrationBecomesDefault(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.DefaultVersion())
	_, err := r.Get("")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	r.Register("alpha", newTestPortfolio(t, "alpha", "A"))
	assert.Equal(t, "alpha", r.DefaultVersion())
	p, err := r.Get("")
	require.NoError(t, err)
	assert.Equal(t, "A", p.Profile.Name)

	// Later registrations do not steal the default.
	r.Register("beta", newTestPortfolio(t, "beta", "B"))
	assert.Equal(t, "alpha", r.DefaultVersion())
}

func TestRegistryVersionsInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("c", newTestPortfolio(t, "c", "C"))
	r.Register("a", newTestPortfolio(t, "a", "A"))
	r.Register("b", newTestPortfolio(t, "b", "B"))
	// Re-registering must not duplicate the key.
	r.Register("a", newTestPortfolio(t, "a", "A2"))

	assert.Equal(t, []string{"c", "a", "b"}, r.AvailableVersions())
}
