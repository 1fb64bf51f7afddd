package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
	"github.com/hengtai25/portfolio-api/pkg/apperror"
)

func seedRegistry(t *testing.T) *portfolio.Registry {
	t.Helper()
	registry := portfolio.NewRegistry()
	for _, v := range []string{"alpha", "beta"} {
		p, err := portfolio.New("pf-"+v, v,
			portfolio.Profile{Name: v, Title: "t", Greeting: "g", Description: "d"},
			nil,
			nil,
			portfolio.ContactInfo{Email: v + "@example.com"},
		)
		require.NoError(t, err)
		registry.Register(v, p)
	}
	require.NoError(t, registry.SetDefault("alpha"))
	return registry
}

func TestResolutionPriority(t *testing.T) {
	registry := seedRegistry(t)

	m := NewManager(registry, ResolveOptions{})
	assert.Equal(t, "alpha", m.CurrentVersion())

	m = NewManager(registry, ResolveOptions{QueryParam: "beta"})
	assert.Equal(t, "beta", m.CurrentVersion())

	m = NewManager(registry, ResolveOptions{Explicit: "alpha", QueryParam: "beta"})
	assert.Equal(t, "alpha", m.CurrentVersion())
}

func TestSwitchVersionDefersValidation(t *testing.T) {
	registry := seedRegistry(t)
	m := NewManager(registry, ResolveOptions{})

	m.SwitchVersion("gamma")
	assert.Equal(t, "gamma", m.CurrentVersion())

	_, err := m.Profile()
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGettersFollowActiveVersion(t *testing.T) {
	registry := seedRegistry(t)
	m := NewManager(registry, ResolveOptions{})

	profile, err := m.Profile()
	require.NoError(t, err)
	assert.Equal(t, "alpha", profile.Name)

	m.SwitchVersion("beta")
	contact, err := m.ContactInfo()
	require.NoError(t, err)
	assert.Equal(t, "beta@example.com", contact.Email)
}
