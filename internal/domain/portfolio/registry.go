package portfolio

import (
	"sync"

	"github.com/hengtai25/portfolio-api/pkg/apperror"
)

// PreviewVersion is the reserved registry slot the editor mirrors its
// draft into so a read-only preview surface can render work in progress.
const PreviewVersion = "preview"

// Registry is the canonical in-memory store of portfolio versions.
// Exactly one registered version is the default at all times.
type Registry struct {
	mu             sync.Mutex
	portfolios     map[string]*Portfolio
	order          []string
	defaultVersion string
}

func NewRegistry() *Registry {
	return &Registry{
		portfolios: make(map[string]*Portfolio),
	}
}

// Register inserts or overwrites the portfolio stored under version. The
// first registered version becomes the default until SetDefault repoints
// it, so the default always names a registered version.
func (r *Registry) Register(version string, p *Portfolio) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.portfolios[version]; !exists {
		r.order = append(r.order, version)
	}
	r.portfolios[version] = p
	if r.defaultVersion == "" {
		r.defaultVersion = version
	}
}

// Get returns the portfolio for version, or for the default version when
// version is empty.
func (r *Registry) Get(version string) (*Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := version
	if v == "" {
		v = r.defaultVersion
	}
	p, ok := r.portfolios[v]
	if !ok {
		return nil, apperror.NewNotFound("portfolio version", v)
	}
	return p, nil
}

func (r *Registry) Has(version string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.portfolios[version]
	return ok
}

// SetDefault repoints the default version. The version must be registered.
func (r *Registry) SetDefault(version string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.portfolios[version]; !ok {
		return apperror.NewNotFound("portfolio version", version)
	}
	r.defaultVersion = version
	return nil
}

// AvailableVersions returns version keys in registration order.
func (r *Registry) AvailableVersions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func (r *Registry) DefaultVersion() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defaultVersion
}
