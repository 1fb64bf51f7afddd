package version

import (
	"sync"

	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
)

// Manager resolves which portfolio version is active and exposes
// read-only accessors into it. Resolution order at construction time:
// explicit argument, then the request's version parameter, then the
// registry default.
type Manager struct {
	mu       sync.Mutex
	registry *portfolio.Registry
	current  string
}

// ResolveOptions carries the candidate version sources in priority order.
type ResolveOptions struct {
	Explicit   string
	QueryParam string
}

func NewManager(registry *portfolio.Registry, opts ResolveOptions) *Manager {
	current := registry.DefaultVersion()
	if opts.QueryParam != "" {
		current = opts.QueryParam
	}
	if opts.Explicit != "" {
		current = opts.Explicit
	}
	return &Manager{registry: registry, current: current}
}

// SwitchVersion repoints the active version without validating it; an
// unknown version surfaces as NotFound on the next data access.
func (m *Manager) SwitchVersion(v string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = v
}

func (m *Manager) CurrentVersion() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Manager) Portfolio() (*portfolio.Portfolio, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registry.Get(m.current)
}

func (m *Manager) Profile() (portfolio.Profile, error) {
	p, err := m.Portfolio()
	if err != nil {
		return portfolio.Profile{}, err
	}
	return p.Profile, nil
}

func (m *Manager) SkillCategories() ([]portfolio.SkillCategory, error) {
	p, err := m.Portfolio()
	if err != nil {
		return nil, err
	}
	return p.SkillCategories, nil
}

func (m *Manager) Projects() ([]portfolio.Project, error) {
	p, err := m.Portfolio()
	if err != nil {
		return nil, err
	}
	return p.Projects, nil
}

func (m *Manager) ContactInfo() (portfolio.ContactInfo, error) {
	p, err := m.Portfolio()
	if err != nil {
		return portfolio.ContactInfo{}, err
	}
	return p.Contact, nil
}

// AvailableVersions lists registered version keys in registration order.
func (m *Manager) AvailableVersions() []string {
	return m.registry.AvailableVersions()
}
