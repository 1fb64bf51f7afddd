package editor

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/hengtai25/portfolio-api/internal/application/service"
	"github.com/hengtai25/portfolio-api/internal/domain/portfolio"
	"github.com/hengtai25/portfolio-api/pkg/apperror"
	"github.com/hengtai25/portfolio-api/pkg/logger"
)

// Storage keys. Changing one orphans every deployment's saved state.
const (
	draftKey            = "portfolio:editor-draft"
	customVersionsKey   = "portfolio:custom-versions"
	publishedVersionKey = "portfolio:published-version"
)

const previewPortfolioID = "portfolio-preview"

const (
	EventSaved     = "portfolio.saved"
	EventPublished = "portfolio.published"
)

type storedDraft struct {
	Version string           `json:"version"`
	Draft   *portfolio.Draft `json:"draft"`
}

// Service is the draft editing workflow. It holds at most one draft at a
// time, tracks whether it diverged from its source version, mirrors it
// into the registry's preview slot, and persists work in progress so a
// restart resumes mid-edit.
//
// Storage is best-effort: read and write failures are logged and the
// in-memory state stays authoritative.
type Service struct {
	mu       sync.Mutex
	registry *portfolio.Registry
	store    service.KVStore
	events   service.EventPublisher
	logger   logger.Logger

	currentVersion string
	draft          *portfolio.Draft
	dirty          bool
	customVersions map[string]*portfolio.Draft

	subscribers map[int]func()
	nextSubID   int
}

func NewService(registry *portfolio.Registry, store service.KVStore, events service.EventPublisher, log logger.Logger) *Service {
	s := &Service{
		registry:       registry,
		store:          store,
		events:         events,
		logger:         log,
		customVersions: make(map[string]*portfolio.Draft),
		subscribers:    make(map[int]func()),
	}
	s.restore(context.Background())
	return s
}

// CurrentVersion returns the version label the draft belongs to, or ""
// when nothing is loaded.
func (s *Service) CurrentVersion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentVersion
}

// IsDirty reports whether the draft has unsaved edits.
func (s *Service) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Draft returns an independent copy of the current draft, or nil when
// nothing is loaded.
func (s *Service) Draft() *portfolio.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil
	}
	return s.draft.Clone()
}

// LoadVersion reads a registered portfolio into a fresh draft, discarding
// any prior draft and dirty state.
func (s *Service) LoadVersion(ctx context.Context, version string) error {
	s.mu.Lock()
	p, err := s.registry.Get(version)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.currentVersion = version
	s.draft = portfolio.NewDraft(p)
	s.dirty = false
	s.mirrorPreview()
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	notify(subs)
	return nil
}

// SaveCurrentVersion commits the draft back into the registry under its
// own version label and snapshots it to storage. No-op without a draft.
func (s *Service) SaveCurrentVersion(ctx context.Context) error {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return nil
	}
	if err := s.commitLocked(ctx, s.currentVersion); err != nil {
		s.mu.Unlock()
		return err
	}
	subs := s.snapshotSubscribers()
	version := s.currentVersion
	s.mu.Unlock()

	s.publishEvent(ctx, EventSaved, map[string]string{"version": version})
	notify(subs)
	return nil
}

// SaveAsNewVersion commits the draft under a new version label and makes
// that label current. The label must not already be registered.
func (s *Service) SaveAsNewVersion(ctx context.Context, name string) error {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return nil
	}
	if s.registry.Has(name) {
		s.mu.Unlock()
		return apperror.NewConflict("portfolio version", "name", name)
	}
	s.draft.Version = name
	s.currentVersion = name
	if err := s.commitLocked(ctx, name); err != nil {
		s.mu.Unlock()
		return err
	}
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	s.publishEvent(ctx, EventSaved, map[string]string{"version": name})
	notify(subs)
	return nil
}

// DiscardChanges reloads the current version from the registry, dropping
// in-memory edits and the persisted work-in-progress draft. Named
// version snapshots are untouched.
func (s *Service) DiscardChanges(ctx context.Context) error {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return nil
	}
	version := s.currentVersion
	s.mu.Unlock()

	if err := s.LoadVersion(ctx, version); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, draftKey); err != nil && !errors.Is(err, service.ErrKeyNotFound) {
		s.logger.Warn("failed to clear persisted draft", zap.Error(err))
	}
	return nil
}

// PublishVersion repoints the registry default to version and persists
// the pointer. When publishing the version currently being edited with
// unsaved changes, those changes are saved first.
func (s *Service) PublishVersion(ctx context.Context, version string) error {
	s.mu.Lock()
	if s.draft != nil && version == s.currentVersion && s.dirty {
		if err := s.commitLocked(ctx, version); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	if err := s.registry.SetDefault(version); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.store.Set(ctx, publishedVersionKey, []byte(version)); err != nil {
		s.logger.Warn("failed to persist published version", zap.Error(err))
	}
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	s.publishEvent(ctx, EventPublished, map[string]string{"version": version})
	notify(subs)
	return nil
}

// Subscribe registers a callback invoked after every successful state
// change. The returned function removes the subscription.
func (s *Service) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// commitLocked reifies the draft into a canonical portfolio and registers
// it under version. Caller holds s.mu.
func (s *Service) commitLocked(ctx context.Context, version string) error {
	id := ""
	if existing, err := s.registry.Get(version); err == nil {
		id = existing.ID
	}
	p, err := s.draft.ToPortfolio(id)
	if err != nil {
		return apperror.NewInvalidInput("draft failed validation", err)
	}
	s.registry.Register(version, p)
	s.dirty = false
	s.customVersions[version] = s.draft.Clone()
	s.persistCustomVersions(ctx)
	// The stored work-in-progress draft carries the version label a
	// restart resumes under, so it must follow every commit.
	s.persistDraft(ctx)
	return nil
}

// mirrorPreview registers the draft under the reserved preview slot.
// Caller holds s.mu. A draft that is temporarily invalid is skipped.
func (s *Service) mirrorPreview() {
	if s.draft == nil {
		return
	}
	p, err := s.draft.ToPortfolio(previewPortfolioID)
	if err != nil {
		s.logger.Warn("draft not previewable", zap.Error(err))
		return
	}
	s.registry.Register(portfolio.PreviewVersion, p)
}

func (s *Service) persistDraft(ctx context.Context) {
	payload, err := json.Marshal(storedDraft{Version: s.currentVersion, Draft: s.draft})
	if err != nil {
		s.logger.Warn("failed to serialize draft", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, draftKey, payload); err != nil {
		s.logger.Warn("failed to persist draft", zap.Error(err))
	}
}

func (s *Service) persistCustomVersions(ctx context.Context) {
	payload, err := json.Marshal(s.customVersions)
	if err != nil {
		s.logger.Warn("failed to serialize version snapshots", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, customVersionsKey, payload); err != nil {
		s.logger.Warn("failed to persist version snapshots", zap.Error(err))
	}
}

// restore replays persisted state after a restart: named version
// snapshots are re-registered, the published pointer is reapplied, and
// an in-progress draft resumes as dirty.
func (s *Service) restore(ctx context.Context) {
	if data, err := s.store.Get(ctx, customVersionsKey); err == nil {
		versions := make(map[string]*portfolio.Draft)
		if err := json.Unmarshal(data, &versions); err != nil {
			s.logger.Warn("corrupt version snapshots in storage", zap.Error(err))
		} else {
			for name, d := range versions {
				s.customVersions[name] = d
				if s.registry.Has(name) {
					continue
				}
				p, err := d.ToPortfolio("")
				if err != nil {
					s.logger.Warn("skipping invalid version snapshot", zap.String("version", name), zap.Error(err))
					continue
				}
				s.registry.Register(name, p)
			}
		}
	} else if !errors.Is(err, service.ErrKeyNotFound) {
		s.logger.Warn("failed to read version snapshots", zap.Error(err))
	}

	if data, err := s.store.Get(ctx, publishedVersionKey); err == nil {
		version := string(data)
		if s.registry.Has(version) {
			if err := s.registry.SetDefault(version); err != nil {
				s.logger.Warn("failed to reapply published version", zap.Error(err))
			}
		}
	} else if !errors.Is(err, service.ErrKeyNotFound) {
		s.logger.Warn("failed to read published version", zap.Error(err))
	}

	if data, err := s.store.Get(ctx, draftKey); err == nil {
		var stored storedDraft
		if err := json.Unmarshal(data, &stored); err != nil || stored.Draft == nil {
			s.logger.Warn("corrupt draft in storage", zap.Error(err))
			return
		}
		s.currentVersion = stored.Version
		s.draft = stored.Draft
		// An unsaved draft in storage means edits were pending.
		s.dirty = true
		s.mirrorPreview()
	} else if !errors.Is(err, service.ErrKeyNotFound) {
		s.logger.Warn("failed to read draft", zap.Error(err))
	}
}

// snapshotSubscribers copies the callback list so notification can run
// outside the lock. Caller holds s.mu.
func (s *Service) snapshotSubscribers() []func() {
	subs := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}

func (s *Service) publishEvent(ctx context.Context, eventType string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishPortfolioEvent(ctx, eventType, payload); err != nil {
		s.logger.Warn("failed to publish portfolio event", zap.String("type", eventType), zap.Error(err))
	}
}
