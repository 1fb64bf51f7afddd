package themesvc

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hengtai25/portfolio-api/internal/application/service"
	"github.com/hengtai25/portfolio-api/internal/domain/theme"
	"github.com/hengtai25/portfolio-api/pkg/apperror"
	"github.com/hengtai25/portfolio-api/pkg/logger"
)

const (
	themeKey        = "portfolio:theme"
	customThemesKey = "portfolio:custom-themes"
	pairsKey        = "portfolio:custom-theme-pairs"
	seasonalKey     = "portfolio:seasonal-themes"
)

const EventThemeChanged = "theme.changed"

// storedTheme is the minimal persisted descriptor of the active theme.
type storedTheme struct {
	PresetID      theme.PresetID `json:"presetId"`
	Mode          theme.Mode     `json:"mode"`
	CustomThemeID string         `json:"customThemeId,omitempty"`
}

// ResolveOptions carries the initial theme sources in priority order:
// a preset named directly by the request, a season named by the
// request, the persisted descriptor, then the seasonal default for the
// current date.
type ResolveOptions struct {
	ThemeParam  string
	SeasonParam string
	DefaultMode theme.Mode
	Now         time.Time
}

// Service manages the active theme, user-authored custom themes, the
// light/dark pairing relation between them, and per-season default
// presets. All state is persisted best-effort; memory stays
// authoritative when storage misbehaves.
type Service struct {
	mu     sync.Mutex
	store  service.KVStore
	events service.EventPublisher
	logger logger.Logger

	current      theme.Theme
	customThemes map[string]theme.Theme
	pairs        map[string]string
	seasonal     theme.SeasonalMap

	subscribers map[int]func(theme.Theme)
	nextSubID   int
}

func NewService(store service.KVStore, events service.EventPublisher, log logger.Logger, opts ResolveOptions) *Service {
	s := &Service{
		store:        store,
		events:       events,
		logger:       log,
		customThemes: make(map[string]theme.Theme),
		pairs:        make(map[string]string),
		seasonal:     theme.DefaultSeasonalMap(),
		subscribers:  make(map[int]func(theme.Theme)),
	}
	ctx := context.Background()
	s.restore(ctx)
	s.current = s.resolveInitial(opts)
	return s
}

// Current returns the active theme.
func (s *Service) Current() theme.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CSSVariables returns the active theme's presentation variables.
func (s *Service) CSSVariables() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.CSSVariables()
}

// SetPreset switches to the catalog preset for id, preserving the
// current mode. Unknown ids resolve to the default preset.
func (s *Service) SetPreset(ctx context.Context, id theme.PresetID) {
	s.mu.Lock()
	next := theme.GetPreset(id, s.current.Mode)
	s.applyLocked(ctx, next)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	s.notify(ctx, next, subs)
}

// SetMode switches the active theme to the given mode. A paired custom
// theme wins; an unpaired custom theme is re-synthesized from its
// primary and accent colors; presets are fetched at the new mode.
func (s *Service) SetMode(ctx context.Context, mode theme.Mode) error {
	s.mu.Lock()
	if s.current.Mode == mode {
		s.mu.Unlock()
		return nil
	}

	var next theme.Theme
	switch {
	case s.current.IsCustom():
		if partnerID, ok := s.pairs[s.current.ID]; ok {
			if partner, exists := s.customThemes[partnerID]; exists && partner.Mode == mode {
				next = partner
				break
			}
		}
		palette, err := theme.PaletteFromPrimaryAndAccent(s.current.Colors.Primary, s.current.Colors.Accent, mode, "")
		if err != nil {
			s.mu.Unlock()
			return apperror.NewInvalidInput("cannot derive palette for mode switch", err)
		}
		// Theme identity is by id; the re-synthesized palette is still
		// the same theme, and the persisted descriptor must keep
		// resolving to it after a restart.
		next = theme.Theme{
			ID:         s.current.ID,
			Name:       s.current.Name,
			PresetID:   theme.PresetCustom,
			Mode:       mode,
			Colors:     palette,
			Typography: s.current.Typography,
			CustomCSS:  s.current.CustomCSS,
		}
	default:
		next = theme.GetPreset(s.current.PresetID, mode)
	}

	s.applyLocked(ctx, next)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	s.notify(ctx, next, subs)
	return nil
}

// ToggleMode flips between light and dark.
func (s *Service) ToggleMode(ctx context.Context) error {
	return s.SetMode(ctx, s.Current().Mode.Opposite())
}

// SetTheme installs an arbitrary theme directly.
func (s *Service) SetTheme(ctx context.Context, t theme.Theme) error {
	validated, err := theme.NewTheme(t)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.applyLocked(ctx, validated)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	s.notify(ctx, validated, subs)
	return nil
}

// SaveCustomTheme stores or replaces a user-authored theme. Saving does
// not activate the theme.
func (s *Service) SaveCustomTheme(ctx context.Context, t theme.Theme) error {
	validated, err := theme.NewTheme(t)
	if err != nil {
		return err
	}
	if !validated.IsCustom() {
		return apperror.NewInvalidInput("only custom themes can be saved", nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customThemes[validated.ID] = validated
	s.persistCustomThemes(ctx)
	return nil
}

// DeleteCustomTheme removes a custom theme, any pairing that references
// it, and falls back to the default preset when it was active.
func (s *Service) DeleteCustomTheme(ctx context.Context, id string) error {
	s.mu.Lock()
	if _, ok := s.customThemes[id]; !ok {
		s.mu.Unlock()
		return apperror.NewNotFound("custom theme", id)
	}
	delete(s.customThemes, id)
	s.unpairLocked(ctx, id)
	s.persistCustomThemes(ctx)

	var subs []func(theme.Theme)
	var next theme.Theme
	activated := false
	if s.current.ID == id {
		next = theme.GetPreset(theme.PresetDefault, s.current.Mode)
		s.applyLocked(ctx, next)
		subs = s.snapshotSubscribers()
		activated = true
	}
	s.mu.Unlock()

	if activated {
		s.notify(ctx, next, subs)
	}
	return nil
}

// CustomTheme returns a stored custom theme by id.
func (s *Service) CustomTheme(id string) (theme.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.customThemes[id]
	if !ok {
		return theme.Theme{}, apperror.NewNotFound("custom theme", id)
	}
	return t, nil
}

// CustomThemes lists stored custom themes ordered by id.
func (s *Service) CustomThemes() []theme.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]theme.Theme, 0, len(s.customThemes))
	for _, t := range s.customThemes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PairCustomThemes associates a light custom theme with a dark one so
// mode switches move between them. The association is symmetric.
func (s *Service) PairCustomThemes(ctx context.Context, lightID, darkID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	light, ok := s.customThemes[lightID]
	if !ok {
		return apperror.NewNotFound("custom theme", lightID)
	}
	dark, ok := s.customThemes[darkID]
	if !ok {
		return apperror.NewNotFound("custom theme", darkID)
	}
	if light.Mode != theme.ModeLight || dark.Mode != theme.ModeDark {
		return apperror.NewInvalidInput("Must pair a light theme with a dark theme", nil)
	}

	// A theme has at most one partner; re-pairing dissolves old links.
	s.removePairLocked(lightID)
	s.removePairLocked(darkID)
	s.pairs[lightID] = darkID
	s.pairs[darkID] = lightID
	s.persistPairs(ctx)
	return nil
}

// UnpairCustomTheme removes both directions of id's pairing, if any.
func (s *Service) UnpairCustomTheme(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unpairLocked(ctx, id)
}

// PairedThemeID returns the partner theme id, or "" when unpaired.
func (s *Service) PairedThemeID(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pairs[id]
}

// SetSeasonalTheme records a season's default preset and applies it at
// the current mode as a live preview.
func (s *Service) SetSeasonalTheme(ctx context.Context, season theme.Season, presetID theme.PresetID) error {
	if !season.IsValid() {
		return apperror.NewInvalidInput("unknown season", nil)
	}
	if !presetID.IsValid() || presetID == theme.PresetCustom {
		return apperror.NewInvalidInput("seasonal default must be a catalog preset", nil)
	}
	s.mu.Lock()
	s.seasonal[season] = presetID
	s.persistSeasonal(ctx)
	next := theme.GetPreset(presetID, s.current.Mode)
	s.applyLocked(ctx, next)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()
	s.notify(ctx, next, subs)
	return nil
}

// SeasonalThemes returns a copy of the season to preset map.
func (s *Service) SeasonalThemes() theme.SeasonalMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(theme.SeasonalMap, len(s.seasonal))
	for season, id := range s.seasonal {
		out[season] = id
	}
	return out
}

// Subscribe registers a callback invoked with each newly applied theme.
// The returned function removes the subscription.
func (s *Service) Subscribe(fn func(theme.Theme)) func() {
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

// applyLocked installs t as current and persists the descriptor. Caller
// holds s.mu.
func (s *Service) applyLocked(ctx context.Context, t theme.Theme) {
	s.current = t
	descriptor := storedTheme{PresetID: t.PresetID, Mode: t.Mode}
	if t.IsCustom() {
		descriptor.CustomThemeID = t.ID
	}
	payload, err := json.Marshal(descriptor)
	if err != nil {
		s.logger.Warn("failed to serialize theme descriptor", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, themeKey, payload); err != nil {
		s.logger.Warn("failed to persist theme descriptor", zap.Error(err))
	}
}

func (s *Service) unpairLocked(ctx context.Context, id string) {
	if _, ok := s.pairs[id]; !ok {
		return
	}
	s.removePairLocked(id)
	s.persistPairs(ctx)
}

func (s *Service) removePairLocked(id string) {
	if partner, ok := s.pairs[id]; ok {
		delete(s.pairs, partner)
		delete(s.pairs, id)
	}
}

func (s *Service) persistCustomThemes(ctx context.Context) {
	themes := make([]theme.Theme, 0, len(s.customThemes))
	for _, t := range s.customThemes {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].ID < themes[j].ID })
	payload, err := json.Marshal(themes)
	if err != nil {
		s.logger.Warn("failed to serialize custom themes", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, customThemesKey, payload); err != nil {
		s.logger.Warn("failed to persist custom themes", zap.Error(err))
	}
}

func (s *Service) persistPairs(ctx context.Context) {
	payload, err := json.Marshal(s.pairs)
	if err != nil {
		s.logger.Warn("failed to serialize theme pairs", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, pairsKey, payload); err != nil {
		s.logger.Warn("failed to persist theme pairs", zap.Error(err))
	}
}

func (s *Service) persistSeasonal(ctx context.Context) {
	payload, err := json.Marshal(s.seasonal)
	if err != nil {
		s.logger.Warn("failed to serialize seasonal map", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, seasonalKey, payload); err != nil {
		s.logger.Warn("failed to persist seasonal map", zap.Error(err))
	}
}

func (s *Service) restore(ctx context.Context) {
	if data, err := s.store.Get(ctx, customThemesKey); err == nil {
		var themes []theme.Theme
		if err := json.Unmarshal(data, &themes); err != nil {
			s.logger.Warn("corrupt custom themes in storage", zap.Error(err))
		} else {
			for _, t := range themes {
				if err := t.Validate(); err != nil {
					s.logger.Warn("skipping invalid stored theme", zap.String("id", t.ID), zap.Error(err))
					continue
				}
				s.customThemes[t.ID] = t
			}
		}
	} else if !errors.Is(err, service.ErrKeyNotFound) {
		s.logger.Warn("failed to read custom themes", zap.Error(err))
	}

	if data, err := s.store.Get(ctx, pairsKey); err == nil {
		pairs := make(map[string]string)
		if err := json.Unmarshal(data, &pairs); err != nil {
			s.logger.Warn("corrupt theme pairs in storage", zap.Error(err))
		} else {
			s.pairs = pairs
		}
	} else if !errors.Is(err, service.ErrKeyNotFound) {
		s.logger.Warn("failed to read theme pairs", zap.Error(err))
	}

	if data, err := s.store.Get(ctx, seasonalKey); err == nil {
		stored := make(theme.SeasonalMap)
		if err := json.Unmarshal(data, &stored); err != nil {
			s.logger.Warn("corrupt seasonal map in storage", zap.Error(err))
		} else {
			for season, id := range stored {
				if season.IsValid() && id.IsValid() {
					s.seasonal[season] = id
				}
			}
		}
	} else if !errors.Is(err, service.ErrKeyNotFound) {
		s.logger.Warn("failed to read seasonal map", zap.Error(err))
	}
}

// resolveInitial picks the startup theme. Runs before the service is
// shared, so no locking.
func (s *Service) resolveInitial(opts ResolveOptions) theme.Theme {
	mode := opts.DefaultMode
	if !mode.IsValid() {
		mode = theme.ModeLight
	}

	var descriptor *storedTheme
	if data, err := s.store.Get(context.Background(), themeKey); err == nil {
		var stored storedTheme
		if err := json.Unmarshal(data, &stored); err != nil {
			s.logger.Warn("corrupt theme descriptor in storage", zap.Error(err))
		} else {
			descriptor = &stored
			if stored.Mode.IsValid() {
				mode = stored.Mode
			}
		}
	} else if !errors.Is(err, service.ErrKeyNotFound) {
		s.logger.Warn("failed to read theme descriptor", zap.Error(err))
	}

	if id := theme.PresetID(opts.ThemeParam); opts.ThemeParam != "" && id.IsValid() && id != theme.PresetCustom {
		return theme.GetPreset(id, mode)
	}

	if season := theme.Season(opts.SeasonParam); opts.SeasonParam != "" && season.IsValid() {
		return theme.GetPreset(s.seasonal[season], mode)
	}

	if descriptor != nil {
		if descriptor.CustomThemeID != "" {
			if t, ok := s.customThemes[descriptor.CustomThemeID]; ok {
				return t
			}
		}
		if descriptor.PresetID.IsValid() && descriptor.PresetID != theme.PresetCustom {
			return theme.GetPreset(descriptor.PresetID, mode)
		}
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return theme.GetPreset(s.seasonal[theme.CurrentSeason(now)], mode)
}

func (s *Service) snapshotSubscribers() []func(theme.Theme) {
	subs := make([]func(theme.Theme), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func (s *Service) notify(ctx context.Context, t theme.Theme, subs []func(theme.Theme)) {
	if s.events != nil {
		payload := map[string]string{"themeId": t.ID, "presetId": string(t.PresetID), "mode": string(t.Mode)}
		if err := s.events.PublishThemeEvent(ctx, EventThemeChanged, payload); err != nil {
			s.logger.Warn("failed to publish theme event", zap.Error(err))
		}
	}
	for _, fn := range subs {
		fn(t)
	}
}
