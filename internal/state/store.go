package state

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Joshd667/RecipeBliss/internal/recipe"
	"github.com/Joshd667/RecipeBliss/internal/share"
)

// KV is the local key-value storage the snapshot blob persists to.
// Failures are tolerated: the store logs and carries on with its
// in-memory state.
type KV interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// ThemeApplier receives the resolved dark/light decision whenever the
// theme preference is applied. The UI layer implements it.
type ThemeApplier interface {
	ApplyTheme(dark bool)
}

type subscription struct {
	id int
	fn func(State)
}

// Store owns the application state. Reads and writes are serialized by
// a mutex; subscribers are notified synchronously, in registration
// order, after every non-quiet mutation commits.
type Store struct {
	mu      sync.Mutex
	state   State
	subs    []subscription
	nextSub int

	kv         KV
	log        *slog.Logger
	theme      ThemeApplier
	systemDark bool
}

// New creates a store with default state. A nil logger discards.
func New(kv KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Store{state: defaultState(), kv: kv, log: log}
}

// Read returns the current state. Slices and maps inside it are shared
// with the store; callers treat them as read-only and mutate only
// through Mutate/MutateQuiet.
func (s *Store) Read() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mutate applies fn to the state, persists the durable subset, and
// notifies every subscriber with the committed state. When Mutate
// returns, each subscriber has observed the new state at least once;
// none sees a partially applied update. Persistence failure never
// rolls back the in-memory change.
func (s *Store) Mutate(fn func(*State)) {
	s.apply(fn, true)
}

// MutateQuiet is Mutate without the notification pass. It exists for
// callers that immediately perform an equivalent, more surgical
// refresh themselves; anything relying solely on subscriptions will
// miss quiet updates, so use it narrowly.
func (s *Store) MutateQuiet(fn func(*State)) {
	s.apply(fn, false)
}

func (s *Store) apply(fn func(*State), notify bool) {
	s.mu.Lock()
	prevTheme := s.state.ThemeMode
	fn(&s.state)
	if s.state.ThemeMode != prevTheme {
		s.applyThemeLocked()
	}
	s.persistLocked()
	snap := s.state
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	if notify {
		for _, sub := range subs {
			sub.fn(snap)
		}
	}
}

// Subscribe registers fn for every future non-quiet mutation and
// returns its unsubscribe function. The same callback may be
// registered more than once; each registration is independent.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				break
			}
		}
	}
}

// persistLocked writes the durable subset to storage. Called with the
// mutex held. Storage trouble is logged and swallowed; state and
// storage are allowed to diverge rather than failing the mutation.
func (s *Store) persistLocked() {
	if s.kv == nil {
		return
	}
	raw, err := json.Marshal(snapshot(s.state))
	if err != nil {
		s.log.Warn("encode state snapshot", "error", err)
		return
	}
	if err := s.kv.Put(stateKey, raw); err != nil {
		s.log.Warn("persist state snapshot", "error", err)
	}
}

// InitOptions configures the one-time startup sequence.
type InitOptions struct {
	Catalog     []recipe.Recipe
	UserRecipes []recipe.Recipe
	RawURL      string       // URL the app was opened with, if any
	Theme       ThemeApplier // may be nil
	SystemDark  bool         // terminal/system background at startup
}

// Initialize restores the persisted subset, installs the combined
// recipe collection, applies the theme preference, and parses share
// parameters out of the opening URL. The parameters are returned for
// the caller to act on; the store does not open import flows itself.
// Missing, empty, or corrupt storage falls back to defaults silently.
// Subscribers are notified once at the end.
func (s *Store) Initialize(opts InitOptions) share.Params {
	s.mu.Lock()

	st := defaultState()
	if s.kv != nil {
		raw, err := s.kv.Get(stateKey)
		switch {
		case err != nil:
			s.log.Warn("load state snapshot", "error", err)
		case raw != nil:
			restore(raw, &st, s.log)
		}
	}

	st.Recipes = append(append([]recipe.Recipe(nil), opts.Catalog...), opts.UserRecipes...)
	s.state = st
	s.theme = opts.Theme
	s.systemDark = opts.SystemDark
	s.applyThemeLocked()

	snap := s.state
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
	return share.ParseParams(opts.RawURL)
}

// SystemThemeChanged records a change in the system theme and
// re-applies it, but only while the preference is "system".
func (s *Store) SystemThemeChanged(dark bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.systemDark = dark
	if s.state.ThemeMode == ThemeSystem {
		s.applyThemeLocked()
	}
}

func (s *Store) applyThemeLocked() {
	if s.theme == nil {
		return
	}
	dark := s.state.ThemeMode == ThemeDark ||
		(s.state.ThemeMode == ThemeSystem && s.systemDark)
	s.theme.ApplyTheme(dark)
}
