package sessionsync

import (
	"context"
	"encoding/json"
	"sync"
)

// Storage keys shared by all tabs.
const (
	DefaultAuthKey = "sb-auth-token"
	ThemeKey       = "theme"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Storage is the per-profile key/value store the tabs share.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// MemoryStorage is a Storage kept in memory.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
}

func (m *MemoryStorage) Remove(key string) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}

type authState struct {
	User *struct {
		ID string `json:"id"`
	} `json:"user"`
}

// UserIDFromAuthState returns the user id in a serialized auth state, or ""
// when the value is empty, unparsable, or has no user.
func UserIDFromAuthState(raw string) string {
	if raw == "" {
		return ""
	}
	var st authState
	if err := json.Unmarshal([]byte(raw), &st); err != nil || st.User == nil {
		return ""
	}
	return st.User.ID
}

// ==================== Tab ====================

// Tab is one tab's cached session: who is signed in, which corporation is
// selected, and the theme.
type Tab struct {
	mu          sync.Mutex
	storage     Storage
	authKey     string
	userID      string
	corporation string
	theme       string

	// OnSessionChanged runs when another tab signs in as someone else or
	// signs out. newUserID is "" on sign-out.
	OnSessionChanged func(oldUserID, newUserID string)
	// OnRefresh runs when the tab regains focus and should refetch.
	OnRefresh func()
}

// NewTab restores the session from storage. When no theme is stored it
// starts from the system preference and persists that choice.
func NewTab(storage Storage, authKey string, systemPrefersDark bool) *Tab {
	if authKey == "" {
		authKey = DefaultAuthKey
	}
	t := &Tab{storage: storage, authKey: authKey}

	if raw, ok := storage.Get(authKey); ok {
		t.userID = UserIDFromAuthState(raw)
	}
	if theme, ok := storage.Get(ThemeKey); ok && validTheme(theme) {
		t.theme = theme
	} else {
		t.theme = ThemeLight
		if systemPrefersDark {
			t.theme = ThemeDark
		}
		storage.Set(ThemeKey, t.theme)
	}
	return t
}

func validTheme(s string) bool { return s == ThemeLight || s == ThemeDark }

func (t *Tab) UserID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.userID
}

func (t *Tab) Corporation() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.corporation
}

func (t *Tab) SelectCorporation(uuid string) {
	t.mu.Lock()
	t.corporation = uuid
	t.mu.Unlock()
}

func (t *Tab) Theme() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.theme
}

// SetTheme persists theme; other tabs pick it up from the storage event.
func (t *Tab) SetTheme(theme string) bool {
	if !validTheme(theme) {
		return false
	}
	t.mu.Lock()
	t.theme = theme
	t.mu.Unlock()
	t.storage.Set(ThemeKey, theme)
	return true
}

// HandleStorageEvent reconciles the tab with a change made elsewhere.
func (t *Tab) HandleStorageEvent(ev StorageEvent) {
	switch ev.Key {
	case ThemeKey:
		if validTheme(ev.NewValue) {
			t.mu.Lock()
			t.theme = ev.NewValue
			t.mu.Unlock()
		}
	case t.authKey:
		t.applyUser(UserIDFromAuthState(ev.NewValue))
	}
}

// HandleFocus re-reads the auth state, which catches events this tab missed,
// then asks for a refetch.
func (t *Tab) HandleFocus() {
	raw, _ := t.storage.Get(t.authKey)
	t.applyUser(UserIDFromAuthState(raw))
	if t.OnRefresh != nil {
		t.OnRefresh()
	}
}

func (t *Tab) applyUser(newUserID string) {
	t.mu.Lock()
	oldUserID := t.userID
	if newUserID == oldUserID {
		t.mu.Unlock()
		return
	}
	t.userID = newUserID
	if newUserID == "" {
		t.corporation = ""
	}
	handler := t.OnSessionChanged
	t.mu.Unlock()

	if handler != nil {
		handler(oldUserID, newUserID)
	}
}

// Run applies events from sub until ctx ends or the subscription closes.
func (t *Tab) Run(ctx context.Context, sub *Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			t.HandleStorageEvent(ev)
		}
	}
}
