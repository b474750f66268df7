package app

import (
	"sync"
)

// Keys persisted across sessions. The auth token key exists only for the
// legacy login path; the gateway-backed path keeps its own session state.
const (
	rememberedLoginKey = "rememberedUsername"
	legacyAuthTokenKey = "authToken"
)

// KeyStore is durable client-side key-value storage.
type KeyStore interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
}

// MemoryStore is an in-process KeyStore.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

func (s *MemoryStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// RememberLogin saves the login identifier when remember-me is checked and
// clears it otherwise.
func RememberLogin(store KeyStore, login string, remember bool) {
	if remember {
		store.Set(rememberedLoginKey, login)
		return
	}
	store.Delete(rememberedLoginKey)
}

// RememberedLogin returns the saved login identifier, empty when none.
func RememberedLogin(store KeyStore) string {
	return store.Get(rememberedLoginKey)
}

// SaveLegacyToken caches the legacy auth token for the session.
func SaveLegacyToken(store KeyStore, token string) {
	store.Set(legacyAuthTokenKey, token)
}

// LegacyToken returns the cached legacy auth token, empty when none.
func LegacyToken(store KeyStore) string {
	return store.Get(legacyAuthTokenKey)
}

// ClearLegacyToken drops the cached legacy auth token.
func ClearLegacyToken(store KeyStore) {
	store.Delete(legacyAuthTokenKey)
}
