package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-zajac/ghinsights/internal/app"
	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage.
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
	ScanPrefix(prefix []byte, fn func(key []byte, data []byte) error) error
	DeleteKeys(keys ...[]byte) error
}

// Store keeps profile summaries in KVStore, so they survive restarts.
// Store errors are logged and treated as cache misses.
type Store struct {
	kv  KVStore
	now func() time.Time
	l   logrus.FieldLogger
}

// NewStore creates new Store instance. If now is nil, time.Now is used.
func NewStore(kv KVStore, now func() time.Time, l logrus.FieldLogger) *Store {
	if now == nil {
		now = time.Now
	}

	return &Store{
		kv:  kv,
		now: now,
		l:   l.WithField("component", "profileStore"),
	}
}

// Get returns stored summary if it hasn't expired yet.
func (s *Store) Get(login string) (*app.ProfileSummary, bool) {
	summary, _, ok := s.Lookup(login)
	return summary, ok
}

// Lookup works like Get, additionally returning entry's expiration time.
func (s *Store) Lookup(login string) (*app.ProfileSummary, time.Time, bool) {
	data, err := s.kv.ReadKey([]byte(ProfileKey(login)))
	if err != nil {
		s.l.Errorf("reading %s: %v", login, err)
		return nil, time.Time{}, false
	}
	if data == nil {
		return nil, time.Time{}, false
	}

	entry, err := unserializeEntry(data)
	if err != nil {
		s.l.Errorf("unserializing %s: %v", login, err)
		return nil, time.Time{}, false
	}
	if !entry.Expires.After(s.now()) {
		return nil, time.Time{}, false
	}

	return entry.Summary, entry.Expires, true
}

// Set stores summary, overwriting previous entry.
func (s *Store) Set(login string, summary *app.ProfileSummary, ttl time.Duration) {
	data, err := serializeEntry(storeEntry{
		Expires: s.now().Add(ttl),
		Summary: summary,
	})
	if err != nil {
		s.l.Errorf("serializing %s: %v", login, err)
		return
	}
	if err := s.kv.UpdateKey([]byte(ProfileKey(login)), data); err != nil {
		s.l.Errorf("writing %s: %v", login, err)
	}
}

// Purge removes expired and unreadable profile entries. Returns number of removed entries.
func (s *Store) Purge() (int, error) {
	now := s.now()

	var stale [][]byte
	err := s.kv.ScanPrefix([]byte(profileKeyPrefix), func(key []byte, data []byte) error {
		entry, err := unserializeEntry(data)
		if err != nil || !entry.Expires.After(now) {
			stale = append(stale, key)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scanning profile entries: %w", err)
	}
	if err := s.kv.DeleteKeys(stale...); err != nil {
		return 0, fmt.Errorf("deleting stale entries: %w", err)
	}

	return len(stale), nil
}

type storeEntry struct {
	Expires time.Time           `json:"expires"`
	Summary *app.ProfileSummary `json:"summary"`
}

func serializeEntry(entry storeEntry) ([]byte, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("marshalling json: %w", err)
	}

	return data, nil
}

func unserializeEntry(data []byte) (*storeEntry, error) {
	var entry storeEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshalling json: %w", err)
	}

	return &entry, nil
}
