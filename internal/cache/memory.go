package cache

import (
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/ghinsights/internal/app"
)

// ProfileKey returns cache key of login's profile summary.
func ProfileKey(login string) string {
	return profileKeyPrefix + login
}

const profileKeyPrefix = "profile:"

// Memory is in-process profile cache bounded by entries count.
// Least recently used entries are evicted first. Safe for concurrent use.
type Memory struct {
	entries *lru.Cache
	now     func() time.Time
}

// NewMemory creates new Memory instance holding at most size entries.
// If now is nil, time.Now is used.
func NewMemory(size int, now func() time.Time) (*Memory, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache: %w", err)
	}
	if now == nil {
		now = time.Now
	}

	return &Memory{
		entries: entries,
		now:     now,
	}, nil
}

// Get returns cached summary if it hasn't expired yet.
func (c *Memory) Get(login string) (*app.ProfileSummary, bool) {
	val, ok := c.entries.Get(ProfileKey(login))
	if !ok {
		return nil, false
	}
	e := val.(memoryEntry)
	if !e.expires.After(c.now()) {
		return nil, false
	}

	return e.summary, true
}

// Set stores summary, overwriting previous entry.
func (c *Memory) Set(login string, summary *app.ProfileSummary, ttl time.Duration) {
	c.entries.Add(ProfileKey(login), memoryEntry{
		summary: summary,
		expires: c.now().Add(ttl),
	})
}

// Len returns number of stored entries, including expired ones.
func (c *Memory) Len() int {
	return c.entries.Len()
}

type memoryEntry struct {
	summary *app.ProfileSummary
	expires time.Time
}
