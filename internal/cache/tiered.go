package cache

import (
	"time"

	"github.com/m-zajac/ghinsights/internal/app"
)

// Tiered checks memory cache first and persistent store second.
// Entries found in store are copied to memory for their remaining lifetime.
type Tiered struct {
	memory *Memory
	store  *Store
	now    func() time.Time
}

// NewTiered creates new Tiered instance. If now is nil, time.Now is used.
func NewTiered(memory *Memory, store *Store, now func() time.Time) *Tiered {
	if now == nil {
		now = time.Now
	}

	return &Tiered{
		memory: memory,
		store:  store,
		now:    now,
	}
}

// Get returns cached summary from first tier that has it.
func (c *Tiered) Get(login string) (*app.ProfileSummary, bool) {
	if summary, ok := c.memory.Get(login); ok {
		return summary, true
	}

	summary, expires, ok := c.store.Lookup(login)
	if !ok {
		return nil, false
	}
	c.memory.Set(login, summary, expires.Sub(c.now()))

	return summary, true
}

// Set writes summary to both tiers.
func (c *Tiered) Set(login string, summary *app.ProfileSummary, ttl time.Duration) {
	c.memory.Set(login, summary, ttl)
	c.store.Set(login, summary, ttl)
}
