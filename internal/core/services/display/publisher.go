// Package display owns the single "current displayed record" slot. Writes are
// clobber-style: a published record fully replaces the previous one, and no
// history is kept here.
package display

import (
	"sync"

	"github.com/lcalzada-xor/timemap/internal/core/domain"
	"github.com/lcalzada-xor/timemap/internal/core/ports"
	"github.com/lcalzada-xor/timemap/internal/telemetry"
)

// Broadcaster pushes an accepted record to every connected display panel.
type Broadcaster interface {
	BroadcastLocation(rec domain.LocationInfo)
}

// Publisher implements ports.Publisher. With latestWins enabled (the
// default), a record whose click sequence is older than the one already
// displayed is dropped, so a slow early click can never clobber a fresher
// result. Disabling it restores pure last-to-finish-wins clobbering.
type Publisher struct {
	mu         sync.Mutex
	current    *domain.LocationInfo
	latestWins bool

	broadcaster Broadcaster // optional
}

// NewPublisher creates the slot. broadcaster may be nil (CLI usage).
func NewPublisher(latestWins bool, broadcaster Broadcaster) *Publisher {
	return &Publisher{
		latestWins:  latestWins,
		broadcaster: broadcaster,
	}
}

// Publish replaces the current record and notifies panels. Returns false when
// the sequence guard dropped the record as stale.
func (p *Publisher) Publish(rec domain.LocationInfo) bool {
	p.mu.Lock()
	if p.latestWins && p.current != nil && rec.Sequence < p.current.Sequence {
		p.mu.Unlock()
		telemetry.StalePublishesDropped.Inc()
		return false
	}
	p.current = &rec
	p.mu.Unlock()

	if p.broadcaster != nil {
		p.broadcaster.BroadcastLocation(rec)
	}
	return true
}

// Current returns the latest published record, if any.
func (p *Publisher) Current() (domain.LocationInfo, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return domain.LocationInfo{}, false
	}
	return *p.current, true
}

var _ ports.Publisher = (*Publisher)(nil)
