package service

import (
	"context"
	"log"
	"sync"

	"compound-interest/domain"
)

// LedgerListener is notified every time a Ledger is produced. Listeners must
// treat the Ledger as read-only.
type LedgerListener func(ctx context.Context, input domain.ProjectionInput, ledger domain.Ledger)

type subscription struct {
	id       int
	listener LedgerListener
}

// LedgerFeed fans produced ledgers out to presentation consumers.
type LedgerFeed struct {
	mu     sync.RWMutex
	nextID int
	subs   []subscription
}

func NewLedgerFeed() *LedgerFeed {
	return &LedgerFeed{}
}

// Subscribe registers a listener and returns a func that removes it.
func (f *LedgerFeed) Subscribe(listener LedgerListener) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	id := f.nextID
	f.subs = append(f.subs, subscription{id: id, listener: listener})

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, sub := range f.subs {
			if sub.id == id {
				f.subs = append(f.subs[:i:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish calls every listener in subscription order. A panicking listener
// is logged and skipped.
func (f *LedgerFeed) Publish(ctx context.Context, input domain.ProjectionInput, ledger domain.Ledger) {
	if f == nil {
		return
	}

	f.mu.RLock()
	subs := make([]subscription, len(f.subs))
	copy(subs, f.subs)
	f.mu.RUnlock()

	for _, sub := range subs {
		notify(ctx, sub.listener, input, ledger)
	}
}

func notify(ctx context.Context, listener LedgerListener, input domain.ProjectionInput, ledger domain.Ledger) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error: ledger listener panicked: %v", r)
		}
	}()
	listener(ctx, input, ledger)
}
