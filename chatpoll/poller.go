// Package chatpoll keeps an open conversation view current by re-fetching its
// message list on a fixed interval. The backend has no push channel, so 5s
// polling is the refresh mechanism, matching the app.
package chatpoll

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"farm-market/models"
)

var ErrEmptyMessage = errors.New("message content is empty")

// API is the slice of the backend client the poller needs.
type API interface {
	Messages(ctx context.Context, conversationID int) ([]models.Message, error)
	SendMessage(ctx context.Context, conversationID int, content string) (*models.Message, error)
}

// Poller polls one conversation. Ticks fire on a fixed timer regardless of
// whether the previous fetch finished, so fetches may overlap in flight; each
// fetch carries a generation number and a result only applies while its
// generation is still the newest. Results arriving after Stop are discarded.
type Poller struct {
	api            API
	conversationID int
	interval       time.Duration
	onUpdate       func([]models.Message)

	mu         sync.Mutex
	messages   []models.Message
	nextGen    uint64
	appliedGen uint64
	stopped    bool
	done       chan struct{}
	stopOnce   sync.Once
}

// New builds a poller for one conversation view. onUpdate receives the full,
// timestamp-sorted message list after every applied fetch; it is called from
// the poller's goroutines and must be safe for that.
func New(api API, conversationID int, interval time.Duration, onUpdate func([]models.Message)) *Poller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Poller{
		api:            api,
		conversationID: conversationID,
		interval:       interval,
		onUpdate:       onUpdate,
		done:           make(chan struct{}),
	}
}

// Start fetches immediately, then keeps fetching on the interval until the
// returned stop function is called. The caller holds the stop function and
// invokes it on view teardown; calling it more than once is safe.
func (p *Poller) Start() (stop func()) {
	p.Refresh()
	go p.loop()
	return p.Stop
}

func (p *Poller) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.Refresh()
		}
	}
}

// Refresh starts one fetch in the background. A failed fetch is logged and
// skipped; the previous message list stays and the next tick retries.
func (p *Poller) Refresh() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.nextGen++
	gen := p.nextGen
	p.mu.Unlock()

	go func() {
		msgs, err := p.api.Messages(context.Background(), p.conversationID)
		if err != nil {
			log.Printf("chat poll: fetching messages for conversation %d: %v", p.conversationID, err)
			return
		}
		SortMessages(msgs)
		p.apply(gen, msgs)
	}()
}

func (p *Poller) apply(gen uint64, msgs []models.Message) {
	p.mu.Lock()
	if p.stopped || gen <= p.appliedGen {
		p.mu.Unlock()
		return
	}
	p.appliedGen = gen
	p.messages = msgs
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate(msgs)
	}
}

// Send posts the message, then forces an immediate re-fetch so the view picks
// up the canonical server copy instead of appending optimistically. On error
// the caller keeps the typed content and can retry.
func (p *Poller) Send(ctx context.Context, content string) error {
	if content == "" {
		return ErrEmptyMessage
	}
	if _, err := p.api.SendMessage(ctx, p.conversationID, content); err != nil {
		return err
	}
	p.Refresh()
	return nil
}

// Stop cancels the timer and marks any in-flight fetch stale. Idempotent.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		p.mu.Unlock()
		close(p.done)
	})
}

// Messages returns a copy of the current list, sorted by timestamp.
func (p *Poller) Messages() []models.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Message, len(p.messages))
	copy(out, p.messages)
	return out
}

// SortMessages orders messages by ascending timestamp, breaking ties by id so
// the display order is deterministic whatever order the backend returned.
func SortMessages(msgs []models.Message) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].Timestamp.Equal(msgs[j].Timestamp) {
			return msgs[i].ID < msgs[j].ID
		}
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
}
