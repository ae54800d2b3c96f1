package display

import (
	"context"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/game"
)

// Paced holds back dealer-turn frames so they appear one at a time, the way
// a dealer flips cards. The first frame of the dealer's turn (the reveal) is
// due immediately; each later frame, and the result, is due delay after the
// one before it. Frames outside the dealer's turn are never delayed.
//
// Frames are queued by the game and released either by Flush, which waits
// on the clock, or by Ready, which releases whatever is already due. Paced
// is not safe for concurrent use.
type Paced struct {
	next  game.Display
	clock quartz.Clock
	delay time.Duration

	queue   []pacedFrame
	lastDue time.Time
	prev    game.Phase
}

type pacedFrame struct {
	due        time.Time
	state      *game.StateChange
	settlement *game.Settlement
}

// NewPaced wraps next
func NewPaced(next game.Display, clock quartz.Clock, delay time.Duration) *Paced {
	return &Paced{next: next, clock: clock, delay: delay}
}

// OnStateChanged implements game.Display
func (p *Paced) OnStateChanged(sc game.StateChange) {
	due := p.clock.Now()
	if p.prev == game.DealerTurn {
		if p.lastDue.After(due) {
			due = p.lastDue
		}
		due = due.Add(p.delay)
	}
	p.prev = sc.Phase
	p.lastDue = due
	p.queue = append(p.queue, pacedFrame{due: due, state: &sc})
}

// OnRoundSettled implements game.Display. The settlement travels with the
// frame that announced it.
func (p *Paced) OnRoundSettled(s game.Settlement) {
	due := p.clock.Now()
	if p.lastDue.After(due) {
		due = p.lastDue
	}
	p.queue = append(p.queue, pacedFrame{due: due, settlement: &s})
}

// Pending returns the number of frames not yet forwarded
func (p *Paced) Pending() int {
	return len(p.queue)
}

// NextDue returns when the next frame becomes due
func (p *Paced) NextDue() (time.Time, bool) {
	if len(p.queue) == 0 {
		return time.Time{}, false
	}
	return p.queue[0].due, true
}

// Ready forwards every frame that is due and returns how many are left
func (p *Paced) Ready() int {
	now := p.clock.Now()
	for len(p.queue) > 0 && !p.queue[0].due.After(now) {
		p.forward(p.queue[0])
		p.queue = p.queue[1:]
	}
	return len(p.queue)
}

// Flush forwards every queued frame, waiting for each to become due
func (p *Paced) Flush(ctx context.Context) error {
	for len(p.queue) > 0 {
		f := p.queue[0]
		if wait := f.due.Sub(p.clock.Now()); wait > 0 {
			timer := p.clock.NewTimer(wait, "paced", "flush")
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
		p.forward(f)
		p.queue = p.queue[1:]
	}
	return nil
}

func (p *Paced) forward(f pacedFrame) {
	switch {
	case f.state != nil:
		p.next.OnStateChanged(*f.state)
	case f.settlement != nil:
		p.next.OnRoundSettled(*f.settlement)
	}
}
