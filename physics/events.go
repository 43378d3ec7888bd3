package physics

// handlerList keeps handlers in registration order.
// Dispatch iterates a snapshot, so handlers may subscribe or unsubscribe
// while an event is being delivered. A removed handler is marked dead and is
// skipped even if it is still part of an in-flight snapshot.
type handlerList[H any] struct {
	entries []*handlerEntry[H]
}

type handlerEntry[H any] struct {
	h    H
	live bool
}

func (l *handlerList[H]) add(h H) Subscription {
	e := &handlerEntry[H]{h: h, live: true}
	l.entries = append(l.entries, e)
	return &subscription{cancel: func() { l.remove(e) }}
}

func (l *handlerList[H]) remove(target *handlerEntry[H]) {
	target.live = false
	for i, e := range l.entries {
		if e == target {
			next := make([]*handlerEntry[H], 0, len(l.entries)-1)
			next = append(next, l.entries[:i]...)
			l.entries = append(next, l.entries[i+1:]...)
			return
		}
	}
}

func (l *handlerList[H]) snapshot() []*handlerEntry[H] {
	return l.entries
}

func (l *handlerList[H]) clear() {
	for _, e := range l.entries {
		e.live = false
	}
	l.entries = nil
}

func (l *handlerList[H]) len() int {
	return len(l.entries)
}

type subscription struct {
	cancel func()
}

func (s *subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Dispatcher fans collision and step events out to subscribers.
// World implementations embed it.
type Dispatcher struct {
	collisions handlerList[CollisionHandler]
	steps      handlerList[StepHandler]
}

// OnCollisionStart registers a collision-start handler
func (d *Dispatcher) OnCollisionStart(h CollisionHandler) Subscription {
	return d.collisions.add(h)
}

// OnAfterUpdate registers a post-step handler
func (d *Dispatcher) OnAfterUpdate(h StepHandler) Subscription {
	return d.steps.add(h)
}

// DispatchCollisions delivers pairs to every collision handler
func (d *Dispatcher) DispatchCollisions(pairs []CollisionPair) {
	if len(pairs) == 0 {
		return
	}
	for _, e := range d.collisions.snapshot() {
		if e.live {
			e.h(pairs)
		}
	}
}

// DispatchAfterUpdate runs every post-step handler
func (d *Dispatcher) DispatchAfterUpdate() {
	for _, e := range d.steps.snapshot() {
		if e.live {
			e.h()
		}
	}
}

// HandlerCount returns the number of live subscriptions
func (d *Dispatcher) HandlerCount() int {
	return d.collisions.len() + d.steps.len()
}

// Reset drops every subscription
func (d *Dispatcher) Reset() {
	d.collisions.clear()
	d.steps.clear()
}
