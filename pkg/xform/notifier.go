package xform

import "slices"

// Notifier is an explicit observer list. The zero value is ready to use.
//
// Subscribers are called in subscription order. A subscriber cancelled
// while a notification is in flight is not called for the remainder of
// that notification.
type Notifier struct {
	next  uint64
	subs  map[uint64]func()
	order []uint64
}

// Subscription is a handle returned by [Notifier.Subscribe].
type Subscription struct {
	n     *Notifier
	token uint64
}

// Subscribe registers fn and returns its subscription handle.
func (n *Notifier) Subscribe(fn func()) *Subscription {
	if fn == nil {
		panic("xform: nil subscriber")
	}
	if n.subs == nil {
		n.subs = make(map[uint64]func())
	}
	n.next++
	n.subs[n.next] = fn
	n.order = append(n.order, n.next)
	return &Subscription{n: n, token: n.next}
}

// Notify calls every current subscriber.
func (n *Notifier) Notify() {
	if len(n.order) == 0 {
		return
	}
	// Subscribers may subscribe or cancel while we iterate.
	for _, token := range slices.Clone(n.order) {
		if fn, ok := n.subs[token]; ok {
			fn()
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (n *Notifier) Subscribers() int { return len(n.subs) }

// Release detaches all subscribers. Outstanding subscriptions become inert.
func (n *Notifier) Release() {
	n.subs = nil
	n.order = nil
}

func (n *Notifier) unsubscribe(token uint64) {
	if _, ok := n.subs[token]; !ok {
		return
	}
	delete(n.subs, token)
	if i := slices.Index(n.order, token); i >= 0 {
		n.order = slices.Delete(n.order, i, i+1)
	}
}

// Cancel detaches the subscriber. It is safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.n == nil {
		return
	}
	s.n.unsubscribe(s.token)
	s.n = nil
}

// Active reports whether the subscription is still attached.
func (s *Subscription) Active() bool {
	if s == nil || s.n == nil {
		return false
	}
	_, ok := s.n.subs[s.token]
	return ok
}
