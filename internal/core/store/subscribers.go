// Package store holds the two mutable cells of client state: the shopping
// cart and the session. Consumers hold a reference to a store, mutate it
// through its methods, and react to change notifications; they never copy
// store state into their own cells.
package store

// subscribers is the shared change-notification list. All store mutations run
// on one logical thread of control; callbacks fire synchronously inside the
// mutating call.
type subscribers struct {
	next int
	fns  map[int]func()
}

func (s *subscribers) add(fn func()) (cancel func()) {
	if s.fns == nil {
		s.fns = make(map[int]func())
	}
	id := s.next
	s.next++
	s.fns[id] = fn
	return func() { delete(s.fns, id) }
}

func (s *subscribers) notify() {
	for _, fn := range s.fns {
		fn()
	}
}
