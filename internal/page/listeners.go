package page

import "sort"

// KeyHandler consumes a key notification and reports whether it was handled.
type KeyHandler func(Key) bool

// ClickHandler observes a click notification.
type ClickHandler func(Click)

// Registration is a handle to a registered listener. Cancel is idempotent.
type Registration struct {
	id  int
	set *listenerSet
}

// Cancel unregisters the listener. Calling it again, or on a nil handle, does nothing.
func (r *Registration) Cancel() {
	if r == nil || r.set == nil {
		return
	}
	r.set.remove(r.id)
	r.set = nil
}

// Active reports whether the listener is still registered.
func (r *Registration) Active() bool {
	return r != nil && r.set != nil
}

type listenerSet struct {
	nextID int
	keys   map[int]KeyHandler
	clicks map[int]ClickHandler
}

func newListenerSet() *listenerSet {
	return &listenerSet{
		keys:   make(map[int]KeyHandler),
		clicks: make(map[int]ClickHandler),
	}
}

func (s *listenerSet) onKey(h KeyHandler) *Registration {
	s.nextID++
	s.keys[s.nextID] = h
	return &Registration{id: s.nextID, set: s}
}

func (s *listenerSet) onClick(h ClickHandler) *Registration {
	s.nextID++
	s.clicks[s.nextID] = h
	return &Registration{id: s.nextID, set: s}
}

func (s *listenerSet) remove(id int) {
	delete(s.keys, id)
	delete(s.clicks, id)
}

func (s *listenerSet) len() int {
	return len(s.keys) + len(s.clicks)
}

// dispatchKey delivers k to key listeners in registration order until one handles it.
func (s *listenerSet) dispatchKey(k Key) bool {
	for _, id := range sortedIDs(s.keys) {
		h, ok := s.keys[id]
		if !ok {
			continue
		}
		if h(k) {
			return true
		}
	}
	return false
}

// dispatchClick delivers c to every click listener registered before the call.
// Listeners removed by an earlier handler in the same dispatch are skipped.
func (s *listenerSet) dispatchClick(c Click) {
	for _, id := range sortedIDs(s.clicks) {
		h, ok := s.clicks[id]
		if !ok {
			continue
		}
		h(c)
	}
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
