package controls

// remover is implemented by listener lists so a CallbackHandle can detach
// itself without knowing the list's element type.
type remover interface {
	remove(id uint32)
}

// CallbackHandle identifies a registered listener. The zero value is a
// valid no-op handle.
type CallbackHandle struct {
	id   uint32
	list remover
}

// Remove unregisters the listener so it no longer fires. Removing twice is
// harmless.
func (h CallbackHandle) Remove() {
	if h.list == nil {
		return
	}
	h.list.remove(h.id)
}

// belongsTo reports whether the handle was issued by list.
func (h CallbackHandle) belongsTo(list remover) bool {
	return h.list != nil && h.list == list
}

type listener[T any] struct {
	id uint32
	fn func(T)
}

// listeners is an ordered multi-subscriber callback list. Callbacks run
// synchronously in registration order.
type listeners[T any] struct {
	entries []listener[T]
	nextID  uint32
}

func (l *listeners[T]) add(fn func(T)) CallbackHandle {
	l.nextID++
	l.entries = append(l.entries, listener[T]{id: l.nextID, fn: fn})
	return CallbackHandle{id: l.nextID, list: l}
}

// remove builds a fresh slice so a dispatch already iterating the old one
// is unaffected.
func (l *listeners[T]) remove(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return
		}
	}
}

func (l *listeners[T]) fire(v T) {
	for _, e := range l.entries {
		e.fn(v)
	}
}

func (l *listeners[T]) len() int {
	return len(l.entries)
}

// signal adapts a no-argument callback to a listeners[struct{}] entry.
func signal(fn func()) func(struct{}) {
	return func(struct{}) { fn() }
}
