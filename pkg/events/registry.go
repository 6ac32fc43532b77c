package events

// Source is the control (or other emitter) a dispatched event originated
// from. Listeners receive the source so one listener can serve many
// controls.
type Source interface {
	// ID returns the emitter's identifier string.
	ID() string
}

// Listener receives control events. A single listener may be registered for
// any combination of event types; ControlEvent is invoked once per matching
// event with the exact type that fired.
//
// Implement Listener on a pointer type: the registry deduplicates
// registrations by comparing listener identity.
type Listener interface {
	ControlEvent(source Source, event Type)
}

// Registry maps event types to ordered listener lists.
//
// The registry never owns its listeners; callers own listener lifetime and
// must call [Registry.Remove] before discarding one. The zero value is
// ready to use.
type Registry struct {
	listeners map[Type][]Listener
}

// Add registers the listener for every event type bit set in flags, in
// registration order. Registering a listener that is already present for a
// type is a no-op for that type, so a listener never fires twice for one
// event.
func (r *Registry) Add(listener Listener, flags Type) {
	if listener == nil {
		return
	}
	if r.listeners == nil {
		r.listeners = make(map[Type][]Listener)
	}
	for _, t := range allTypes {
		if flags&t == 0 {
			continue
		}
		if r.registered(listener, t) {
			continue
		}
		r.listeners[t] = append(r.listeners[t], listener)
	}
}

// Remove deregisters the listener from every event type bit set in flags.
// Removing a listener that is not registered is a no-op.
func (r *Registry) Remove(listener Listener, flags Type) {
	if listener == nil || r.listeners == nil {
		return
	}
	for _, t := range allTypes {
		if flags&t == 0 {
			continue
		}
		list := r.listeners[t]
		for i, l := range list {
			if l == listener {
				r.listeners[t] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}
}

// Notify dispatches an event of exactly one type to every listener
// registered for it, in registration order.
//
// Dispatch iterates a snapshot of the listener list, so listeners may add
// or remove listeners (including themselves) during notification; such
// changes take effect for the next event.
func (r *Registry) Notify(source Source, event Type) {
	if r.listeners == nil {
		return
	}
	list := r.listeners[event]
	if len(list) == 0 {
		return
	}
	snapshot := make([]Listener, len(list))
	copy(snapshot, list)
	for _, l := range snapshot {
		l.ControlEvent(source, event)
	}
}

// Len returns the number of listeners registered for the given type.
func (r *Registry) Len(event Type) int {
	return len(r.listeners[event])
}

// registered reports whether the listener is already present for the type.
func (r *Registry) registered(listener Listener, t Type) bool {
	for _, l := range r.listeners[t] {
		if l == listener {
			return true
		}
	}
	return false
}
