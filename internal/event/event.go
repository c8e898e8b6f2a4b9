package event

// Type names a scene notification.
type Type string

const (
	CirclePlaced        Type = "CirclePlaced"
	SelectionToggled    Type = "SelectionToggled"
	LineConstructed     Type = "LineConstructed"
	ParallelConstructed Type = "ParallelConstructed"
	SceneCleared        Type = "SceneCleared"
	RadiusChanged       Type = "RadiusChanged"
	ModeChanged         Type = "ModeChanged"
)

// Event is delivered synchronously to every listener of its Type.
type Event struct {
	Type Type
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribers. It is meant for the single
// frame-loop goroutine and does no locking.
type Dispatcher struct {
	listeners map[Type][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Type][]Listener)}
}

// Subscribe registers l for each of the given types.
func (d *Dispatcher) Subscribe(l Listener, types ...Type) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], l)
	}
}

// Dispatch calls every listener of e.Type in subscription order.
// A nil Dispatcher drops the event.
func (d *Dispatcher) Dispatch(e Event) {
	if d == nil {
		return
	}
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
