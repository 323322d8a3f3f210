// internal/event/event.go
package event

// EventType names one kind of simulation event.
type EventType string

// Event is delivered synchronously, in subscription order, within the tick
// that produced it.
type Event struct {
	Type EventType
	Data interface{} // typed payload, see types.go
}

// Listener is the interface for event subscribers.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher routes events to subscribers.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates a new dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes a listener from one event type.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers an event to every subscriber, in order, before returning.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
