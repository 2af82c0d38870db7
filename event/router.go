package event

// Handler processes specific event types within a context T
// Systems implement this interface to receive routed events
type Handler[T any] interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ctx T, ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches queued events to registered handlers
// Handlers for one type run in registration order
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *Queue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes pending events and routes them in FIFO order
// Events pushed by handlers are dispatched in the same call; returns the number dispatched
func (r *Router[T]) DispatchAll(ctx T) int {
	n := 0
	for {
		events := r.queue.Consume()
		if len(events) == 0 {
			return n
		}
		for _, ev := range events {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ctx, ev)
			}
			n++
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
