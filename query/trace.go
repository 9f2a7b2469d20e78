package query

// Op names a filtering operation.
type Op string

const (
	OpContains      Op = "contains"
	OpDoesntContain Op = "doesnt_contain"
	OpAtPosition    Op = "at_position"
	OpNotAtPosition Op = "not_at_position"
)

// Event describes one applied operation.
type Event struct {
	Op      Op
	Letters string // the letters argument; a single letter for positional ops
	Slot    int    // index.AnySlot for presence ops
	Before  int    // candidate count before the operation
	After   int    // candidate count after the operation
	Err     error  // set when a Strict session rejected the arguments
}

// Tracer observes a query session. It is invoked synchronously after every
// operation and must not retain the session.
type Tracer interface {
	Trace(e Event)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(e Event)

// Trace implements Tracer.
func (f TracerFunc) Trace(e Event) { f(e) }

type noopTracer struct{}

func (noopTracer) Trace(Event) {}
