package swipe

import "fmt"

// State is the navigation state machine's current phase.
type State int

const (
	// StateIdle means the queue has not been started.
	StateIdle State = iota
	// StateActive means the position is within queue bounds.
	StateActive
	// StateExhausted means navigation moved past the end of the
	// queue. Terminal for the round; a Replace followed by Start
	// revives the engine.
	StateExhausted
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	case StateExhausted:
		return "Exhausted"
	default:
		return "Unknown"
	}
}

// Saver is the output sink an accept outcome copies images through.
// Failures are reportable, never fatal, and never corrupt the cursor.
type Saver interface {
	Save(item Item, category string) error
}

// Engine is the navigation/outcome state machine. Every move triggers
// a scheduler resync so the resident texture set tracks the cursor;
// the display layer pulls the page via Slice after each move.
//
// The engine is single-threaded: all mutation happens on the UI update
// turn, so no locking is needed.
type Engine struct {
	reg       *Registry
	scheduler *Scheduler
	cursor    Cursor
	state     State
	saver     Saver

	// generation increments whenever the round ends or the queue is
	// replaced. Dispatch uses it to detect that an outcome callback
	// already moved the engine to a different round.
	generation uint64

	// onComplete fires once when the queue is exhausted.
	onComplete func()
	// onMove fires after every position change, once the cache has
	// been resynced.
	onMove func()
}

// NewEngine creates an engine over the registry with the given cache
// and paging parameters. The saver may be nil when no outcome ever
// saves (callback-only configurations).
func NewEngine(reg *Registry, cache TextureCache, cursor Cursor, saver Saver) *Engine {
	cursor.validate()
	return &Engine{
		reg:       reg,
		scheduler: NewScheduler(cache),
		cursor:    cursor,
		state:     StateIdle,
		saver:     saver,
	}
}

// SetOnComplete registers the queue-exhaustion callback.
func (e *Engine) SetOnComplete(fn func()) { e.onComplete = fn }

// SetOnMove registers the post-move display refresh hook.
func (e *Engine) SetOnMove(fn func()) { e.onMove = fn }

// State returns the current navigation state.
func (e *Engine) State() State { return e.state }

// Cursor returns a copy of the current cursor.
func (e *Engine) Cursor() Cursor { return e.cursor }

// Registry returns the queue backing this engine.
func (e *Engine) Registry() *Registry { return e.reg }

// Start begins (or restarts) the queue from position 0 and primes the
// cache for the first page. An empty queue completes immediately.
func (e *Engine) Start() {
	e.cursor.Position = 0
	if e.reg.Len() == 0 {
		e.exhaust()
		return
	}
	e.state = StateActive
	e.scheduler.Resync(e.cursor, e.reg)
	e.moved()
}

// Advance moves the cursor forward by the step size. Moving past the
// end transitions to Exhausted and fires the completion callback
// instead. Calling Advance outside Active is a caller bug and panics.
func (e *Engine) Advance() {
	e.mustBeActive("Advance")
	if e.cursor.Position+e.cursor.StepSize > e.reg.Len() {
		e.cursor.Position = e.reg.Len()
		e.exhaust()
		return
	}
	e.cursor.Position += e.cursor.StepSize
	if e.cursor.Exhausted(e.reg.Len()) {
		e.exhaust()
		return
	}
	e.scheduler.Resync(e.cursor, e.reg)
	e.moved()
}

// Retreat moves the cursor backward by the step size, staying in place
// when the move would go below 0. Calling Retreat outside Active is a
// caller bug and panics.
func (e *Engine) Retreat() {
	e.mustBeActive("Retreat")
	if e.cursor.Position-e.cursor.StepSize < 0 {
		return
	}
	e.cursor.Position -= e.cursor.StepSize
	e.scheduler.Resync(e.cursor, e.reg)
	e.moved()
}

// Finish ends the round immediately, as if the cursor advanced past
// the end of the queue. Used by accept-rest actions. Calling Finish
// outside Active is a caller bug and panics.
func (e *Engine) Finish() {
	e.mustBeActive("Finish")
	e.exhaust()
}

// Replace swaps the queue for a new one and returns the engine to
// Idle. All cache entries for the old queue are dropped on the next
// Start's resync since their ids can never re-enter the window.
func (e *Engine) Replace(items []Item) {
	e.reg.Replace(items)
	e.cursor.Position = 0
	e.state = StateIdle
	e.generation++
}

// Slice returns the current page, empty at exhaustion.
func (e *Engine) Slice() []Slot {
	if e.state != StateActive {
		return nil
	}
	return CurrentSlice(e.cursor, e.reg)
}

// Dispatch performs the outcome for the given page slot: the absolute
// index is resolved first, the outcome's default behavior (saving for
// accept-class outcomes) and callback run against that index, and only
// then does the cursor advance. The returned error is a reportable
// output-sink failure; navigation has already continued when it is
// returned.
func (e *Engine) Dispatch(slot int, outcome Outcome) error {
	e.mustBeActive("Dispatch")
	index := ResolveSlot(slot, e.cursor, e.reg)
	item := e.reg.Get(index)

	var saveErr error
	switch outcome.Kind {
	case OutcomeAccept, OutcomeHighlight:
		if e.saver == nil {
			saveErr = fmt.Errorf("swipe: no saver configured for outcome %q", outcome.Label)
		} else if err := e.saver.Save(item, outcome.DirName); err != nil {
			saveErr = fmt.Errorf("save %s to %s: %w", item.Label, outcome.DirName, err)
		}
	}

	gen := e.generation
	if outcome.Callback != nil {
		outcome.Callback(index)
	}

	// A callback may end the round (Finish) or restart a new one
	// (Replace+Start); advancing then would move a cursor the callback
	// already owns.
	if e.state == StateActive && e.generation == gen {
		e.Advance()
	}
	return saveErr
}

// SaveAt copies the item at the absolute index into the category
// directory without moving the cursor. Used by multi-round modes that
// finalize a kept set after exhaustion.
func (e *Engine) SaveAt(index int, category string) error {
	item := e.reg.Get(index)
	if e.saver == nil {
		return fmt.Errorf("swipe: no saver configured")
	}
	return e.saver.Save(item, category)
}

func (e *Engine) mustBeActive(op string) {
	if e.state != StateActive {
		panic(fmt.Sprintf("swipe: %s called in state %s", op, e.state))
	}
}

func (e *Engine) exhaust() {
	e.state = StateExhausted
	e.generation++
	e.cursor.Position = e.reg.Len()
	// Empty window: everything evicts.
	e.scheduler.Resync(e.cursor, e.reg)
	if e.onComplete != nil {
		e.onComplete()
	}
}

func (e *Engine) moved() {
	if e.onMove != nil {
		e.onMove()
	}
}
