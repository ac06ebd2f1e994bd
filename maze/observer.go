package maze

// Phase identifies which traversal reported progress.
type Phase int

const (
	PhaseGenerate Phase = iota // Carving the spanning tree
	PhaseSolve                 // Breadth-first search
)

func (p Phase) String() string {
	switch p {
	case PhaseGenerate:
		return "generate"
	case PhaseSolve:
		return "solve"
	default:
		return "unknown"
	}
}

// Progress is the snapshot handed to a ProgressObserver.
// Grid is the live grid being traversed and must be treated as read-only.
type Progress struct {
	Phase   Phase
	Grid    *Grid
	Current CellPosition // Cell the traversal just carved, popped or dequeued
	Done    int          // Cells visited (generate) or dequeued (solve) so far
	Total   int          // Cells in the grid
	Last    bool         // Final notification of the traversal
}

// ProgressObserver receives periodic callbacks from the generator and the solver.
// Implementations must not mutate the grid.
type ProgressObserver interface {
	OnProgress(Progress)
}

// ObserverFunc adapts a function to ProgressObserver.
type ObserverFunc func(Progress)

// OnProgress calls f(p).
func (f ObserverFunc) OnProgress(p Progress) { f(p) }

type nopObserver struct{}

func (nopObserver) OnProgress(Progress) {}

// NopObserver ignores every callback.
var NopObserver ProgressObserver = nopObserver{}

// OrNop returns o, or NopObserver when o is nil.
func OrNop(o ProgressObserver) ProgressObserver {
	if o == nil {
		return NopObserver
	}
	return o
}
