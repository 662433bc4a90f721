package camptrees

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

// EnableDebugLogging turns on debug-level tracing of the solve loop.
func EnableDebugLogging() {
	log.SetLevel(logrus.DebugLevel)
}

// ProgressUpdate is a snapshot of the solve loop's progress.
type ProgressUpdate struct {
	CurrentAction string
	Assigned      int
	GridSize      int
}

// Solver drives a Board to its fixed point, optionally reporting progress
// on a channel. Rules never run concurrently; the channel only lets a
// consumer render progress while Solve runs.
type Solver struct {
	b        *Board
	Action   string
	Progress chan ProgressUpdate
}

func NewSolver(b *Board) *Solver {
	return &Solver{b: b, Progress: make(chan ProgressUpdate, b.Grid.Size()*2)}
}

func (s *Solver) Board() *Board {
	return s.b
}

func (s *Solver) UpdateAction(a string) {
	s.Action = a
	s.SendProgress()
}

func (s *Solver) SendProgress() {
	if s.Progress == nil {
		return
	}
	s.Progress <- ProgressUpdate{
		s.Action,
		s.b.Grid.Assigned(),
		s.b.Grid.Size(),
	}
}

// Solve runs InitializeGrass once, then cycles the deduction rules in strict
// priority order, restarting the scan whenever a rule changes the board,
// until a full pass changes nothing. It fails if the fixed point leaves any
// cell Unassigned, or earlier if a line turns out to have no legal camp
// placement at all.
func (s *Solver) Solve() error {
	s.UpdateAction("Initializing grass")
	InitializeGrass(s.b)
	for {
		s.UpdateAction("Filling zeros")
		if FillZeros(s.b) {
			log.WithField("rule", "FillZeros").Debug("board changed")
			continue
		}
		s.UpdateAction("Filling camps")
		if FillCamps(s.b) {
			log.WithField("rule", "FillCamps").Debug("board changed")
			continue
		}
		s.UpdateAction("Intersecting possibilities")
		changed, err := ProcessIntersections(s.b)
		if err != nil {
			return err
		}
		if changed {
			log.WithField("rule", "ProcessIntersections").Debug("board changed")
			continue
		}
		s.UpdateAction("Associating trees")
		if AssociateTrees(s.b.Grid) {
			log.WithField("rule", "AssociateTrees").Debug("board changed")
			continue
		}
		break
	}
	s.UpdateAction("Done")
	if s.b.IsSolved() {
		return nil
	}
	return fmt.Errorf("%w\n%s", ErrSteadyState, s.b.Grid)
}
