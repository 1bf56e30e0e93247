// Package engine wires the scheduling pipeline together: capacity,
// prerequisite assessment, session building, synthesis and sandbox
// placement, grading, and the usefulness feedback loop. It owns the
// active session and the event-log side effects; the packages it
// composes stay pure.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/synapz/internal/capacity"
	"github.com/abhisek/synapz/internal/concepts"
	"github.com/abhisek/synapz/internal/grading"
	"github.com/abhisek/synapz/internal/llm"
	"github.com/abhisek/synapz/internal/placement"
	"github.com/abhisek/synapz/internal/prereq"
	"github.com/abhisek/synapz/internal/session"
	"github.com/abhisek/synapz/internal/store"
	"github.com/abhisek/synapz/internal/usefulness"
)

// ErrNothingToLearn is returned when no due reviews and no eligible new
// concepts exist. Distinct from store failures: the caller should tell
// the learner they are done, not show an error.
var ErrNothingToLearn = errors.New("nothing to learn: no due reviews and no eligible new concepts")

// ErrNoActiveSession is returned by submission methods outside a session.
var ErrNoActiveSession = errors.New("no active session")

// Deps are the engine's collaborators. Content is required; everything
// else degrades gracefully when nil: no Events means no event log, no
// Provider means deterministic fallbacks for synthesis, placement, and
// free-text grading.
type Deps struct {
	Content   concepts.ContentStore
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Provider  llm.Provider

	Capacity              capacity.Config
	Grading               grading.Config
	MinCapacityForSandbox int

	// Rand seeds the synthesis interval jitter. Nil uses a random seed.
	Rand rand.Source

	Logger *zap.Logger
}

// Engine orchestrates one learner's sessions. One active session at a
// time; concurrent learners get separate engines.
type Engine struct {
	content   concepts.ContentStore
	events    store.EventRepo
	snapshots store.SnapshotRepo

	checker   *prereq.Checker
	synth     *placement.SynthesisGenerator
	placer    *placement.Placer
	scheduler *placement.IntervalScheduler
	grader    *grading.SandboxGrader
	tracker   *usefulness.Tracker

	capCfg   capacity.Config
	gradeCfg grading.Config
	logger   *zap.Logger

	mu      sync.Mutex
	current *session.Session
	graph   *concepts.Graph
}

// New creates an engine, hydrating the usefulness tracker from the most
// recent snapshot when a snapshot repo is given.
func New(ctx context.Context, deps Deps) (*Engine, error) {
	if deps.Content == nil {
		return nil, errors.New("engine: content store is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tracker := usefulness.NewTracker()
	if deps.Snapshots != nil {
		snap, err := deps.Snapshots.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("restore snapshot: %w", err)
		}
		if snap != nil {
			tracker = usefulness.NewTracker(snap.Data.Usefulness...)
			logger.Info("restored usefulness state from snapshot",
				zap.Int64("sequence", snap.Sequence),
				zap.Int("aggregates", len(snap.Data.Usefulness)))
		}
	}

	var synth *placement.SynthesisGenerator
	var collab placement.Collaborator
	if deps.Provider != nil {
		synth = placement.NewSynthesisGenerator(deps.Provider)
		collab = placement.NewLLMCollaborator(deps.Provider)
	}

	return &Engine{
		content:   deps.Content,
		events:    deps.Events,
		snapshots: deps.Snapshots,
		checker:   prereq.NewChecker(deps.Content, logger),
		synth:     synth,
		placer:    placement.NewPlacer(collab, deps.MinCapacityForSandbox, logger),
		scheduler: placement.NewIntervalScheduler(deps.Rand),
		grader:    grading.NewSandboxGrader(deps.Provider, deps.Grading),
		tracker:   tracker,
		capCfg:    deps.Capacity,
		gradeCfg:  deps.Grading,
		logger:    logger,
	}, nil
}

// CheckPrerequisites runs the prerequisite lookup for the target concepts
// and returns the assessment machine, advanced past checking. Store
// failures are non-fatal: the machine lands in learning.
func (e *Engine) CheckPrerequisites(ctx context.Context, projectID, userID string, targetIDs []string) (*prereq.Machine, error) {
	m := prereq.NewMachine()
	ev := e.checker.Check(ctx, projectID, userID, targetIDs)
	if err := m.Apply(ev); err != nil {
		return nil, err
	}
	return m, nil
}

// Current returns the active session, or nil.
func (e *Engine) Current() *session.Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Usefulness returns the per-interaction usefulness scores, best first.
func (e *Engine) Usefulness() []usefulness.Score {
	return e.tracker.Scores()
}

// Cancel tears down the active session. Results from collaborator calls
// still in flight are discarded by the session's phase check. The
// usefulness snapshot is still saved: feedback already recorded is kept.
func (e *Engine) Cancel(ctx context.Context) error {
	e.mu.Lock()
	sess := e.current
	e.current = nil
	e.mu.Unlock()

	if sess == nil {
		return ErrNoActiveSession
	}
	sess.Cancel()
	return e.finish(ctx, sess, "cancel")
}
