package player

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/config"
	"github.com/lgbarn/negamax-chess/internal/engine"
	"github.com/lgbarn/negamax-chess/internal/errors"
	"github.com/lgbarn/negamax-chess/internal/search"
	"github.com/lgbarn/negamax-chess/internal/worker"
)

// Choice is the outcome of one agent search.
type Choice struct {
	Move    engine.Move
	Result  search.Result
	Elapsed time.Duration
	Err     error
}

// Agent picks moves with a negamax search run on its own worker. It never
// applies the move it picks.
type Agent struct {
	colour   chess.Colour
	opts     search.Options
	notation config.MoveNotation
	logger   *log.Logger

	pool *worker.Pool
	busy int32

	mu      sync.Mutex
	pending chan Choice
	closed  bool
	done    chan struct{}
}

// NewAgent creates an agent for colour and starts its worker. Close must be
// called to stop it.
func NewAgent(colour chess.Colour, cfg *config.Config) *Agent {
	a := &Agent{
		colour:   colour,
		opts:     cfg.Search.Options(),
		notation: cfg.Output.Notation,
		logger:   cfg.Logger("agent " + colour.String()),
		pool:     worker.NewPool(1, cfg.WorkerBuffer, worker.SearchFunc()),
		done:     make(chan struct{}),
	}
	a.pool.Start()
	go a.dispatch()
	return a
}

// Colour returns the side the agent moves for.
func (a *Agent) Colour() chess.Colour { return a.colour }

// Name returns a display name.
func (a *Agent) Name() string { return "agent (" + a.colour.String() + ")" }

// Busy reports whether a search is in flight.
func (a *Agent) Busy() bool {
	return atomic.LoadInt32(&a.busy) != 0
}

// ChooseMoveAsync starts a search on board and returns a channel that
// receives exactly one Choice. The board is mutated while the search runs;
// the caller must not touch it until the Choice has arrived. Only one search
// runs at a time; a second request fails with ErrSearchInProgress.
func (a *Agent) ChooseMoveAsync(ctx context.Context, board *chess.Board) (<-chan Choice, error) {
	if board.ToMove != a.colour {
		return nil, errors.Wrapf(errors.ErrIllegalMove, "%s agent asked to move for %s", a.colour, board.ToMove)
	}
	if !atomic.CompareAndSwapInt32(&a.busy, 0, 1) {
		return nil, errors.ErrSearchInProgress
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		atomic.StoreInt32(&a.busy, 0)
		return nil, errors.Wrap(errors.ErrPoolStopped, "agent closed")
	}

	reply := make(chan Choice, 1)
	a.pending = reply
	if !a.pool.TrySubmit(worker.WorkItem{Ctx: ctx, Board: board, Options: a.opts}) {
		a.pending = nil
		atomic.StoreInt32(&a.busy, 0)
		return nil, errors.ErrSearchInProgress
	}
	return reply, nil
}

// ChooseMove searches board and returns the best move for the side to move.
// Cancelling ctx stops the search between root moves; the best move found
// so far is returned together with the context's error.
func (a *Agent) ChooseMove(ctx context.Context, board *chess.Board) (engine.Move, error) {
	reply, err := a.ChooseMoveAsync(ctx, board)
	if err != nil {
		return engine.Move{}, err
	}
	c := <-reply
	return c.Move, c.Err
}

// Close stops the worker after the running search, if any, has finished.
func (a *Agent) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		<-a.done
		return
	}
	a.closed = true
	a.mu.Unlock()

	a.pool.Close()
	<-a.done
}

// dispatch hands each search result to the request waiting for it.
func (a *Agent) dispatch() {
	defer close(a.done)
	for res := range a.pool.Results() {
		c := Choice{Result: res.Result, Elapsed: res.Elapsed, Err: res.Err}
		if res.Result.Found {
			c.Move = res.Result.Move
			a.logChoice(res)
		}

		a.mu.Lock()
		reply := a.pending
		a.pending = nil
		a.mu.Unlock()
		atomic.StoreInt32(&a.busy, 0)

		if reply != nil {
			reply <- c
			close(reply)
		}
	}
}

// logChoice runs before the choice is delivered, while the board is still
// owned by the agent.
func (a *Agent) logChoice(res worker.ProcessResult) {
	text := res.Result.Move.UCI()
	if a.notation == config.SAN {
		text = engine.SAN(res.Board, res.Result.Move)
	}
	a.logger.Printf("depth %d: %s value %d nodes %d cutoffs %d transpositions %d in %v",
		a.opts.Depth, text, res.Result.Value, res.Result.Nodes, res.Result.Cutoffs,
		res.Result.Transpositions, res.Elapsed.Round(time.Microsecond))
}
