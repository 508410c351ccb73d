// Package game keeps a game session: the board, the moves played with undo
// and redo, the players, and the rules that end the game.
package game

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/config"
	"github.com/lgbarn/negamax-chess/internal/engine"
	"github.com/lgbarn/negamax-chess/internal/errors"
	"github.com/lgbarn/negamax-chess/internal/hashing"
	"github.com/lgbarn/negamax-chess/internal/player"
)

// Record is one move of the game.
type Record struct {
	Move       engine.Move
	SAN        string
	MoveNumber uint
	Colour     chess.Colour
}

// Game is a single game session. It is not safe for concurrent use, and
// must not be touched while an agent searches its board.
type Game struct {
	ID uuid.UUID

	board       *chess.Board
	startFEN    string
	history     []Record
	redo        []Record
	repetitions *hashing.RepetitionCounter
	players     [2]player.Player

	rules   config.RulesConfig
	logger  *log.Logger
	verbose bool
}

// moveChooser is implemented by players that pick their own moves.
type moveChooser interface {
	ChooseMove(ctx context.Context, board *chess.Board) (engine.Move, error)
}

// New creates a game from the standard starting position with a human
// player on each side.
func New(cfg *config.Config) *Game {
	g, err := NewFromFEN(engine.InitialFEN, cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// NewFromFEN creates a game starting from fen.
func NewFromFEN(fen string, cfg *config.Config) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	g := &Game{
		ID:          id,
		board:       board,
		startFEN:    engine.BoardToFEN(board),
		repetitions: hashing.NewRepetitionCounter(),
		players:     [2]player.Player{player.NewHuman(chess.Black), player.NewHuman(chess.White)},
		rules:       cfg.Rules,
		logger:      cfg.Logger("game " + id.String()[:8]),
		verbose:     cfg.Verbosity >= 2,
	}
	g.repetitions.Increment(board)
	return g, nil
}

// SetPlayers replaces both players. The game does not close agents.
func (g *Game) SetPlayers(white, black player.Player) error {
	if white.Colour() != chess.White || black.Colour() != chess.Black {
		return errors.Wrapf(errors.ErrInvalidConfig, "players play %s and %s", white.Colour(), black.Colour())
	}
	g.players[chess.White] = white
	g.players[chess.Black] = black
	return nil
}

// PlayerToMove returns the player whose turn it is.
func (g *Game) PlayerToMove() player.Player {
	return g.players[g.board.ToMove]
}

// Board returns the live board. Callers must not modify it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []engine.Move {
	return engine.LegalMoves(g.board, g.board.ToMove)
}

// Play plays m for a human side to move. m is matched against the current
// legal moves, so moves kept from earlier positions are accepted while they
// remain legal. Playing clears the redo list.
func (g *Game) Play(m engine.Move) (Record, error) {
	if err := g.checkOngoing(); err != nil {
		return Record{}, err
	}
	human, ok := g.players[g.board.ToMove].(*player.Human)
	if !ok {
		return Record{}, errors.Wrapf(errors.ErrIllegalMove, "%s is played by %s", g.board.ToMove, g.PlayerToMove().Name())
	}

	legal, found := g.findLegal(m)
	if !found {
		return Record{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: m.UCI(), FEN: g.FEN()}
	}
	rec := g.record(legal)
	if _, err := human.MakeMove(g.board, legal); err != nil {
		return Record{}, err
	}
	g.commit(rec)
	return rec, nil
}

// PlayText plays a move given as UCI or SAN text.
func (g *Game) PlayText(text string) (Record, error) {
	if err := g.checkOngoing(); err != nil {
		return Record{}, err
	}
	m, err := engine.FindMove(g.board, text)
	if err != nil {
		return Record{}, err
	}
	return g.Play(m)
}

// PlayAgentTurn asks the agent whose turn it is for a move and plays it.
func (g *Game) PlayAgentTurn(ctx context.Context) (Record, error) {
	if err := g.checkOngoing(); err != nil {
		return Record{}, err
	}
	p := g.PlayerToMove()
	chooser, ok := p.(moveChooser)
	if !ok {
		return Record{}, errors.Wrapf(errors.ErrIllegalMove, "%s is played by %s", g.board.ToMove, p.Name())
	}

	m, err := chooser.ChooseMove(ctx, g.board)
	if err != nil {
		return Record{}, err
	}
	legal, found := g.findLegal(m)
	if !found {
		return Record{}, &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: m.UCI(), FEN: g.FEN()}
	}
	rec := g.record(legal)
	engine.Apply(g.board, legal)
	g.commit(rec)
	return rec, nil
}

// checkOngoing returns ErrGameOver once the game has ended.
func (g *Game) checkOngoing() error {
	if status := g.Status(); status.IsOver() {
		return errors.Wrapf(errors.ErrGameOver, "game ended in %s", status)
	}
	return nil
}

func (g *Game) findLegal(m engine.Move) (engine.Move, bool) {
	for _, legal := range g.LegalMoves() {
		if legal.SameAs(m) {
			return legal, true
		}
	}
	return engine.Move{}, false
}

// record describes m before it is applied.
func (g *Game) record(m engine.Move) Record {
	return Record{
		Move:       m,
		SAN:        engine.SAN(g.board, m),
		MoveNumber: g.board.MoveNumber,
		Colour:     g.board.ToMove,
	}
}

// commit books a move that has just been applied.
func (g *Game) commit(rec Record) {
	g.history = append(g.history, rec)
	g.redo = g.redo[:0]
	g.repetitions.Increment(g.board)
	if g.verbose {
		g.logger.Printf("%d%s %s", rec.MoveNumber, dots(rec.Colour), rec.SAN)
	}
}

// Undo takes back the last move.
func (g *Game) Undo() (Record, error) {
	if len(g.history) == 0 {
		return Record{}, errors.ErrNothingToUndo
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.repetitions.Decrement(g.board)
	engine.Revert(g.board, rec.Move)
	g.redo = append(g.redo, rec)
	if g.verbose {
		g.logger.Printf("took back %s", rec.SAN)
	}
	return rec, nil
}

// Redo replays the last move taken back.
func (g *Game) Redo() (Record, error) {
	if len(g.redo) == 0 {
		return Record{}, errors.ErrNothingToRedo
	}
	rec := g.redo[len(g.redo)-1]
	g.redo = g.redo[:len(g.redo)-1]

	engine.Apply(g.board, rec.Move)
	g.history = append(g.history, rec)
	g.repetitions.Increment(g.board)
	if g.verbose {
		g.logger.Printf("replayed %s", rec.SAN)
	}
	return rec, nil
}

// CanUndo reports whether a move can be taken back.
func (g *Game) CanUndo() bool { return len(g.history) > 0 }

// CanRedo reports whether a taken back move can be replayed.
func (g *Game) CanRedo() bool { return len(g.redo) > 0 }

// LoadFEN replaces the position and forgets all moves. On error the game
// is left untouched.
func (g *Game) LoadFEN(fen string) error {
	if err := engine.LoadFEN(g.board, fen); err != nil {
		return err
	}
	g.startFEN = engine.BoardToFEN(g.board)
	g.history = nil
	g.redo = nil
	g.repetitions.Reset()
	g.repetitions.Increment(g.board)
	if g.verbose {
		g.logger.Printf("loaded %s", fen)
	}
	return nil
}

// FEN returns the current position.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// StartFEN returns the position the game started from.
func (g *Game) StartFEN() string {
	return g.startFEN
}

// History returns the moves played so far.
func (g *Game) History() []Record {
	out := make([]Record, len(g.history))
	copy(out, g.history)
	return out
}

// MoveLog returns the SAN text of every move played.
func (g *Game) MoveLog() []string {
	out := make([]string, len(g.history))
	for i, rec := range g.history {
		out[i] = rec.SAN
	}
	return out
}

// MoveText returns the moves in PGN movetext form, e.g. "1. e4 e5 2. Nf3".
func (g *Game) MoveText() string {
	var sb strings.Builder
	for i, rec := range g.history {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if rec.Colour == chess.White || i == 0 {
			fmt.Fprintf(&sb, "%d%s ", rec.MoveNumber, dots(rec.Colour))
		}
		sb.WriteString(rec.SAN)
	}
	return sb.String()
}

func dots(colour chess.Colour) string {
	if colour == chess.White {
		return "."
	}
	return "..."
}

// Status returns whether the game is over and why. Draw rules are only
// applied if enabled in the configuration.
func (g *Game) Status() Status {
	colour := g.board.ToMove
	if !engine.CanMove(g.board, colour) {
		if g.board.InCheck(colour) {
			return Checkmate
		}
		return Stalemate
	}
	switch {
	case g.rules.InsufficientMaterial && engine.HasInsufficientMaterial(g.board):
		return InsufficientMaterial
	case g.rules.FiftyMoveRule && engine.IsFiftyMoveDraw(g.board):
		return FiftyMoveRule
	case g.rules.ThreefoldRepetition && g.repetitions.Count(g.board) >= 3:
		return ThreefoldRepetition
	}
	return Ongoing
}

// Result returns the PGN result string for the current status.
func (g *Game) Result() string {
	return g.Status().Result(g.board.ToMove)
}
