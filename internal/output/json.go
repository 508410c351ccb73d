package output

import (
	"strings"

	"github.com/lgbarn/negamax-chess/internal/chess"
	"github.com/lgbarn/negamax-chess/internal/engine"
	"github.com/lgbarn/negamax-chess/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	Status     string     `json:"status"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Moves      []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castling   string `json:"castling,omitempty"` // "kingside" or "queenside"
	FEN        string `json:"fen,omitempty"`
}

// JSONSearch represents one search result in JSON format.
type JSONSearch struct {
	FEN            string   `json:"fen"`
	BestMove       string   `json:"bestMove,omitempty"`
	UCI            string   `json:"uci,omitempty"`
	Value          int      `json:"value"`
	PV             []string `json:"pv,omitempty"`
	Nodes          uint64   `json:"nodes"`
	Leaves         uint64   `json:"leaves"`
	Cutoffs        uint64   `json:"cutoffs"`
	Transpositions uint64   `json:"transpositions"`
	ElapsedMS      int64    `json:"elapsedMs"`
	Error          string   `json:"error,omitempty"`
}

// JSONOutput holds everything written by one JSONWriter.
type JSONOutput struct {
	Games    []*JSONGame   `json:"games,omitempty"`
	Searches []*JSONSearch `json:"searches,omitempty"`
}

// GameToJSON converts a game. With includeFEN, every move carries the
// position after it.
func GameToJSON(g *game.Game, includeFEN bool) *JSONGame {
	history := g.History()
	jg := &JSONGame{
		ID:         g.ID.String(),
		Status:     g.Status().String(),
		Result:     g.Result(),
		PlyCount:   len(history),
		InitialFEN: g.StartFEN(),
		FinalFEN:   g.FEN(),
		Moves:      make([]JSONMove, 0, len(history)),
	}

	for _, rec := range history {
		jg.Moves = append(jg.Moves, convertRecord(rec))
	}
	if includeFEN {
		// Take the moves back on a copy of the final position.
		board := g.Board().Clone()
		for i := len(history) - 1; i >= 0; i-- {
			jg.Moves[i].FEN = engine.BoardToFEN(board)
			engine.Revert(board, history[i].Move)
		}
	}
	return jg
}

// convertRecord converts a single played move.
func convertRecord(rec game.Record) JSONMove {
	m := rec.Move
	jm := JSONMove{
		Color: colorName(rec.Colour),
		SAN:   rec.SAN,
		UCI:   m.UCI(),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: pieceTypeName(m.Piece.Kind),
	}
	if rec.Colour == chess.White {
		jm.MoveNumber = int(rec.MoveNumber)
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.Captured.Kind)
	}
	if m.IsPromotion() {
		jm.Promotion = pieceTypeName(m.PromoteTo)
	}
	if m.IsCastle() {
		jm.Castling = "queenside"
		if m.IsKingside() {
			jm.Castling = "kingside"
		}
	}
	return jm
}

// SearchToJSON converts a search report. PV moves are written in SAN.
func SearchToJSON(r SearchReport) *JSONSearch {
	js := &JSONSearch{
		FEN:            engine.BoardToFEN(r.Board),
		Value:          r.Result.Value,
		Nodes:          r.Result.Nodes,
		Leaves:         r.Result.Leaves,
		Cutoffs:        r.Result.Cutoffs,
		Transpositions: r.Result.Transpositions,
		ElapsedMS:      r.Elapsed.Milliseconds(),
	}
	if r.Err != nil {
		js.Error = r.Err.Error()
	}
	if !r.Result.Found {
		return js
	}
	js.BestMove = engine.SAN(r.Board, r.Result.Move)
	js.UCI = r.Result.Move.UCI()

	b := r.Board.Clone()
	for _, m := range r.Result.PV {
		js.PV = append(js.PV, engine.SAN(b, m))
		engine.Apply(b, m)
	}
	return js
}

// colorName returns "white" or "black".
func colorName(colour chess.Colour) string {
	return strings.ToLower(colour.String())
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(kind chess.PieceKind) string {
	switch kind {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
