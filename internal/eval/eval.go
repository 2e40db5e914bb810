// Package eval provides the engine's evaluation backends. Evaluator is the
// one polymorphic seam in the engine: a classical hand-coded evaluator and
// an interchangeable HalfKP feature-based one share the same contract.
package eval

import "github.com/Al0den/AloEngine/internal/board"

// Evaluator scores a position in centipawns from the side-to-move's point
// of view. Positive means the side to move is better.
type Evaluator interface {
	Evaluate(b *board.Board) int
}

// Piece-square tables, indexed by sq64 from White's perspective; Black's
// value for a piece is looked up via the mirrored square (sq64.Mirror()).
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMidgamePST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingEndgamePST = [64]int{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

func pstFor(p board.Piece) *[64]int {
	switch p {
	case board.WP, board.BP:
		return &pawnPST
	case board.WN, board.BN:
		return &knightPST
	case board.WB, board.BB:
		return &bishopPST
	case board.WR, board.BR:
		return &rookPST
	case board.WQ, board.BQ:
		return &queenPST
	default:
		return nil
	}
}

// EndgameMaterial is the ENDGAME_MAT threshold (one rook, two knights, two
// pawns, and a king) below which a side's material counts as "endgame" for
// king PST selection.
const EndgameMaterial = board.ValueRook + 2*board.ValueKnight + 2*board.ValuePawn + board.ValueKing

// Classical is the hand-coded material-plus-piece-square-table evaluator.
type Classical struct{}

// Evaluate implements Evaluator.
func (Classical) Evaluate(b *board.Board) int {
	if b.PieceNum[board.WP] == 0 && b.PieceNum[board.BP] == 0 && materialDraw(b) {
		return 0
	}
	if b.FiftyMove >= 100 || b.IsRepetition() {
		return 0
	}

	score := b.Material[board.White] - b.Material[board.Black]

	for sq := board.Sq64(0); sq < 64; sq++ {
		sq120 := board.Sq64ToSq120[sq]
		pce := b.Pieces[sq120]
		if pce == board.Empty {
			continue
		}

		switch pce {
		case board.WK:
			score += kingPST(b, board.White, sq)
		case board.BK:
			score -= kingPST(b, board.Black, sq.Mirror())
		default:
			if pst := pstFor(pce); pst != nil {
				if board.PieceColor[pce] == board.White {
					score += pst[sq]
				} else {
					score -= pst[sq.Mirror()]
				}
			}
		}
	}

	if b.Side == board.White {
		return score
	}
	return -score
}

func kingPST(b *board.Board, c board.Color, sq board.Sq64) int {
	if b.Material[c] < EndgameMaterial {
		return kingEndgamePST[sq]
	}
	return kingMidgamePST[sq]
}

// materialDraw reports whether the remaining material on both sides is
// insufficient to force checkmate (assumes no pawns remain, checked by the
// caller via PieceNum[WP]==PieceNum[BP]==0). Gates on piece counts, not
// Material totals, since Material always includes each side's king value.
func materialDraw(b *board.Board) bool {
	if b.PieceNum[board.WR] != 0 || b.PieceNum[board.BR] != 0 {
		return false
	}
	if b.PieceNum[board.WQ] != 0 || b.PieceNum[board.BQ] != 0 {
		return false
	}
	if b.PieceNum[board.WB] != 0 || b.PieceNum[board.BB] != 0 {
		return b.PieceNum[board.WB]+b.PieceNum[board.WN] < 2 && b.PieceNum[board.BB]+b.PieceNum[board.BN] < 2
	}
	return b.PieceNum[board.WN] < 3 && b.PieceNum[board.BN] < 3
}
