package eval

import "github.com/Al0den/AloEngine/internal/board"

// HalfKP feature dimensions: king-square x piece-type x piece-square, one
// feature set per perspective (king-relative, excluding kings themselves).
const (
	NumKingSquares  = 64
	NumPieceTypes   = 10 // P,N,B,R,Q for both colors, kings excluded
	NumPieceSquares = 64
	HalfKPSize      = NumKingSquares * NumPieceTypes * NumPieceSquares // 40960
)

// pieceTypeIndex maps a non-king piece to its 0-9 HalfKP piece-type index:
// white P,N,B,R,Q = 0-4, black p,n,b,r,q = 5-9. Kings and Empty return -1.
func pieceTypeIndex(p board.Piece) int {
	switch p {
	case board.WP:
		return 0
	case board.WN:
		return 1
	case board.WB:
		return 2
	case board.WR:
		return 3
	case board.WQ:
		return 4
	case board.BP:
		return 5
	case board.BN:
		return 6
	case board.BB:
		return 7
	case board.BR:
		return 8
	case board.BQ:
		return 9
	default:
		return -1
	}
}

// swapPerspective returns the piece as seen by the opposite perspective
// (black looking at the board sees white's pieces as "theirs").
func swapPerspective(p board.Piece) board.Piece {
	switch p {
	case board.WP:
		return board.BP
	case board.WN:
		return board.BN
	case board.WB:
		return board.BB
	case board.WR:
		return board.BR
	case board.WQ:
		return board.BQ
	case board.BP:
		return board.WP
	case board.BN:
		return board.WN
	case board.BB:
		return board.WB
	case board.BR:
		return board.WR
	case board.BQ:
		return board.WQ
	default:
		return p
	}
}

// HalfKPIndex computes the feature index of one (piece, square) observation
// as seen from perspective's king at kingSq. Black's perspective mirrors
// both squares and flips the piece's apparent color, so each side always
// "sees" the board as if it were playing White.
func HalfKPIndex(perspective board.Color, kingSq board.Sq64, pieceSq board.Sq64, pce board.Piece) int {
	if board.IsKing(pce) {
		return -1
	}

	k, s, p := kingSq, pieceSq, pce
	if perspective == board.Black {
		k = k.Mirror()
		s = s.Mirror()
		p = swapPerspective(p)
	}

	pi := pieceTypeIndex(p)
	if pi < 0 {
		return -1
	}

	return int(k)*(NumPieceTypes*NumPieceSquares) + pi*NumPieceSquares + int(s)
}

// GetActiveFeatures returns the active HalfKP feature indices from both
// perspectives for the current position.
func GetActiveFeatures(b *board.Board) (white, black []int) {
	white = make([]int, 0, 32)
	black = make([]int, 0, 32)

	whiteKing := board.Sq120ToSq64[b.KingSq[board.White]]
	blackKing := board.Sq120ToSq64[b.KingSq[board.Black]]

	for sq64 := board.Sq64(0); sq64 < 64; sq64++ {
		pce := b.Pieces[board.Sq64ToSq120[sq64]]
		if pce == board.Empty || board.IsKing(pce) {
			continue
		}
		if idx := HalfKPIndex(board.White, whiteKing, sq64, pce); idx >= 0 {
			white = append(white, idx)
		}
		if idx := HalfKPIndex(board.Black, blackKing, sq64, pce); idx >= 0 {
			black = append(black, idx)
		}
	}

	return white, black
}

// HalfKP is the interchangeable NNUE-style evaluation backend. It builds
// the same king-relative sparse feature set a quantized feed-forward
// network would consume, but does not load real weights or run inference
// (NNUE weight-file loading and matrix math are out of scope): Evaluate
// falls back to the classical score, so the interface is fully wired for
// a future weights loader to plug into without changing any caller.
type HalfKP struct {
	Fallback Classical
}

// Evaluate implements Evaluator.
func (h HalfKP) Evaluate(b *board.Board) int {
	_, _ = GetActiveFeatures(b)
	return h.Fallback.Evaluate(b)
}
