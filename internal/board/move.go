package board

import "fmt"

// Move packs a move into 32 bits:
//
//	bits 0-6   from sq120
//	bits 7-13  to sq120
//	bits 14-17 captured piece code (0 if none)
//	bit  18    en-passant flag
//	bit  19    pawn double-push flag
//	bits 20-23 promoted piece code (0 if none)
//	bit  24    castle flag
type Move uint32

const (
	moveFromMask      = 0x7F
	moveToShift       = 7
	moveToMask        = 0x7F
	moveCapturedShift = 14
	moveCapturedMask  = 0xF
	MoveFlagEnPassant = 1 << 18
	MoveFlagPawnStart = 1 << 19
	movePromotedShift = 20
	movePromotedMask  = 0xF
	MoveFlagCastle    = 1 << 24
)

// NoMove represents an absent move (sent as "0000" over UCI).
const NoMove Move = 0

// NewMove packs a move. flags is any combination of MoveFlagEnPassant,
// MoveFlagPawnStart, and MoveFlagCastle.
func NewMove(from, to Sq120, captured, promoted Piece, flags uint32) Move {
	return Move(from) |
		Move(to)<<moveToShift |
		Move(captured)<<moveCapturedShift |
		Move(promoted)<<movePromotedShift |
		Move(flags)
}

func (m Move) From() Sq120        { return Sq120(m & moveFromMask) }
func (m Move) To() Sq120          { return Sq120((m >> moveToShift) & moveToMask) }
func (m Move) Captured() Piece    { return Piece((m >> moveCapturedShift) & moveCapturedMask) }
func (m Move) Promoted() Piece    { return Piece((m >> movePromotedShift) & movePromotedMask) }
func (m Move) IsEnPassant() bool  { return m&MoveFlagEnPassant != 0 }
func (m Move) IsPawnStart() bool  { return m&MoveFlagPawnStart != 0 }
func (m Move) IsCastle() bool     { return m&MoveFlagCastle != 0 }
func (m Move) IsCapture() bool    { return m.Captured() != Empty || m.IsEnPassant() }
func (m Move) IsPromotion() bool  { return m.Promoted() != Empty }
func (m Move) IsQuiet() bool      { return !m.IsCapture() && !m.IsPromotion() }

// String renders long algebraic notation: "e2e4", "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(promotionLetters[m.Promoted()])
	}
	return s
}

var promotionLetters = map[Piece]byte{
	WQ: 'q', WR: 'r', WB: 'b', WN: 'n',
	BQ: 'q', BR: 'r', BB: 'b', BN: 'n',
}

// ScoredMove pairs a move with its move-ordering score.
type ScoredMove struct {
	Move  Move
	Score int
}

// MoveListCapacity bounds a single position's pseudo-legal move count with
// generous headroom (the true maximum is well under 220).
const MoveListCapacity = 256

// MoveList is a fixed-capacity, stack-friendly buffer of scored moves —
// one is allocated per search node, never resized.
type MoveList struct {
	Moves [MoveListCapacity]ScoredMove
	Count int
}

// Add appends a move with its ordering score.
func (ml *MoveList) Add(m Move, score int) {
	ml.Moves[ml.Count] = ScoredMove{Move: m, Score: score}
	ml.Count++
}

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.Count; i++ {
		if ml.Moves[i].Move == m {
			return true
		}
	}
	return false
}

func (ml *MoveList) String() string {
	s := fmt.Sprintf("MoveList (%d moves):\n", ml.Count)
	for i := 0; i < ml.Count; i++ {
		s += fmt.Sprintf("  %2d. %-6s score=%d\n", i+1, ml.Moves[i].Move, ml.Moves[i].Score)
	}
	return s
}
