package board

// Piece is one of the thirteen piece codes (Empty plus six piece types in
// each color), or OffBoard marking a sentinel mailbox cell.
type Piece int

const (
	Empty Piece = iota
	WP
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	OffBoard
)

// NumPieces bounds the piece-code range used to size piece-indexed tables.
const NumPieces = 13

// Color identifies a side, or Both for color-agnostic aggregates.
type Color int

const (
	White Color = iota
	Black
	Both
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "both"
	}
}

// Per-piece attribute tables, filled once by AllInit. Indexed by Piece.
var (
	PieceColor  [NumPieces]Color
	PieceValue  [NumPieces]int
	PieceBig    [NumPieces]bool // not a pawn (and not Empty)
	PieceMajor  [NumPieces]bool // rook, queen, or king
	PieceMinor  [NumPieces]bool // knight or bishop
	PieceSlides [NumPieces]bool // bishop, rook, or queen

	// PieceDir holds sq120 step deltas for the piece's movement rays
	// (knight/king: one step per direction; sliders: repeated along the
	// ray). PieceDirCount bounds how many of the 8 slots are valid.
	PieceDir      [NumPieces][8]int
	PieceDirCount [NumPieces]int
)

// Classical material values in centipawns, indexed by piece type (pawn..king).
const (
	ValuePawn   = 100
	ValueKnight = 325
	ValueBishop = 325
	ValueRook   = 550
	ValueQueen  = 1000
	ValueKing   = 50000
)

var (
	knightDir = [8]int{-8, -19, -21, -12, 8, 19, 21, 12}
	rookDir   = [4]int{-1, -10, 1, 10}
	bishopDir = [4]int{-9, -11, 11, 9}
	kingDir   = [8]int{-1, -10, 1, 10, -9, -11, 11, 9}
)

func initPieceAttrs() {
	type attr struct {
		p      Piece
		c      Color
		val    int
		big    bool
		major  bool
		minor  bool
		slides bool
		dirs   []int
	}
	table := []attr{
		{WP, White, ValuePawn, false, false, false, false, nil},
		{WN, White, ValueKnight, true, false, true, false, knightDir[:]},
		{WB, White, ValueBishop, true, false, true, true, bishopDir[:]},
		{WR, White, ValueRook, true, true, false, true, rookDir[:]},
		{WQ, White, ValueQueen, true, true, false, true, kingDir[:]},
		{WK, White, ValueKing, true, true, false, false, kingDir[:]},
		{BP, Black, ValuePawn, false, false, false, false, nil},
		{BN, Black, ValueKnight, true, false, true, false, knightDir[:]},
		{BB, Black, ValueBishop, true, false, true, true, bishopDir[:]},
		{BR, Black, ValueRook, true, true, false, true, rookDir[:]},
		{BQ, Black, ValueQueen, true, true, false, true, kingDir[:]},
		{BK, Black, ValueKing, true, true, false, false, kingDir[:]},
	}
	for _, a := range table {
		PieceColor[a.p] = a.c
		PieceValue[a.p] = a.val
		PieceBig[a.p] = a.big
		PieceMajor[a.p] = a.major
		PieceMinor[a.p] = a.minor
		PieceSlides[a.p] = a.slides
		PieceDirCount[a.p] = len(a.dirs)
		for i, d := range a.dirs {
			PieceDir[a.p][i] = d
		}
	}
}

// IsKnight, IsKing, IsPawn, IsRookOrQueen and IsBishopOrQueen classify a
// piece code by type, regardless of color.
func IsKnight(p Piece) bool { return p == WN || p == BN }
func IsKing(p Piece) bool   { return p == WK || p == BK }
func IsPawn(p Piece) bool   { return p == WP || p == BP }
func IsRookOrQueen(p Piece) bool {
	return p == WR || p == BR || p == WQ || p == BQ
}
func IsBishopOrQueen(p Piece) bool {
	return p == WB || p == BB || p == WQ || p == BQ
}

// PromotedPieces lists the four promotion targets in the order the move
// generator must emit them: queen first so move ordering sees it earliest.
var PromotedPieces = map[Color][4]Piece{
	White: {WQ, WR, WB, WN},
	Black: {BQ, BR, BB, BN},
}

// KingOf returns the king piece code for a color.
func KingOf(c Color) Piece {
	if c == White {
		return WK
	}
	return BK
}

// PawnOf returns the pawn piece code for a color.
func PawnOf(c Color) Piece {
	if c == White {
		return WP
	}
	return BP
}

// pieceChars maps a piece code to its FEN letter, by index Empty..BK.
var pieceChars = [NumPieces]byte{
	Empty: '.',
	WP:    'P', WN: 'N', WB: 'B', WR: 'R', WQ: 'Q', WK: 'K',
	BP: 'p', BN: 'n', BB: 'b', BR: 'r', BQ: 'q', BK: 'k',
}

func (p Piece) String() string {
	if p < 0 || int(p) >= NumPieces {
		return "?"
	}
	return string(pieceChars[p])
}

// PieceFromChar converts a FEN piece letter into a Piece, or Empty if the
// character is unrecognized.
func PieceFromChar(ch byte) Piece {
	for p := WP; p <= BK; p++ {
		if pieceChars[p] == ch {
			return p
		}
	}
	return Empty
}
