package board

// swapColorPiece maps a piece to its opposite-color counterpart (Empty and
// OffBoard map to themselves).
func swapColorPiece(p Piece) Piece {
	switch p {
	case WP:
		return BP
	case WN:
		return BN
	case WB:
		return BB
	case WR:
		return BR
	case WQ:
		return BQ
	case WK:
		return BK
	case BP:
		return WP
	case BN:
		return WN
	case BB:
		return WB
	case BR:
		return WR
	case BQ:
		return WQ
	case BK:
		return WK
	default:
		return p
	}
}

func mirrorSq120(sq Sq120) Sq120 {
	if !sq.IsOnBoard() {
		return NoSquare
	}
	return Sq64ToSq120[Sq120ToSq64[sq].Mirror()]
}

// Mirror returns a new board reflected across the horizontal midline with
// colors swapped: every white piece becomes the equivalent black piece on
// the rank-flipped square and vice versa, with the side to move unchanged.
// Keeping side to move fixed is what makes evaluation symmetry meaningful:
// eval(b) == -eval(b.Mirror()), since swapping the armies while asking the
// same side to move negates the side-relative score.
func (b *Board) Mirror() *Board {
	nb := &Board{}
	nb.Reset()

	for sq := Sq64(0); sq < 64; sq++ {
		pce := b.Pieces[Sq64ToSq120[sq]]
		if pce == Empty {
			continue
		}
		nb.AddPiece(mirrorSq120(Sq64ToSq120[sq]), swapColorPiece(pce))
	}

	nb.Side = b.Side
	nb.EnPas = mirrorSq120(b.EnPas)

	nb.CastlePerm = 0
	if b.CastlePerm&WKCA != 0 {
		nb.CastlePerm |= BKCA
	}
	if b.CastlePerm&WQCA != 0 {
		nb.CastlePerm |= BQCA
	}
	if b.CastlePerm&BKCA != 0 {
		nb.CastlePerm |= WKCA
	}
	if b.CastlePerm&BQCA != 0 {
		nb.CastlePerm |= WQCA
	}

	nb.FiftyMove = b.FiftyMove
	nb.HisPly = b.HisPly
	nb.PosKey = nb.GenerateKey()

	return nb
}
