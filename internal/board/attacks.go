package board

// pawnCaptureDir holds the two sq120 deltas a pawn of each color captures
// along (diagonally forward).
var pawnCaptureDir = [2][2]int{
	White: {9, 11},
	Black: {-9, -11},
}

// SqAttacked reports whether any piece belonging to side attacks sq. It
// checks pawns, knights, the king, and the four orthogonal plus four
// diagonal rays (stopping at the first occupied square on each ray).
func (b *Board) SqAttacked(sq Sq120, side Color) bool {
	if !sq.IsOnBoard() {
		return false
	}

	pawn := PawnOf(side)
	for _, d := range pawnCaptureDir[side] {
		if b.Pieces[sq-Sq120(d)] == pawn {
			return true
		}
	}

	knight := WN
	if side == Black {
		knight = BN
	}
	for i := 0; i < PieceDirCount[knight]; i++ {
		if b.Pieces[sq+Sq120(PieceDir[knight][i])] == knight {
			return true
		}
	}

	king := KingOf(side)
	for i := 0; i < PieceDirCount[king]; i++ {
		if b.Pieces[sq+Sq120(PieceDir[king][i])] == king {
			return true
		}
	}

	rook := WR
	queen := WQ
	bishop := WB
	if side == Black {
		rook, queen, bishop = BR, BQ, BB
	}

	for _, d := range rookDir {
		t := sq + Sq120(d)
		for t.IsOnBoard() {
			pce := b.Pieces[t]
			if pce != Empty {
				if pce == rook || pce == queen {
					return true
				}
				break
			}
			t += Sq120(d)
		}
	}

	for _, d := range bishopDir {
		t := sq + Sq120(d)
		for t.IsOnBoard() {
			pce := b.Pieces[t]
			if pce != Empty {
				if pce == bishop || pce == queen {
					return true
				}
				break
			}
			t += Sq120(d)
		}
	}

	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (b *Board) InCheck() bool {
	return b.SqAttacked(b.KingSq[b.Side], b.Side.Other())
}
