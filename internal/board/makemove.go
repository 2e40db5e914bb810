package board

// clearEnPasKey XORs out whatever en-passant key is currently folded into
// PosKey. It is a no-op when EnPas == NoSquare, since no en-passant key is
// folded in then, so it is always safe to call.
func (b *Board) clearEnPasKey() {
	if b.EnPas != NoSquare {
		b.PosKey ^= PieceKeys[Empty][b.EnPas]
	}
}

func (b *Board) setEnPasKey(sq Sq120) {
	b.EnPas = sq
	if sq != NoSquare {
		b.PosKey ^= PieceKeys[Empty][sq]
	}
}

// MakeMove plays m on the board. It returns false (and leaves the board
// exactly as it was, via an internal Unmake) if m left the moving side's
// own king in check, i.e. m was pseudo-legal but not legal.
func (b *Board) MakeMove(m Move) bool {
	from, to := m.From(), m.To()
	side := b.Side

	b.History = append(b.History, Undo{
		Move:       m,
		CastlePerm: b.CastlePerm,
		EnPas:      b.EnPas,
		FiftyMove:  b.FiftyMove,
		PosKey:     b.PosKey,
	})

	if m.IsEnPassant() {
		if side == White {
			b.ClearPiece(to - 10)
		} else {
			b.ClearPiece(to + 10)
		}
	} else if m.Captured() != Empty {
		b.ClearPiece(to)
	}

	b.clearEnPasKey()
	b.PosKey ^= CastleKeys[b.CastlePerm]
	b.CastlePerm &= castlePermTable[from]
	b.CastlePerm &= castlePermTable[to]
	b.PosKey ^= CastleKeys[b.CastlePerm]
	b.EnPas = NoSquare

	b.FiftyMove++
	if m.Captured() != Empty || IsPawn(b.Pieces[from]) {
		b.FiftyMove = 0
	}

	if m.IsPawnStart() {
		if side == White {
			b.setEnPasKey(from + 10)
		} else {
			b.setEnPasKey(from - 10)
		}
	}

	b.MovePiece(from, to)

	if m.IsPromotion() {
		b.ClearPiece(to)
		b.AddPiece(to, m.Promoted())
	}

	if m.IsCastle() {
		switch to {
		case FR2Sq120(6, 0):
			b.MovePiece(FR2Sq120(7, 0), FR2Sq120(5, 0))
		case FR2Sq120(2, 0):
			b.MovePiece(FR2Sq120(0, 0), FR2Sq120(3, 0))
		case FR2Sq120(6, 7):
			b.MovePiece(FR2Sq120(7, 7), FR2Sq120(5, 7))
		case FR2Sq120(2, 7):
			b.MovePiece(FR2Sq120(0, 7), FR2Sq120(3, 7))
		}
	}

	b.Side = side.Other()
	b.PosKey ^= SideKey
	b.Ply++
	b.HisPly++

	if b.SqAttacked(b.KingSq[side], b.Side) {
		b.UnmakeMove()
		return false
	}
	return true
}

// UnmakeMove reverses the most recent MakeMove.
func (b *Board) UnmakeMove() {
	n := len(b.History) - 1
	undo := b.History[n]
	b.History = b.History[:n]

	b.Ply--
	b.HisPly--

	m := undo.Move
	from, to := m.From(), m.To()

	b.Side = b.Side.Other()

	if m.IsEnPassant() {
		if b.Side == White {
			b.AddPiece(to-10, PawnOf(Black))
		} else {
			b.AddPiece(to+10, PawnOf(White))
		}
	}

	if m.IsCastle() {
		switch to {
		case FR2Sq120(6, 0):
			b.MovePiece(FR2Sq120(5, 0), FR2Sq120(7, 0))
		case FR2Sq120(2, 0):
			b.MovePiece(FR2Sq120(3, 0), FR2Sq120(0, 0))
		case FR2Sq120(6, 7):
			b.MovePiece(FR2Sq120(5, 7), FR2Sq120(7, 7))
		case FR2Sq120(2, 7):
			b.MovePiece(FR2Sq120(3, 7), FR2Sq120(0, 7))
		}
	}

	if m.IsPromotion() {
		b.ClearPiece(to)
		b.AddPiece(to, PawnOf(b.Side))
	}

	b.MovePiece(to, from)

	if m.Captured() != Empty && !m.IsEnPassant() {
		b.AddPiece(to, m.Captured())
	}

	b.CastlePerm = undo.CastlePerm
	b.EnPas = undo.EnPas
	b.FiftyMove = undo.FiftyMove
	b.PosKey = undo.PosKey
}

// MakeNullMove passes the move: flips the side to move without touching
// any piece, for null-move pruning. It is never legality-checked.
func (b *Board) MakeNullMove() {
	b.History = append(b.History, Undo{
		Move:       NoMove,
		CastlePerm: b.CastlePerm,
		EnPas:      b.EnPas,
		FiftyMove:  b.FiftyMove,
		PosKey:     b.PosKey,
	})

	b.clearEnPasKey()
	b.EnPas = NoSquare
	b.Side = b.Side.Other()
	b.PosKey ^= SideKey
	b.Ply++
	b.HisPly++
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove() {
	n := len(b.History) - 1
	undo := b.History[n]
	b.History = b.History[:n]

	b.Ply--
	b.HisPly--
	b.Side = b.Side.Other()
	b.EnPas = undo.EnPas
	b.PosKey = undo.PosKey
}
