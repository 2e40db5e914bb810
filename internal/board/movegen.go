package board

// Move-ordering score bands (§4.2). Capture and promotion scores are
// computed eagerly at generation time since they only depend on board
// state; PV, killer and history scores need per-node search context and
// are layered on top by the searcher's move orderer.
const (
	ScorePVMove       = 2000000
	ScoreCaptureBase  = 1000000
	ScoreKiller1      = 900000
	ScoreKiller2      = 800000
	promoBonusQueen   = 900000
	promoBonusRook    = 500000
	promoBonusBishop  = 300000
	promoBonusKnight  = 100000
)

// victimWeight assigns each piece type an ordering weight (not its real
// material value) for MVV-LVA, matching the classic victim-score table:
// pawn=100, knight=200, bishop=300, rook=400, queen=500, king=600.
func victimWeight(p Piece) int {
	switch p {
	case WP, BP:
		return 100
	case WN, BN:
		return 200
	case WB, BB:
		return 300
	case WR, BR:
		return 400
	case WQ, BQ:
		return 500
	case WK, BK:
		return 600
	default:
		return 0
	}
}

// mvvLva scores a capture: higher-value victims and lower-value attackers
// sort first. victim=attacker=pawn (an en-passant capture) scores 105.
func mvvLva(victim, attacker Piece) int {
	return victimWeight(victim) + 6 - victimWeight(attacker)/100
}

func promotionBonus(promoted Piece) int {
	switch promoted {
	case WQ, BQ:
		return promoBonusQueen
	case WR, BR:
		return promoBonusRook
	case WB, BB:
		return promoBonusBishop
	case WN, BN:
		return promoBonusKnight
	default:
		return 0
	}
}

func (b *Board) addQuietMove(list *MoveList, m Move) {
	list.Add(m, 0)
}

func (b *Board) addCaptureMove(list *MoveList, m Move) {
	list.Add(m, ScoreCaptureBase+mvvLva(m.Captured(), b.Pieces[m.From()])+promotionBonus(m.Promoted()))
}

func (b *Board) addEnPassantMove(list *MoveList, m Move) {
	list.Add(m, ScoreCaptureBase+mvvLva(PawnOf(b.Side.Other()), PawnOf(b.Side)))
}

// addPawnMove emits a quiet pawn push, expanding it into the four
// promotion variants (queen first) when it reaches the back rank.
func (b *Board) addPawnMove(list *MoveList, from, to Sq120, side Color) {
	if to.Rank() == 7 || to.Rank() == 0 {
		for _, promoted := range PromotedPieces[side] {
			m := NewMove(from, to, Empty, promoted, 0)
			list.Add(m, ScoreCaptureBase+promotionBonus(promoted))
		}
		return
	}
	b.addQuietMove(list, NewMove(from, to, Empty, Empty, 0))
}

// addPawnCaptureMove emits a pawn capture, similarly expanding promotions.
func (b *Board) addPawnCaptureMove(list *MoveList, from, to Sq120, captured Piece, side Color) {
	if to.Rank() == 7 || to.Rank() == 0 {
		for _, promoted := range PromotedPieces[side] {
			m := NewMove(from, to, captured, promoted, 0)
			list.Add(m, ScoreCaptureBase+mvvLva(captured, b.Pieces[from])+promotionBonus(promoted))
		}
		return
	}
	b.addCaptureMove(list, NewMove(from, to, captured, Empty, 0))
}

// GenerateAll returns all pseudo-legal moves for the side to move.
// Legality (is my own king left in check?) is filtered at make-time.
func (b *Board) GenerateAll() *MoveList {
	list := &MoveList{}
	b.generatePawnMoves(list, true)
	b.generateLeaperMoves(list, true)
	b.generateSliderMoves(list, true)
	b.generateCastleMoves(list)
	return list
}

// GenerateCaptures returns captures, en-passant, and promotion captures
// only — the quiescence search's move set.
func (b *Board) GenerateCaptures() *MoveList {
	list := &MoveList{}
	b.generatePawnMoves(list, false)
	b.generateLeaperMoves(list, false)
	b.generateSliderMoves(list, false)
	return list
}

func (b *Board) generatePawnMoves(list *MoveList, includeQuiet bool) {
	side := b.Side
	pawn := PawnOf(side)
	push, startRank, promoRankCheckRank := 10, 1, 6
	if side == Black {
		push, startRank, promoRankCheckRank = -10, 6, 1
	}
	_ = promoRankCheckRank

	for i := 0; i < b.PieceNum[pawn]; i++ {
		from := b.PieceList[pawn][i]

		if includeQuiet {
			oneAhead := from + Sq120(push)
			if b.Pieces[oneAhead] == Empty {
				b.addPawnMove(list, from, oneAhead, side)

				twoAhead := oneAhead + Sq120(push)
				if from.Rank() == startRank && b.Pieces[twoAhead] == Empty {
					b.addQuietMove(list, NewMove(from, twoAhead, Empty, Empty, MoveFlagPawnStart))
				}
			}
		}

		for _, d := range pawnCaptureDir[side] {
			to := from + Sq120(d)
			if !to.IsOnBoard() {
				continue
			}
			target := b.Pieces[to]
			if target != Empty && target != OffBoard && PieceColor[target] == side.Other() {
				b.addPawnCaptureMove(list, from, to, target, side)
			} else if to == b.EnPas {
				b.addEnPassantMove(list, NewMove(from, to, PawnOf(side.Other()), Empty, MoveFlagEnPassant))
			}
		}
	}
}

func (b *Board) generateLeaperMoves(list *MoveList, includeQuiet bool) {
	side := b.Side
	for _, pce := range [2]Piece{knightOf(side), KingOf(side)} {
		for i := 0; i < b.PieceNum[pce]; i++ {
			from := b.PieceList[pce][i]
			for d := 0; d < PieceDirCount[pce]; d++ {
				to := from + Sq120(PieceDir[pce][d])
				if !to.IsOnBoard() {
					continue
				}
				target := b.Pieces[to]
				if target == Empty {
					if includeQuiet {
						b.addQuietMove(list, NewMove(from, to, Empty, Empty, 0))
					}
				} else if PieceColor[target] == side.Other() {
					b.addCaptureMove(list, NewMove(from, to, target, Empty, 0))
				}
			}
		}
	}
}

func (b *Board) generateSliderMoves(list *MoveList, includeQuiet bool) {
	side := b.Side
	sliders := [2]Piece{bishopOf(side), rookOf(side)}
	queen := WQ
	if side == Black {
		queen = BQ
	}

	for _, pce := range [3]Piece{sliders[0], sliders[1], queen} {
		for i := 0; i < b.PieceNum[pce]; i++ {
			from := b.PieceList[pce][i]
			for d := 0; d < PieceDirCount[pce]; d++ {
				dir := Sq120(PieceDir[pce][d])
				to := from + dir
				for to.IsOnBoard() {
					target := b.Pieces[to]
					if target == Empty {
						if includeQuiet {
							b.addQuietMove(list, NewMove(from, to, Empty, Empty, 0))
						}
						to += dir
						continue
					}
					if PieceColor[target] == side.Other() {
						b.addCaptureMove(list, NewMove(from, to, target, Empty, 0))
					}
					break
				}
			}
		}
	}
}

func (b *Board) generateCastleMoves(list *MoveList) {
	side := b.Side
	enemy := side.Other()

	if side == White {
		if b.CastlePerm&WKCA != 0 &&
			b.Pieces[FR2Sq120(5, 0)] == Empty && b.Pieces[FR2Sq120(6, 0)] == Empty &&
			!b.SqAttacked(FR2Sq120(4, 0), enemy) && !b.SqAttacked(FR2Sq120(5, 0), enemy) && !b.SqAttacked(FR2Sq120(6, 0), enemy) {
			b.addQuietMove(list, NewMove(FR2Sq120(4, 0), FR2Sq120(6, 0), Empty, Empty, MoveFlagCastle))
		}
		if b.CastlePerm&WQCA != 0 &&
			b.Pieces[FR2Sq120(3, 0)] == Empty && b.Pieces[FR2Sq120(2, 0)] == Empty && b.Pieces[FR2Sq120(1, 0)] == Empty &&
			!b.SqAttacked(FR2Sq120(4, 0), enemy) && !b.SqAttacked(FR2Sq120(3, 0), enemy) && !b.SqAttacked(FR2Sq120(2, 0), enemy) {
			b.addQuietMove(list, NewMove(FR2Sq120(4, 0), FR2Sq120(2, 0), Empty, Empty, MoveFlagCastle))
		}
		return
	}

	if b.CastlePerm&BKCA != 0 &&
		b.Pieces[FR2Sq120(5, 7)] == Empty && b.Pieces[FR2Sq120(6, 7)] == Empty &&
		!b.SqAttacked(FR2Sq120(4, 7), enemy) && !b.SqAttacked(FR2Sq120(5, 7), enemy) && !b.SqAttacked(FR2Sq120(6, 7), enemy) {
		b.addQuietMove(list, NewMove(FR2Sq120(4, 7), FR2Sq120(6, 7), Empty, Empty, MoveFlagCastle))
	}
	if b.CastlePerm&BQCA != 0 &&
		b.Pieces[FR2Sq120(3, 7)] == Empty && b.Pieces[FR2Sq120(2, 7)] == Empty && b.Pieces[FR2Sq120(1, 7)] == Empty &&
		!b.SqAttacked(FR2Sq120(4, 7), enemy) && !b.SqAttacked(FR2Sq120(3, 7), enemy) && !b.SqAttacked(FR2Sq120(2, 7), enemy) {
		b.addQuietMove(list, NewMove(FR2Sq120(4, 7), FR2Sq120(2, 7), Empty, Empty, MoveFlagCastle))
	}
}

func knightOf(c Color) Piece {
	if c == White {
		return WN
	}
	return BN
}
func bishopOf(c Color) Piece {
	if c == White {
		return WB
	}
	return BB
}
func rookOf(c Color) Piece {
	if c == White {
		return WR
	}
	return BR
}

// MoveExists reports whether m is a pseudo-legal move for the side to move
// that also passes legality (its own king is not left in check).
func (b *Board) MoveExists(m Move) bool {
	list := b.GenerateAll()
	for i := 0; i < list.Count; i++ {
		if list.Moves[i].Move != m {
			continue
		}
		undo := b.MakeMove(m)
		if !undo {
			return false
		}
		b.UnmakeMove()
		return true
	}
	return false
}
