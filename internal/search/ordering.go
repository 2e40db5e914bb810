package search

import "github.com/Al0den/AloEngine/internal/board"

// scoreMoves layers per-node move-ordering context on top of the static
// capture/promotion scores board.GenerateAll already assigned: the
// transposition-table move (if present) becomes the highest-priority move,
// and quiet moves are scored by the killer-move and history heuristics.
func scoreMoves(b *board.Board, list *board.MoveList, ply int, ttMove board.Move) {
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i].Move

		if ttMove != board.NoMove && m == ttMove {
			list.Moves[i].Score = board.ScorePVMove
			continue
		}

		if !m.IsQuiet() {
			continue // static capture/promotion score already set
		}

		switch m {
		case b.SearchKillers[0][ply]:
			list.Moves[i].Score = board.ScoreKiller1
		case b.SearchKillers[1][ply]:
			list.Moves[i].Score = board.ScoreKiller2
		default:
			list.Moves[i].Score = b.SearchHistory[b.Pieces[m.From()]][m.To()]
		}
	}
}

// pickNextMove selection-sorts one slot: the highest-scored move among
// list.Moves[from:list.Count] is swapped into position from. Only the top
// move at each iteration matters (most nodes beta-cut before the tail of
// the list is ever examined), so full sorting would waste work.
func pickNextMove(list *board.MoveList, from int) {
	best := from
	for i := from + 1; i < list.Count; i++ {
		if list.Moves[i].Score > list.Moves[best].Score {
			best = i
		}
	}
	if best != from {
		list.Moves[from], list.Moves[best] = list.Moves[best], list.Moves[from]
	}
}

// recordKiller and recordHistory update the Board's move-ordering state
// after a quiet move causes a beta cutoff.
func recordKiller(b *board.Board, ply int, move board.Move) {
	if b.SearchKillers[0][ply] == move {
		return
	}
	b.SearchKillers[1][ply] = b.SearchKillers[0][ply]
	b.SearchKillers[0][ply] = move
}

func recordHistory(b *board.Board, move board.Move, depth int) {
	b.SearchHistory[b.Pieces[move.From()]][move.To()] += depth * depth
}
