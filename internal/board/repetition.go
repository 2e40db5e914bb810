package board

// IsRepetition reports whether the current position's key matches any
// position recorded since the last capture or pawn move (history[i] for
// i in [hisPly-fiftyMove, hisPly)). A single prior occurrence is treated
// as a draw here — intentionally stronger than strict threefold, because
// it is cheap and sufficient to steer search away from repeating lines.
func (b *Board) IsRepetition() bool {
	start := b.HisPly - b.FiftyMove
	if start < 0 {
		start = 0
	}
	for i := start; i < len(b.History); i++ {
		if b.History[i].PosKey == b.PosKey {
			return true
		}
	}
	return false
}
