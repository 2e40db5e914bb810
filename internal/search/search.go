// Package search implements iterative-deepening negamax alpha-beta search
// with null-move pruning, late-move reductions, quiescence, and repetition/
// fifty-move draw detection, on top of internal/board and internal/tt.
package search

import (
	"time"

	"github.com/Al0den/AloEngine/internal/board"
	"github.com/Al0den/AloEngine/internal/eval"
	"github.com/Al0den/AloEngine/internal/tt"
)

// Config collects the engine's tunables. The non-conventional defaults
// (null-move reduction fixed at depth-6, not depth-3-depth/4) are
// deliberate and documented, not placeholders awaiting a fix.
type Config struct {
	HashMB int

	NullMoveMinDepth  int // minimum depth at which null-move pruning applies
	NullMoveReduction int // depth reduction applied to the null-move search

	LMRMinDepth   int // minimum depth at which late-move reduction applies
	LMRMinMoveNum int // move index (0-based) after which LMR applies
}

// DefaultConfig returns the tunables the engine ships with.
func DefaultConfig() Config {
	return Config{
		HashMB:            256,
		NullMoveMinDepth:  6,
		NullMoveReduction: 6,
		LMRMinDepth:       3,
		LMRMinMoveNum:     3,
	}
}

// Limits are the UCI `go` parameters that drive time management.
type Limits struct {
	TimeMS      int
	IncMS       int
	MovesToGo   int
	MoveTimeMS  int
	Depth       int
	Infinite    bool
}

// Info is the mutable per-search state shared by every recursive frame:
// node count, cancellation flags, and the deadline. PollInput, when set,
// is called alongside the wall-clock check to detect a UCI "stop"/"quit"
// without blocking the search on stdin.
type Info struct {
	Depth     int
	StartTime time.Time
	StopTime  time.Time
	TimeSet   bool

	Nodes   uint64
	Stopped bool
	Quit    bool

	PollInput func() (stop, quit bool)
}

// Init derives StopTime from Limits following the documented formula:
// stopTime = startTime + allotted - 50ms + inc/2, allotted = time/movestogo.
func (info *Info) Init(limits Limits, start time.Time) {
	info.StartTime = start
	info.Stopped = false
	info.Quit = false
	info.Nodes = 0

	info.Depth = limits.Depth
	if info.Depth <= 0 || info.Depth > board.MaxDepth-1 {
		info.Depth = board.MaxDepth - 1
	}

	switch {
	case limits.MoveTimeMS > 0:
		info.TimeSet = true
		info.StopTime = start.Add(time.Duration(limits.MoveTimeMS) * time.Millisecond)
	case limits.TimeMS > 0:
		movesToGo := limits.MovesToGo
		if movesToGo <= 0 {
			movesToGo = 30
		}
		allotted := time.Duration(limits.TimeMS/movesToGo) * time.Millisecond
		inc := time.Duration(limits.IncMS) * time.Millisecond
		info.TimeSet = true
		info.StopTime = start.Add(allotted - 50*time.Millisecond + inc/2)
	default:
		info.TimeSet = false
	}

	if limits.Infinite {
		info.TimeSet = false
	}
}

// checkUp polls the wall clock and any pending UCI input. Called every
// 2048 nodes from both alphaBeta and quiescence.
func (info *Info) checkUp() {
	if info.TimeSet && time.Now().After(info.StopTime) {
		info.Stopped = true
	}
	if info.PollInput != nil {
		stop, quit := info.PollInput()
		if stop {
			info.Stopped = true
		}
		if quit {
			info.Stopped = true
			info.Quit = true
		}
	}
}

// Searcher owns the pieces a search borrows: the board, the transposition
// table, the evaluator, and the tunables, plus the per-search Info that
// each SearchPosition call reinitialises. Killers/history live on the
// Board itself.
type Searcher struct {
	Board  *board.Board
	TT     *tt.Table
	Eval   eval.Evaluator
	Config Config

	Info Info
}

// NewSearcher wires a searcher to a board, table, and evaluator.
func NewSearcher(b *board.Board, table *tt.Table, evaluator eval.Evaluator) *Searcher {
	return &Searcher{
		Board:  b,
		TT:     table,
		Eval:   evaluator,
		Config: DefaultConfig(),
	}
}

// Result is one iterative-deepening iteration's outcome, also the final
// report handed to the UCI layer.
type Result struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	PV    []board.Move
}

// SearchPosition runs iterative deepening from depth 1 to limits.Depth (or
// until time/input cancels it, or until a completed iteration returns a
// mate score, after which no deeper iteration is run), reporting each
// completed iteration via
// onIteration (may be nil). It returns the last fully completed iteration's
// result; a cancelled iteration's partial result is discarded.
func (s *Searcher) SearchPosition(limits Limits, onIteration func(Result)) Result {
	start := time.Now()
	s.Info.Init(limits, start)
	s.Board.SearchHistory = [board.NumPieces][board.BoardSquares]int{}
	s.Board.SearchKillers = [2][board.MaxDepth]board.Move{}

	var best Result

	for depth := 1; depth <= s.Info.Depth; depth++ {
		score := s.alphaBeta(-tt.Infinite, tt.Infinite, depth, true)

		if s.Info.Stopped {
			break
		}

		pvLen := tt.GetPvLine(s.TT, s.Board, depth)
		pv := append([]board.Move(nil), s.Board.PvArray[:pvLen]...)

		best = Result{
			Depth: depth,
			Score: score,
			Nodes: s.Info.Nodes,
			Time:  time.Since(start),
			PV:    pv,
		}

		if onIteration != nil {
			onIteration(best)
		}

		if score > tt.IsMate || score < -tt.IsMate {
			break
		}
	}

	return best
}

// alphaBeta is negamax alpha-beta search with null-move pruning, late-move
// reductions, and transposition-table probing/storing.
func (s *Searcher) alphaBeta(alpha, beta, depth int, doNull bool) int {
	if depth <= 0 {
		return s.quiescence(alpha, beta)
	}

	b := s.Board

	s.Info.Nodes++
	if s.Info.Nodes&2047 == 0 {
		s.Info.checkUp()
	}

	if b.Ply > 0 && (b.IsRepetition() || b.FiftyMove >= 100) {
		return 0
	}
	if b.Ply > board.MaxDepth-1 {
		return s.Eval.Evaluate(b)
	}

	inCheck := b.InCheck()
	if inCheck {
		depth++
	}

	ttMove, ttScore, ttUsable, _ := s.TT.Probe(b.PosKey, alpha, beta, depth, b.Ply)
	if ttUsable {
		return ttScore
	}

	if doNull && !inCheck && b.Ply > 0 && b.BigPieces[b.Side] > 0 && depth >= s.Config.NullMoveMinDepth {
		b.MakeNullMove()
		score := -s.alphaBeta(-beta, -beta+1, depth-s.Config.NullMoveReduction, false)
		b.UnmakeNullMove()

		if s.Info.Stopped {
			return 0
		}
		if score >= beta && score < tt.IsMate && score > -tt.IsMate {
			return beta
		}
	}

	list := b.GenerateAll()
	scoreMoves(b, list, b.Ply, ttMove)

	bestScore := -tt.Infinite
	bestMove := board.NoMove
	alphaOrig := alpha
	legalMoves := 0

	for i := 0; i < list.Count; i++ {
		pickNextMove(list, i)
		move := list.Moves[i].Move

		if !b.MakeMove(move) {
			continue
		}
		legalMoves++

		reduction := 0
		if depth >= s.Config.LMRMinDepth && i > s.Config.LMRMinMoveNum && move.IsQuiet() && !inCheck {
			reduction = 1
		}

		score := -s.alphaBeta(-beta, -alpha, depth-1-reduction, true)
		if reduction > 0 && score > alpha {
			score = -s.alphaBeta(-beta, -alpha, depth-1, true)
		}

		b.UnmakeMove()

		if s.Info.Stopped {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = move

			if score > alpha {
				if score >= beta {
					if move.IsQuiet() {
						recordKiller(b, b.Ply, move)
						recordHistory(b, move, depth)
					}
					s.TT.Store(b.PosKey, bestMove, beta, tt.FlagBeta, depth, b.Ply)
					return beta
				}
				alpha = score
			}
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return -tt.Mate + b.Ply
		}
		return 0
	}

	if alpha != alphaOrig {
		s.TT.Store(b.PosKey, bestMove, bestScore, tt.FlagExact, depth, b.Ply)
	} else {
		s.TT.Store(b.PosKey, bestMove, alpha, tt.FlagAlpha, depth, b.Ply)
	}

	return alpha
}

// quiescence resolves captures past the nominal search horizon to avoid
// the horizon effect. Deliberately has no TT probe/store and no delta
// pruning — captures-only widening is the entire extension.
func (s *Searcher) quiescence(alpha, beta int) int {
	b := s.Board

	s.Info.Nodes++
	if s.Info.Nodes&2047 == 0 {
		s.Info.checkUp()
	}

	if b.Ply > 0 && (b.IsRepetition() || b.FiftyMove >= 100) {
		return 0
	}
	if b.Ply > board.MaxDepth-1 {
		return s.Eval.Evaluate(b)
	}

	standPat := s.Eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	list := b.GenerateCaptures()
	scoreMoves(b, list, b.Ply, board.NoMove)

	for i := 0; i < list.Count; i++ {
		pickNextMove(list, i)
		move := list.Moves[i].Move

		if !b.MakeMove(move) {
			continue
		}

		score := -s.quiescence(-beta, -alpha)
		b.UnmakeMove()

		if s.Info.Stopped {
			return 0
		}

		if score > alpha {
			if score >= beta {
				return beta
			}
			alpha = score
		}
	}

	return alpha
}
