// Package uci implements the UCI text protocol loop: it owns stdin/stdout,
// translates commands into internal/board and internal/search calls, and
// formats search progress back out as "info"/"bestmove" lines.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/Al0den/AloEngine/internal/board"
	"github.com/Al0den/AloEngine/internal/eval"
	"github.com/Al0den/AloEngine/internal/search"
	"github.com/Al0den/AloEngine/internal/tt"
)

const (
	engineName   = "AloEngine"
	engineAuthor = "AloEngine contributors"

	defaultHashMB = 256
	minHashMB     = 1
	maxHashMB     = 4096
)

// UCI drives one engine session over an input/output stream pair.
type UCI struct {
	in  *bufio.Scanner
	out io.Writer

	board    *board.Board
	table    *tt.Table
	searcher *search.Searcher

	searching     bool
	stopRequested atomic.Bool
	quitRequested atomic.Bool
	searchDone    chan struct{}
}

// New creates a session reading commands from in and writing responses to out.
func New(in io.Reader, out io.Writer) *UCI {
	b := board.NewBoard()
	table := tt.New(defaultHashMB)
	u := &UCI{
		in:       bufio.NewScanner(in),
		out:      out,
		board:    b,
		table:    table,
		searcher: search.NewSearcher(b, table, eval.Classical{}),
	}
	return u
}

// Run executes the main command loop until "quit" or end of input.
func (u *UCI) Run() {
	for u.in.Scan() {
		line := strings.TrimSpace(u.in.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Fprintln(u.out, "readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			u.handleStop()
		case "quit":
			u.handleStop()
			return
		case "setoption":
			u.handleSetOption(args)
		case "d":
			fmt.Fprint(u.out, u.board.String())
		case "perft":
			u.handlePerft(args)
		}

		if u.quitRequested.Load() {
			return
		}
	}
}

func (u *UCI) handleUCI() {
	fmt.Fprintf(u.out, "id name %s\n", engineName)
	fmt.Fprintf(u.out, "id author %s\n", engineAuthor)
	fmt.Fprintf(u.out, "option name Hash type spin default %d min %d max %d\n", defaultHashMB, minHashMB, maxHashMB)
	fmt.Fprintln(u.out, "option name Clear Hash type button")
	fmt.Fprintln(u.out, "option name Threads type spin default 1 min 1 max 1")
	fmt.Fprintln(u.out, "uciok")
}

func (u *UCI) handleNewGame() {
	u.board = board.NewBoard()
	u.table.Clear()
	u.searcher = search.NewSearcher(u.board, u.table, eval.Classical{})
}

// handlePosition implements:
//
//	position startpos [moves m1 m2 ...]
//	position fen <FEN> [moves m1 m2 ...]
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	movesIdx := -1
	for i, a := range args {
		if a == "moves" {
			movesIdx = i
			break
		}
	}

	var fenFields []string
	switch args[0] {
	case "startpos":
		fenFields = nil
	case "fen":
		end := len(args)
		if movesIdx >= 0 {
			end = movesIdx
		}
		if end <= 1 {
			return
		}
		fenFields = args[1:end]
	default:
		return
	}

	var b *board.Board
	var err error
	if fenFields == nil {
		b = board.NewBoard()
	} else {
		b, err = board.ParseFEN(strings.Join(fenFields, " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string invalid FEN: %v\n", err)
			b = board.NewBoard()
		}
	}
	u.board = b
	u.searcher.Board = b

	if movesIdx >= 0 {
		for _, moveStr := range args[movesIdx+1:] {
			move := u.parseMove(moveStr)
			if move == board.NoMove {
				fmt.Fprintf(os.Stderr, "info string unknown move %q, ignoring rest of move list\n", moveStr)
				break
			}
			u.board.MakeMove(move)
		}
	}

	u.board.Ply = 0
}

// parseMove matches UCI long-algebraic text against the currently
// pseudo-legal moves, returning board.NoMove if nothing matches.
func (u *UCI) parseMove(moveStr string) board.Move {
	if len(moveStr) < 4 {
		return board.NoMove
	}
	from, err := board.ParseSquare(moveStr[0:2])
	if err != nil {
		return board.NoMove
	}
	to, err := board.ParseSquare(moveStr[2:4])
	if err != nil {
		return board.NoMove
	}

	var promoted board.Piece
	if len(moveStr) >= 5 {
		side := u.board.Side
		switch moveStr[4] {
		case 'q':
			promoted = board.PromotedPieces[side][0]
		case 'r':
			promoted = board.PromotedPieces[side][1]
		case 'b':
			promoted = board.PromotedPieces[side][2]
		case 'n':
			promoted = board.PromotedPieces[side][3]
		}
	}

	list := u.board.GenerateAll()
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i].Move
		if m.From() == from && m.To() == to && m.Promoted() == promoted {
			return m
		}
	}
	return board.NoMove
}

func (u *UCI) handleGo(args []string) {
	limits := parseGoOptions(args, u.board.Side)

	u.stopRequested.Store(false)
	u.searching = true
	u.searchDone = make(chan struct{})
	u.searcher.Info.PollInput = func() (stop, quit bool) {
		return u.stopRequested.Load(), u.quitRequested.Load()
	}

	go func() {
		defer close(u.searchDone)

		result := u.searcher.SearchPosition(limits, func(r search.Result) {
			u.sendInfo(r)
		})

		u.searching = false

		best := board.NoMove
		if len(result.PV) > 0 {
			best = result.PV[0]
		}
		fmt.Fprintf(u.out, "bestmove %s\n", best)
	}()
}

func parseGoOptions(args []string, side board.Color) search.Limits {
	var limits search.Limits
	var wtime, btime, winc, binc int

	for i := 0; i < len(args); i++ {
		next := func() int {
			if i+1 >= len(args) {
				return 0
			}
			i++
			n, _ := strconv.Atoi(args[i])
			return n
		}

		switch args[i] {
		case "wtime":
			wtime = next()
		case "btime":
			btime = next()
		case "winc":
			winc = next()
		case "binc":
			binc = next()
		case "movestogo":
			limits.MovesToGo = next()
		case "movetime":
			limits.MoveTimeMS = next()
		case "depth":
			limits.Depth = next()
		case "infinite":
			limits.Infinite = true
		}
	}

	if side == board.White {
		limits.TimeMS, limits.IncMS = wtime, winc
	} else {
		limits.TimeMS, limits.IncMS = btime, binc
	}

	return limits
}

// sendInfo formats one completed iterative-deepening iteration.
func (u *UCI) sendInfo(r search.Result) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %d score %s nodes %d time %d", r.Depth, formatScore(r.Score), r.Nodes, r.Time.Milliseconds())

	ms := r.Time.Milliseconds()
	if ms > 0 {
		nps := r.Nodes * 1000 / uint64(ms)
		fmt.Fprintf(&sb, " nps %d", nps)
	}

	if len(r.PV) > 0 {
		sb.WriteString(" pv")
		for _, m := range r.PV {
			sb.WriteByte(' ')
			sb.WriteString(m.String())
		}
	}

	fmt.Fprintln(u.out, sb.String())
}

func formatScore(score int) string {
	if score > tt.IsMate {
		return fmt.Sprintf("mate %d", (tt.Mate-score+1)/2)
	}
	if score < -tt.IsMate {
		return fmt.Sprintf("mate %d", -(tt.Mate+score+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}

func (u *UCI) handleStop() {
	if u.searching {
		u.stopRequested.Store(true)
		<-u.searchDone
	}
}

func (u *UCI) handleSetOption(args []string) {
	name, value := parseSetOption(args)
	switch name {
	case "Hash":
		mb, err := strconv.Atoi(value)
		if err != nil || mb < minHashMB {
			return
		}
		if mb > maxHashMB {
			mb = maxHashMB
		}
		u.table.Resize(mb)
	case "Clear Hash":
		u.table.Clear()
	case "Threads":
		// single-threaded engine: accepted, ignored.
	}
}

// parseSetOption extracts name/value from "name <N...> value <V...>".
func parseSetOption(args []string) (name, value string) {
	var nameParts, valueParts []string
	mode := 0 // 0=none, 1=name, 2=value
	for _, a := range args {
		switch a {
		case "name":
			mode = 1
		case "value":
			mode = 2
		default:
			switch mode {
			case 1:
				nameParts = append(nameParts, a)
			case 2:
				valueParts = append(valueParts, a)
			}
		}
	}
	return strings.Join(nameParts, " "), strings.Join(valueParts, " ")
}

// handlePerft runs "perft <depth>" on the current position and reports a
// per-move node-count breakdown plus the total, the classic perft "divide".
func (u *UCI) handlePerft(args []string) {
	if len(args) < 1 {
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 {
		return
	}

	list := u.board.GenerateAll()
	var total uint64
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i].Move
		if !u.board.MakeMove(m) {
			continue
		}
		n := Perft(u.board, depth-1)
		u.board.UnmakeMove()
		fmt.Fprintf(u.out, "%s: %d\n", m, n)
		total += n
	}
	fmt.Fprintf(u.out, "\nNodes searched: %d\n", total)
}

// Perft counts leaf nodes at depth under pseudo-legal generation with
// illegal moves filtered at make-time.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	list := b.GenerateAll()
	var nodes uint64
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i].Move
		if !b.MakeMove(m) {
			continue
		}
		nodes += Perft(b, depth-1)
		b.UnmakeMove()
	}
	return nodes
}
