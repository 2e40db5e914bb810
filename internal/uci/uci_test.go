package uci

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Al0den/AloEngine/internal/board"
	"github.com/Al0den/AloEngine/internal/tt"
)

func newTestUCI() *UCI {
	return New(strings.NewReader(""), &bytes.Buffer{})
}

func TestHandleUCIAnnouncesIdentityAndOptions(t *testing.T) {
	var out bytes.Buffer
	u := New(strings.NewReader(""), &out)
	u.handleUCI()

	got := out.String()
	for _, want := range []string{"id name " + engineName, "id author", "option name Hash", "uciok"} {
		if !strings.Contains(got, want) {
			t.Errorf("handleUCI output missing %q, got:\n%s", want, got)
		}
	}
}

func TestHandlePositionStartposWithMoves(t *testing.T) {
	u := newTestUCI()
	u.handlePosition([]string{"startpos", "moves", "e2e4", "e7e5"})

	if u.board.Pieces[board.FR2Sq120(4, 3)] != board.WP { // e4
		t.Errorf("expected white pawn on e4 after e2e4 e7e5")
	}
	if u.board.Pieces[board.FR2Sq120(4, 4)] != board.BP { // e5
		t.Errorf("expected black pawn on e5 after e2e4 e7e5")
	}
	if u.board.Ply != 0 {
		t.Errorf("Ply after position command = %d, want 0", u.board.Ply)
	}
	if u.board.HisPly != 2 {
		t.Errorf("HisPly after two played moves = %d, want 2", u.board.HisPly)
	}
}

func TestHandlePositionFEN(t *testing.T) {
	u := newTestUCI()
	fen := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	u.handlePosition([]string{"fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "w", "KQkq", "-", "0", "1"})

	want, _ := board.ParseFEN(fen)
	if u.board.PosKey != want.PosKey {
		t.Errorf("position fen produced different PosKey than direct ParseFEN")
	}
}

func TestHandlePositionStopsOnUnknownMove(t *testing.T) {
	u := newTestUCI()
	u.handlePosition([]string{"startpos", "moves", "e2e4", "zz99", "e7e5"})

	if u.board.Pieces[board.FR2Sq120(4, 4)] == board.BP { // e5 should NOT have been played
		t.Errorf("move list should have stopped at the unknown move")
	}
	if u.board.HisPly != 1 {
		t.Errorf("HisPly = %d, want 1 (only e2e4 applied)", u.board.HisPly)
	}
}

func TestParseMoveRejectsIllegalText(t *testing.T) {
	u := newTestUCI()
	if m := u.parseMove("e2e5"); m != board.NoMove {
		t.Errorf("parseMove(%q) = %v, want NoMove", "e2e5", m)
	}
	if m := u.parseMove("xx"); m != board.NoMove {
		t.Errorf("parseMove with malformed text should return NoMove")
	}
}

func TestParseGoOptionsSelectsSideClock(t *testing.T) {
	limits := parseGoOptions([]string{"wtime", "5000", "btime", "6000", "winc", "100", "binc", "200", "movestogo", "20"}, board.Black)
	if limits.TimeMS != 6000 || limits.IncMS != 200 {
		t.Errorf("parseGoOptions for Black = {Time:%d Inc:%d}, want {6000 200}", limits.TimeMS, limits.IncMS)
	}
	if limits.MovesToGo != 20 {
		t.Errorf("MovesToGo = %d, want 20", limits.MovesToGo)
	}
}

func TestFormatScoreMateVsCentipawns(t *testing.T) {
	if got := formatScore(37); got != "cp 37" {
		t.Errorf("formatScore(37) = %q, want %q", got, "cp 37")
	}
	mateIn2 := tt.Mate - 3
	if got := formatScore(mateIn2); got != "mate 2" {
		t.Errorf("formatScore(%d) = %q, want %q", mateIn2, got, "mate 2")
	}
	if got := formatScore(-mateIn2); got != "mate -2" {
		t.Errorf("formatScore(%d) = %q, want %q", -mateIn2, got, "mate -2")
	}
}

func TestParseSetOptionNameValue(t *testing.T) {
	name, value := parseSetOption([]string{"name", "Hash", "value", "128"})
	if name != "Hash" || value != "128" {
		t.Errorf("parseSetOption = (%q, %q), want (%q, %q)", name, value, "Hash", "128")
	}

	name, value = parseSetOption([]string{"name", "Clear", "Hash"})
	if name != "Clear Hash" || value != "" {
		t.Errorf("parseSetOption multi-word name = (%q, %q), want (%q, \"\")", name, value, "Clear Hash")
	}
}

func TestHandleSetOptionResizesHash(t *testing.T) {
	u := newTestUCI()
	u.handleSetOption([]string{"name", "Hash", "value", "1"})
	if u.table.NumEntries() == 0 {
		t.Errorf("resizing Hash to 1MB should leave a usable table")
	}
}

func TestPerftStartingPositionDepth3(t *testing.T) {
	b := board.NewBoard()
	if got := Perft(b, 3); got != 8902 {
		t.Errorf("Perft(startpos, 3) = %d, want 8902", got)
	}
}
