package eval

import (
	"testing"

	"github.com/Al0den/AloEngine/internal/board"
)

func TestClassicalEvaluationIsSymmetric(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R b KQ - 1 8",
	}

	var e Classical
	for _, fen := range fens {
		b, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		got, want := e.Evaluate(b), -e.Evaluate(b.Mirror())
		if got != want {
			t.Errorf("%s: Evaluate(b)=%d, -Evaluate(mirror(b))=%d", fen, got, want)
		}
	}
}

func TestClassicalDetectsInsufficientMaterial(t *testing.T) {
	b, err := board.ParseFEN("8/8/8/4k3/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var e Classical
	if got := e.Evaluate(b); got != 0 {
		t.Errorf("bare kings: Evaluate = %d, want 0", got)
	}
}

func TestClassicalFiftyMoveDraw(t *testing.T) {
	b, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 100 60")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var e Classical
	if got := e.Evaluate(b); got != 0 {
		t.Errorf("fifty-move position: Evaluate = %d, want 0", got)
	}
}
