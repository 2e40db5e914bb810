package board

import "testing"

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/8/8/8/8/8/6k1/4K2R w K - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", fen, err)
			}
			if err := b.Validate(); err != nil {
				t.Fatalf("Validate after ParseFEN(%q): %v", fen, err)
			}

			out := b.FEN()
			b2, err := ParseFEN(out)
			if err != nil {
				t.Fatalf("ParseFEN(round-trip %q): %v", out, err)
			}
			if b2.PosKey != b.PosKey {
				t.Errorf("round-tripped FEN %q produced a different position (key %016X vs %016X)", out, b2.PosKey, b.PosKey)
			}
		})
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"not a fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error, got nil", fen)
		}
	}
}
