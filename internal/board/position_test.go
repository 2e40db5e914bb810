package board

import "testing"

// TestMakeUnmakeRestoresPosition walks every pseudo-legal move from a set of
// positions and checks that Make followed by Unmake reproduces the exact
// prior state (PosKey plus full Validate), for both legal and rejected
// (illegal) moves.
func TestMakeUnmakeRestoresPosition(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		before := *b
		beforeKey := b.PosKey

		list := b.GenerateAll()
		for i := 0; i < list.Count; i++ {
			m := list.Moves[i].Move
			// A rejected move has already been unmade inside MakeMove.
			if b.MakeMove(m) {
				b.UnmakeMove()
			}

			if b.PosKey != beforeKey {
				t.Fatalf("%s: PosKey changed after make/unmake of %s: %016X != %016X", fen, m, b.PosKey, beforeKey)
			}
			if err := b.Validate(); err != nil {
				t.Fatalf("%s: Validate failed after make/unmake of %s: %v", fen, m, err)
			}
			if b.Pieces != before.Pieces {
				t.Fatalf("%s: board contents changed after make/unmake of %s", fen, m)
			}
		}
	}
}

// TestMoveExistsAgreesWithGeneration checks that every move GenerateAll
// produces for the start position, MoveExists also accepts.
func TestMoveExistsAgreesWithGeneration(t *testing.T) {
	b := NewBoard()
	list := b.GenerateAll()
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i].Move
		if !b.MoveExists(m) {
			t.Errorf("MoveExists(%s) = false, want true", m)
		}
	}

	if b.MoveExists(NewMove(FR2Sq120(4, 0), FR2Sq120(4, 5), Empty, Empty, 0)) {
		t.Errorf("MoveExists accepted an impossible king hop e1-e6")
	}
}

func TestNullMoveRoundTrip(t *testing.T) {
	b := NewBoard()
	beforeKey := b.PosKey
	beforeSide := b.Side

	b.MakeNullMove()
	if b.Side == beforeSide {
		t.Fatalf("MakeNullMove did not flip side to move")
	}
	b.UnmakeNullMove()

	if b.PosKey != beforeKey {
		t.Errorf("PosKey after null-move round trip = %016X, want %016X", b.PosKey, beforeKey)
	}
	if b.Side != beforeSide {
		t.Errorf("Side after null-move round trip = %v, want %v", b.Side, beforeSide)
	}
}
