package tt

import (
	"testing"

	"github.com/Al0den/AloEngine/internal/board"
)

func TestStoreThenProbeExactHit(t *testing.T) {
	table := New(1)
	key := uint64(0xABCDEF0123456789)
	move := board.NewMove(board.FR2Sq120(4, 1), board.FR2Sq120(4, 3), board.Empty, board.Empty, board.MoveFlagPawnStart)

	table.Store(key, move, 37, FlagExact, 4, 0)

	gotMove, gotScore, usable, hit := table.Probe(key, -1000, 1000, 4, 0)
	if !hit {
		t.Fatalf("Probe: hit = false, want true")
	}
	if !usable {
		t.Fatalf("Probe: usable = false, want true")
	}
	if gotMove != move {
		t.Errorf("Probe move = %v, want %v", gotMove, move)
	}
	if gotScore != 37 {
		t.Errorf("Probe score = %d, want 37", gotScore)
	}
}

func TestStoreLowerDepthIsNoOp(t *testing.T) {
	table := New(1)
	key := uint64(0x1122334455667788)
	m1 := board.NewMove(board.FR2Sq120(4, 1), board.FR2Sq120(4, 3), board.Empty, board.Empty, board.MoveFlagPawnStart)
	m2 := board.NewMove(board.FR2Sq120(1, 0), board.FR2Sq120(2, 2), board.Empty, board.Empty, 0)

	table.Store(key, m1, 100, FlagExact, 8, 0)
	table.Store(key, m2, -50, FlagExact, 3, 0)

	gotMove, gotScore, _, hit := table.Probe(key, -1000, 1000, 8, 0)
	if !hit {
		t.Fatalf("Probe: hit = false, want true")
	}
	if gotMove != m1 || gotScore != 100 {
		t.Errorf("lower-depth store overwrote existing entry: move=%v score=%d, want move=%v score=100", gotMove, gotScore, m1)
	}
}

func TestMateScoreSurvivesPlyAdjustedRoundTrip(t *testing.T) {
	table := New(1)
	key := uint64(0xDEADBEEFCAFEBABE)
	move := board.NewMove(board.FR2Sq120(0, 0), board.FR2Sq120(0, 7), board.Empty, board.Empty, 0)

	const storePly = 3
	mateScore := Mate - 5

	table.Store(key, move, mateScore, FlagExact, 10, storePly)

	const probePly = 1
	_, gotScore, usable, hit := table.Probe(key, -Infinite, Infinite, 10, probePly)
	if !hit || !usable {
		t.Fatalf("Probe: hit=%v usable=%v, want true,true", hit, usable)
	}
	// The mate is 5-3 = 2 plies beyond the stored node; seen from ply 1 it
	// is 1+2 = 3 plies from the root, i.e. Mate-3.
	if gotScore != mateScore+(storePly-probePly) {
		t.Errorf("mate score after ply adjustment = %d, want %d", gotScore, mateScore+(storePly-probePly))
	}
}

func TestProbeMissOnWrongKey(t *testing.T) {
	table := New(1)
	table.Store(0x1, board.NoMove, 0, FlagExact, 1, 0)

	_, _, usable, hit := table.Probe(0x2, -1000, 1000, 1, 0)
	if hit || usable {
		t.Errorf("Probe with mismatched key: hit=%v usable=%v, want false,false", hit, usable)
	}
}

func TestZeroSizeTableAlwaysMisses(t *testing.T) {
	table := New(0)
	table.Store(0x1, board.NoMove, 10, FlagExact, 5, 0)

	_, _, usable, hit := table.Probe(0x1, -1000, 1000, 5, 0)
	if hit || usable {
		t.Errorf("zero-size table: hit=%v usable=%v, want false,false", hit, usable)
	}
	if table.NumEntries() != 0 {
		t.Errorf("NumEntries = %d, want 0", table.NumEntries())
	}
}
