package board

import "testing"

// perft counts leaf nodes at the given depth. Move generation here is
// pseudo-legal, so illegal moves are filtered by MakeMove returning false.
func perft(b *Board, depth int) int64 {
	if depth == 0 {
		return 1
	}

	list := b.GenerateAll()
	var nodes int64
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i].Move
		if !b.MakeMove(m) {
			continue
		}
		nodes += perft(b, depth-1)
		b.UnmakeMove()
	}
	return nodes
}

func TestPerftStartingPosition(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
		// {5, 4865609}, // enable for thorough, slower verification
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if got := perft(b, tc.depth); got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftKiwipete exercises castling, en passant, and promotion together.
func TestPerftKiwipete(t *testing.T) {
	b, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if got := perft(b, tc.depth); got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}

// TestPerftPosition3 stresses en-passant discovered-check edge cases.
func TestPerftPosition3(t *testing.T) {
	b, err := ParseFEN("8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
		{4, 43238},
	}

	for _, tc := range tests {
		t.Run("", func(t *testing.T) {
			if got := perft(b, tc.depth); got != tc.expected {
				t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
			}
		})
	}
}
