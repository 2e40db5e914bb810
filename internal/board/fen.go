package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a new Board.
func ParseFEN(fen string) (*Board, error) {
	return ParseFENInto(&Board{}, fen)
}

// ParseFENInto resets b and parses fen into it, returning b. Kept separate
// from ParseFEN so NewBoard can reuse a pre-allocated Board.
func ParseFENInto(b *Board, fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("board: malformed FEN %q: need at least 4 fields, got %d", fen, len(fields))
	}

	b.Reset()

	rank, file := 7, 0
	for _, ch := range fields[0] {
		switch {
		case ch == '/':
			if file != 8 {
				return nil, fmt.Errorf("board: malformed FEN %q: rank %d has %d files", fen, rank+1, file)
			}
			rank--
			file = 0
		case ch >= '1' && ch <= '8':
			file += int(ch - '0')
		default:
			pce := PieceFromChar(byte(ch))
			if pce == Empty {
				return nil, fmt.Errorf("board: malformed FEN %q: unrecognized piece char %q", fen, ch)
			}
			if rank < 0 || file > 7 {
				return nil, fmt.Errorf("board: malformed FEN %q: piece placement overruns the board", fen)
			}
			b.AddPiece(FR2Sq120(file, rank), pce)
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.Side = White
	case "b":
		b.Side = Black
	default:
		return nil, fmt.Errorf("board: malformed FEN %q: bad side to move %q", fen, fields[1])
	}

	b.CastlePerm = 0
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.CastlePerm |= WKCA
			case 'Q':
				b.CastlePerm |= WQCA
			case 'k':
				b.CastlePerm |= BKCA
			case 'q':
				b.CastlePerm |= BQCA
			default:
				return nil, fmt.Errorf("board: malformed FEN %q: bad castling field %q", fen, fields[2])
			}
		}
	}

	b.EnPas = NoSquare
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("board: malformed FEN %q: bad en-passant square: %w", fen, err)
		}
		b.EnPas = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err == nil {
			b.FiftyMove = n
		}
	}

	b.PosKey = b.GenerateKey()
	return b, nil
}

// FEN renders the board as a FEN string. Per the engine's documented
// behavior, the halfmove clock and fullmove number are always emitted as
// "0 1" rather than tracked across the game (§4, §9).
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pce := b.Pieces[FR2Sq120(file, rank)]
			if pce == Empty {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteString(pce.String())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.Side == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castleString(b.CastlePerm))

	sb.WriteByte(' ')
	sb.WriteString(b.EnPas.String())

	sb.WriteString(" 0 1")

	return sb.String()
}
