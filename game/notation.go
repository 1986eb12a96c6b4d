package game

import (
	"fmt"
	"strconv"
	"strings"
)

// String formats the board as "p0 .. p5 | store1 | p7 .. p12 | store2 ; P1".
// ParseBoard reads the same form.
func (b Board) String() string {
	var sb strings.Builder
	for pit, stones := range b.Pits {
		if pit > 0 {
			if pit == Store1 || pit == Store1+1 || pit == Store2 {
				sb.WriteString(" | ")
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(strconv.Itoa(stones))
	}
	sb.WriteString(" ; ")
	sb.WriteString(b.Turn.String())
	return sb.String()
}

// ParseBoard parses the String form of a board. The "; P1" turn suffix is
// optional and defaults to player 1. The parsed board is not required to
// hold exactly Stones stones so that test positions can be built; call
// Validate for that.
func ParseBoard(s string) (Board, error) {
	var b Board
	b.Turn = Player1

	layout, turn, found := strings.Cut(s, ";")
	if found {
		switch strings.ToUpper(strings.TrimSpace(turn)) {
		case "P1", "1":
			b.Turn = Player1
		case "P2", "2":
			b.Turn = Player2
		default:
			return Board{}, fmt.Errorf("%w: unknown player %q", ErrMalformedBoard, strings.TrimSpace(turn))
		}
	}

	groups := strings.Split(layout, "|")
	if len(groups) != 4 {
		return Board{}, fmt.Errorf("%w: want 4 groups separated by '|', got %d", ErrMalformedBoard, len(groups))
	}
	sizes := []int{PitsPerSide, 1, PitsPerSide, 1}

	pit := 0
	for i, group := range groups {
		fields := strings.Fields(group)
		if len(fields) != sizes[i] {
			return Board{}, fmt.Errorf("%w: group %d has %d counts, want %d", ErrMalformedBoard, i+1, len(fields), sizes[i])
		}
		for _, field := range fields {
			stones, err := strconv.Atoi(field)
			if err != nil {
				return Board{}, fmt.Errorf("%w: %w", ErrMalformedBoard, err)
			}
			if stones < 0 {
				return Board{}, fmt.Errorf("%w: negative count %d", ErrMalformedBoard, stones)
			}
			b.Pits[pit] = stones
			pit++
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed positions; it panics on error.
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}
