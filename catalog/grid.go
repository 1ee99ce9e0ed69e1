package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// GridLetters is the letter axis of the atlas grid
// The catalog uses A-U (21 columns); letters beyond U are parse errors,
// not clamped
const GridLetters = "ABCDEFGHIJKLMNOPQRSTU"

// GridSize is the number of columns and rows on the atlas grid
const GridSize = len(GridLetters)

// ErrBadGridCode reports an unparseable atlas grid code
type ErrBadGridCode struct {
	Code   string
	Reason string
}

func (e *ErrBadGridCode) Error() string {
	return fmt.Sprintf("grid code %q: %s", e.Code, e.Reason)
}

// ParseGridCode converts an atlas code like "M-10" to a 1-based cell
// The letter maps A->1 .. U->21; the number must be in [1, GridSize]
func ParseGridCode(code string) (GridCell, error) {
	trimmed := strings.TrimSpace(code)
	parts := strings.SplitN(trimmed, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 1 {
		return GridCell{}, &ErrBadGridCode{Code: code, Reason: "expected LETTER-NUMBER"}
	}

	letter := strings.ToUpper(parts[0])
	col := strings.Index(GridLetters, letter) + 1
	if col == 0 {
		return GridCell{}, &ErrBadGridCode{Code: code, Reason: "letter outside A-U"}
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return GridCell{}, &ErrBadGridCode{Code: code, Reason: "number not numeric"}
	}
	if row < 1 || row > GridSize {
		return GridCell{}, &ErrBadGridCode{Code: code, Reason: fmt.Sprintf("number outside 1-%d", GridSize)}
	}

	return GridCell{Col: col, Row: row}, nil
}

// FormatGridCode renders a cell back to its atlas code
func FormatGridCode(cell GridCell) string {
	if cell.Col < 1 || cell.Col > GridSize {
		return fmt.Sprintf("?-%d", cell.Row)
	}
	return fmt.Sprintf("%c-%d", GridLetters[cell.Col-1], cell.Row)
}
