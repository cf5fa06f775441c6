package domain

import "math"

// OpenEnd marks a selection range that runs to the last row. Any other
// negative End is an out-of-range bound and clamps to row 0.
const OpenEnd = math.MinInt

// Selection is the plot explorer's choice of columns and an inclusive row range.
type Selection struct {
	Columns []string
	Start   int
	End     int
}

// FullRange returns a selection of the given columns over every row.
func FullRange(columns ...string) Selection {
	return Selection{Columns: columns, Start: 0, End: OpenEnd}
}

// Clamp returns the selection's range forced into [0, rowCount).
// A reversed range is swapped and OpenEnd means the last row.
// For an empty dataset the result is Start 0, End -1, which selects nothing.
func (s Selection) Clamp(rowCount int) Selection {
	out := Selection{Columns: s.Columns, Start: s.Start, End: s.End}
	if rowCount <= 0 {
		out.Start, out.End = 0, -1
		return out
	}

	last := rowCount - 1
	if out.End == OpenEnd {
		out.End = last
	}
	if out.Start > out.End {
		out.Start, out.End = out.End, out.Start
	}
	out.Start = clampInt(out.Start, 0, last)
	out.End = clampInt(out.End, 0, last)
	return out
}

// Len returns the number of rows in a clamped selection.
func (s Selection) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start + 1
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
