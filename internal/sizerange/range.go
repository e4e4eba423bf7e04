package sizerange

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an interval of byte sizes. Either side may be unbounded, and each
// bounded side is inclusive or exclusive.
type Range struct {
	Min          int64
	MinInclude   bool
	Max          int64
	MaxInclude   bool
	MinUnbounded bool // left side is -inf
	MaxUnbounded bool // right side is +inf
}

// Parse parses value and returns a Range.
//
// Supported formats:
//   - N
//   - =N
//   - >N, >=N, <N, <=N
//   - (min,max), (min,max], [min,max), [min,max]
//   - ( ,max), (min, ), ( ,max] etc.
//
// Spaces are ignored. An unbounded side must be open. An empty interval
// such as (3,3) or [5,4] is rejected.
func Parse(value string) (Range, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return Range{}, fmt.Errorf("empty range")
	}

	r := Unbounded()

	parseInt := func(tok string) (int64, error) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return 0, fmt.Errorf("empty integer")
		}
		return strconv.ParseInt(tok, 10, 64)
	}

	// prefix operators
	switch {
	case strings.HasPrefix(s, "="):
		n, err := parseInt(s[1:])
		if err != nil {
			return Range{}, fmt.Errorf("invalid =N: %w", err)
		}
		return Single(n), nil
	case strings.HasPrefix(s, ">="):
		n, err := parseInt(s[2:])
		if err != nil {
			return Range{}, fmt.Errorf("invalid >=N: %w", err)
		}
		return AtLeast(n), nil
	case strings.HasPrefix(s, ">"):
		n, err := parseInt(s[1:])
		if err != nil {
			return Range{}, fmt.Errorf("invalid >N: %w", err)
		}
		return Above(n), nil
	case strings.HasPrefix(s, "<="):
		n, err := parseInt(s[2:])
		if err != nil {
			return Range{}, fmt.Errorf("invalid <=N: %w", err)
		}
		return AtMost(n), nil
	case strings.HasPrefix(s, "<"):
		n, err := parseInt(s[1:])
		if err != nil {
			return Range{}, fmt.Errorf("invalid <N: %w", err)
		}
		return Below(n), nil
	}

	// interval notation
	if len(s) >= 2 && (s[0] == '(' || s[0] == '[') && (s[len(s)-1] == ')' || s[len(s)-1] == ']') {
		leftInclusive := s[0] == '['
		rightInclusive := s[len(s)-1] == ']'
		parts := strings.SplitN(strings.TrimSpace(s[1:len(s)-1]), ",", 2)
		if len(parts) != 2 {
			return Range{}, fmt.Errorf("invalid interval syntax: %s", value)
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])

		if left == "" {
			if leftInclusive {
				return Range{}, fmt.Errorf("infinite side must be open on left: %s", value)
			}
		} else {
			n, err := parseInt(left)
			if err != nil {
				return Range{}, fmt.Errorf("invalid left integer: %w", err)
			}
			r.Min = n
			r.MinInclude = leftInclusive
			r.MinUnbounded = false
		}

		if right == "" {
			if rightInclusive {
				return Range{}, fmt.Errorf("infinite side must be open on right: %s", value)
			}
		} else {
			n, err := parseInt(right)
			if err != nil {
				return Range{}, fmt.Errorf("invalid right integer: %w", err)
			}
			r.Max = n
			r.MaxInclude = rightInclusive
			r.MaxUnbounded = false
		}

		if !r.IsValid() {
			return Range{}, fmt.Errorf("empty interval: %s", value)
		}
		return r, nil
	}

	// plain integer
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Single(n), nil
	}

	return Range{}, fmt.Errorf("unrecognized range format: %s", value)
}

// Unbounded returns (-∞,+∞).
func Unbounded() Range {
	return Range{MinUnbounded: true, MaxUnbounded: true}
}

// Natural returns [0,+∞), the set of every possible size.
func Natural() Range {
	return AtLeast(0)
}

// Empty returns a range that contains nothing.
func Empty() Range {
	return Range{Min: 1, MinInclude: true, Max: 0, MaxInclude: true}
}

// Single returns [n,n].
func Single(n int64) Range {
	return Inclusive(n, n)
}

// Above returns (n,+∞).
func Above(n int64) Range {
	return Range{Min: n, MaxUnbounded: true}
}

// AtLeast returns [n,+∞).
func AtLeast(n int64) Range {
	return Range{Min: n, MinInclude: true, MaxUnbounded: true}
}

// Below returns (-∞,n).
func Below(n int64) Range {
	return Range{MinUnbounded: true, Max: n}
}

// AtMost returns (-∞,n].
func AtMost(n int64) Range {
	return Range{MinUnbounded: true, Max: n, MaxInclude: true}
}

// Inclusive returns [min,max].
func Inclusive(min, max int64) Range {
	return Range{Min: min, MinInclude: true, Max: max, MaxInclude: true}
}

// IsValid reports whether r is a non-empty interval.
//
// Rules:
//   - If a side is unbounded it must be open (cannot include infinity).
//   - If both sides are bounded and Min > Max then it's invalid.
//   - If Min == Max then it's valid only when both ends are inclusive.
//   - (N,N+1) holds no integer and is invalid.
func (r Range) IsValid() bool {
	if r.MinUnbounded && r.MinInclude {
		return false
	}
	if r.MaxUnbounded && r.MaxInclude {
		return false
	}

	if !r.MinUnbounded && !r.MaxUnbounded {
		if r.Min > r.Max {
			return false
		} else if r.Min == r.Max {
			return r.MinInclude && r.MaxInclude
		} else if r.Max-r.Min == 1 && !r.MinInclude && !r.MaxInclude {
			return false
		}
	}

	return true
}

// Contains reports whether n lies in r. An invalid range contains nothing.
func (r Range) Contains(n int64) bool {
	if !r.IsValid() {
		return false
	}

	if !r.MinUnbounded {
		if r.MinInclude {
			if n < r.Min {
				return false
			}
		} else if n <= r.Min {
			return false
		}
	}

	if !r.MaxUnbounded {
		if r.MaxInclude {
			if n > r.Max {
				return false
			}
		} else if n >= r.Max {
			return false
		}
	}

	return true
}

// Lowest returns the smallest integer in r, if r is bounded below.
func (r Range) Lowest() (int64, bool) {
	if r.MinUnbounded {
		return 0, false
	}
	if r.MinInclude {
		return r.Min, true
	}
	return r.Min + 1, true
}

// Highest returns the largest integer in r, if r is bounded above.
func (r Range) Highest() (int64, bool) {
	if r.MaxUnbounded {
		return 0, false
	}
	if r.MaxInclude {
		return r.Max, true
	}
	return r.Max - 1, true
}

// HasIntersect reports whether some integer lies in both r and other.
func (r Range) HasIntersect(other Range) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}

	// r lies left of other
	if !r.MaxUnbounded && !other.MinUnbounded {
		rMax, _ := r.Highest()
		otherMin, _ := other.Lowest()
		if rMax < otherMin {
			return false
		}
	}
	// r lies right of other
	if !r.MinUnbounded && !other.MaxUnbounded {
		rMin, _ := r.Lowest()
		otherMax, _ := other.Highest()
		if rMin > otherMax {
			return false
		}
	}

	return true
}

// Intersect returns the integers present in both r and other. The result
// may be invalid, meaning the intersection is empty.
func (r Range) Intersect(other Range) Range {
	out := Range{}

	switch {
	case r.MinUnbounded && other.MinUnbounded:
		out.MinUnbounded = true
	case r.MinUnbounded:
		out.Min, out.MinInclude = other.Min, other.MinInclude
	case other.MinUnbounded:
		out.Min, out.MinInclude = r.Min, r.MinInclude
	default:
		rLow, _ := r.Lowest()
		oLow, _ := other.Lowest()
		if rLow >= oLow {
			out.Min, out.MinInclude = r.Min, r.MinInclude
		} else {
			out.Min, out.MinInclude = other.Min, other.MinInclude
		}
	}

	switch {
	case r.MaxUnbounded && other.MaxUnbounded:
		out.MaxUnbounded = true
	case r.MaxUnbounded:
		out.Max, out.MaxInclude = other.Max, other.MaxInclude
	case other.MaxUnbounded:
		out.Max, out.MaxInclude = r.Max, r.MaxInclude
	default:
		rHigh, _ := r.Highest()
		oHigh, _ := other.Highest()
		if rHigh <= oHigh {
			out.Max, out.MaxInclude = r.Max, r.MaxInclude
		} else {
			out.Max, out.MaxInclude = other.Max, other.MaxInclude
		}
	}

	return out
}

// Subtract returns the parts of r not covered by other. If they do not
// overlap the result is r itself; if other covers r the result is empty.
func (r Range) Subtract(other Range) []Range {
	if !r.IsValid() {
		return nil
	}
	if !r.HasIntersect(other) {
		return []Range{r}
	}

	var results []Range

	// part left of other
	if !other.MinUnbounded {
		rMin, bounded := r.Lowest()
		otherMin, _ := other.Lowest()
		if !bounded || rMin < otherMin {
			left := Range{
				Min:          r.Min,
				MinInclude:   r.MinInclude,
				MinUnbounded: r.MinUnbounded,
				Max:          other.Min,
				MaxInclude:   !other.MinInclude,
			}
			if left.IsValid() {
				results = append(results, left)
			}
		}
	}

	// part right of other
	if !other.MaxUnbounded {
		rMax, bounded := r.Highest()
		otherMax, _ := other.Highest()
		if !bounded || rMax > otherMax {
			right := Range{
				Min:          other.Max,
				MinInclude:   !other.MaxInclude,
				Max:          r.Max,
				MaxInclude:   r.MaxInclude,
				MaxUnbounded: r.MaxUnbounded,
			}
			if right.IsValid() {
				results = append(results, right)
			}
		}
	}

	return results
}

// Covers reports whether every integer in r also lies in other. An empty r
// is covered by anything.
func (r Range) Covers(other Range) bool {
	return len(r.Subtract(other)) == 0
}

// Closed rewrites r with inclusive bounded ends, keeping the same integers.
func (r Range) Closed() Range {
	lowest, hasLow := r.Lowest()
	highest, hasHigh := r.Highest()
	switch {
	case hasLow && hasHigh:
		return Inclusive(lowest, highest)
	case hasLow:
		return AtLeast(lowest)
	case hasHigh:
		return AtMost(highest)
	default:
		return Unbounded()
	}
}

// IsUpperBounded reports whether r has an upper bound.
func (r Range) IsUpperBounded() bool {
	return !r.MaxUnbounded
}

// String renders r in a form Parse reads back, except that an interval
// with an unbounded side shows it as ∞.
//
// Rules:
//  1. A single integer prints as "N".
//  2. Exactly one bounded side prints in operator form: ">N" / ">=N" / "<N" / "<=N".
//  3. Anything else uses interval notation like "[min,max)".
func (r Range) String() string {
	if !r.MinUnbounded && !r.MaxUnbounded && r.Min == r.Max && r.MinInclude && r.MaxInclude {
		return strconv.FormatInt(r.Min, 10)
	}

	if r.MinUnbounded && !r.MaxUnbounded {
		if r.MaxInclude {
			return fmt.Sprintf("<=%d", r.Max)
		}
		return fmt.Sprintf("<%d", r.Max)
	}
	if r.MaxUnbounded && !r.MinUnbounded {
		if r.MinInclude {
			return fmt.Sprintf(">=%d", r.Min)
		}
		return fmt.Sprintf(">%d", r.Min)
	}

	leftB := "("
	if r.MinInclude {
		leftB = "["
	}
	rightB := ")"
	if r.MaxInclude {
		rightB = "]"
	}

	var leftStr, rightStr string
	if r.MinUnbounded {
		leftStr = "-∞"
	} else {
		leftStr = strconv.FormatInt(r.Min, 10)
	}
	if r.MaxUnbounded {
		rightStr = "∞"
	} else {
		rightStr = strconv.FormatInt(r.Max, 10)
	}

	return fmt.Sprintf("%s%s,%s%s", leftB, leftStr, rightStr, rightB)
}
