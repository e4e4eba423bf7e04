package sizerange

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Filter is a union of ranges over natural numbers (0, 1, 2, ...). A value
// is accepted when any range contains it; an empty Filter accepts nothing.
type Filter struct {
	Ranges []Range
}

// ParseFilter parses v into a Filter.
//
// Syntax (tokens are separated by underscore '_' characters):
//
//	"all"    -> every natural number
//	"N"      -> a single natural number
//	"N-M"    -> closed interval [N, M]
//	"N-"     -> >= N
//	"-M"     -> <= M
//
// Numbers must be non-decreasing from left to right, so "1_3-5_7" is valid
// and "3_1-4" is not.
func ParseFilter(v string) (Filter, error) {
	var f Filter
	v = strings.TrimSpace(v)
	if v == "" {
		return f, nil
	}
	if v == "all" {
		return All(), nil
	}

	var prev int64
	for i, tok := range strings.Split(v, "_") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return Filter{}, fmt.Errorf("empty token at position %d", i)
		}

		if strings.Count(tok, "-") > 1 {
			if tok != "--" && strings.HasPrefix(tok, "-") && strings.HasSuffix(tok, "-") {
				if _, err := parseNatural(tok[1 : len(tok)-1]); err != nil {
					return Filter{}, fmt.Errorf("invalid token %q: %w", tok, err)
				}
				return All(), nil
			}
			return Filter{}, fmt.Errorf("invalid token %q", tok)
		}

		if sep := strings.Index(tok, "-"); sep >= 0 {
			left, right := tok[:sep], tok[sep+1:]
			if left == "" && right == "" {
				return Filter{}, fmt.Errorf("invalid token %q", tok)
			}

			switch {
			case left != "" && right != "":
				n1, err := parseNatural(left)
				if err != nil {
					return Filter{}, fmt.Errorf("invalid left bound in %q: %w", tok, err)
				}
				n2, err := parseNatural(right)
				if err != nil {
					return Filter{}, fmt.Errorf("invalid right bound in %q: %w", tok, err)
				}
				if n1 > n2 {
					return Filter{}, fmt.Errorf("invalid range %q: min > max", tok)
				}
				if n1 < prev {
					return Filter{}, fmt.Errorf("numbers must be non-decreasing: %d < %d", n1, prev)
				}
				f.Ranges = append(f.Ranges, Inclusive(n1, n2))
				prev = n2
			case left != "": // "N-"
				n, err := parseNatural(left)
				if err != nil {
					return Filter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
				}
				if n < prev {
					return Filter{}, fmt.Errorf("numbers must be non-decreasing: %d < %d", n, prev)
				}
				f.Ranges = append(f.Ranges, AtLeast(n))
				prev = n
			default: // "-M"
				n, err := parseNatural(right)
				if err != nil {
					return Filter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
				}
				if n < prev {
					return Filter{}, fmt.Errorf("numbers must be non-decreasing: %d < %d", n, prev)
				}
				f.Ranges = append(f.Ranges, AtMost(n))
				prev = n
			}
			continue
		}

		n, err := parseNatural(tok)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid token %q: %w", tok, err)
		}
		if n < prev {
			return Filter{}, fmt.Errorf("numbers must be non-decreasing: %d < %d", n, prev)
		}
		f.Ranges = append(f.Ranges, Single(n))
		prev = n
	}

	return f, nil
}

// All returns a Filter accepting every natural number.
func All() Filter {
	return Filter{Ranges: []Range{Natural()}}
}

// Of returns a Filter holding the given ranges.
func Of(ranges ...Range) Filter {
	return Filter{Ranges: ranges}
}

func parseNatural(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not natural number: %q", s)
	}
	return n, nil
}

// Test reports whether n is accepted by the filter.
func (f Filter) Test(n int64) bool {
	if n < 0 {
		return false
	}
	for _, r := range f.Ranges {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

// IsNotEmpty reports whether the filter accepts at least one natural number.
func (f Filter) IsNotEmpty() bool {
	natural := Natural()
	for _, r := range f.Ranges {
		if r.HasIntersect(natural) {
			return true
		}
	}
	return false
}

// IsAllNatural reports whether the filter accepts every natural number.
func (f Filter) IsAllNatural() bool {
	left := []Range{Natural()}
	for _, r := range f.Ranges {
		var next []Range
		for _, l := range left {
			next = append(next, l.Subtract(r)...)
		}
		if len(next) == 0 {
			return true
		}
		left = next
	}
	return false
}

// Normalize returns sorted, disjoint, closed ranges accepting the same
// natural numbers:
//  1. invalid ranges are dropped and lower sides clamped to 0
//  2. right-unbounded ranges merge into one [N, +∞)
//  3. the rest are sorted and merged when they overlap or touch
func (f Filter) Normalize() []Range {
	var valids []Range
	for _, r := range f.Ranges {
		n := r.Closed()
		if n.MinUnbounded || n.Min < 0 {
			n.MinUnbounded = false
			n.MinInclude = true
			n.Min = 0
		}
		if n.IsValid() && (n.MaxUnbounded || n.Max >= 0) {
			valids = append(valids, n)
		}
	}
	if len(valids) == 0 {
		return nil
	}

	type span struct {
		min   int64
		max   int64
		maxUn bool
	}
	var spans []span

	var rightMin int64
	rightMinSet := false
	for _, r := range valids {
		if r.MaxUnbounded && (!rightMinSet || r.Min < rightMin) {
			rightMin = r.Min
			rightMinSet = true
		}
	}
	if rightMinSet {
		spans = append(spans, span{min: rightMin, maxUn: true})
	}
	for _, r := range valids {
		if !r.MaxUnbounded {
			spans = append(spans, span{min: r.Min, max: r.Max})
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		a, b := spans[i], spans[j]
		if a.min != b.min {
			return a.min < b.min
		}
		if a.maxUn != b.maxUn {
			return !a.maxUn && b.maxUn
		}
		return a.max < b.max
	})

	merged := make([]span, 0, len(spans))
	for _, cur := range spans {
		if len(merged) == 0 {
			merged = append(merged, cur)
			continue
		}
		last := &merged[len(merged)-1]
		if last.maxUn {
			break
		}
		// adjacent integers merge too
		if last.max+1 >= cur.min {
			if cur.maxUn {
				last.maxUn = true
			} else if cur.max > last.max {
				last.max = cur.max
			}
			continue
		}
		merged = append(merged, cur)
	}

	out := make([]Range, 0, len(merged))
	for _, m := range merged {
		switch {
		case m.maxUn:
			out = append(out, AtLeast(m.min))
		case m.min == m.max:
			out = append(out, Single(m.min))
		default:
			out = append(out, Inclusive(m.min, m.max))
		}
	}
	return out
}

// String normalizes the filter and renders it in the syntax ParseFilter
// reads: "all" / "-M" / "N-" / "N" / "N-M" joined with '_'. An empty filter
// renders as "".
func (f Filter) String() string {
	norm := f.Normalize()
	if len(norm) == 0 {
		return ""
	}
	if len(norm) == 1 && norm[0].MaxUnbounded && norm[0].Min == 0 {
		return "all"
	}
	parts := make([]string, 0, len(norm))
	for _, r := range norm {
		switch {
		case !r.IsUpperBounded():
			parts = append(parts, fmt.Sprintf("%d-", r.Min))
		case r.Min == r.Max:
			parts = append(parts, strconv.FormatInt(r.Min, 10))
		default:
			parts = append(parts, fmt.Sprintf("%d-%d", r.Min, r.Max))
		}
	}
	return strings.Join(parts, "_")
}
