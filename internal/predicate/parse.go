package predicate

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a constraint expression:
//
//	MaxSize[9]
//	SizeLessThan[10, true]
//	BoundedSize[1, 16]
//	ZeroSize[false]
//	sizetrait.Size[[4]byte]
//
// Names are case-insensitive and may carry the sizetrait. qualifier. A bound
// is a natural number, optionally written as [N]byte; a claim is true or
// false, optionally written as True, False, sizetrait.True or sizetrait.False.
func Parse(expr string) (Constraint, error) {
	s := strings.TrimSpace(expr)
	open := strings.IndexByte(s, '[')
	if open <= 0 || !strings.HasSuffix(s, "]") {
		return Constraint{}, fmt.Errorf("invalid constraint %q: want Name[args]", expr)
	}
	name := strings.TrimPrefix(strings.TrimSpace(s[:open]), "sizetrait.")
	kind, err := KindString(name)
	if err != nil {
		return Constraint{}, fmt.Errorf("invalid constraint %q: unknown name %q", expr, name)
	}

	args := splitArgs(s[open+1 : len(s)-1])
	if len(args) != kind.Arity() {
		return Constraint{}, fmt.Errorf("invalid constraint %q: %s takes %d argument(s), got %d", expr, kind, kind.Arity(), len(args))
	}

	c := Constraint{Kind: kind}
	switch {
	case kind == KindZeroSize:
		c.Claim, err = parseClaim(args[0])
	case kind == KindBoundedSize:
		if c.Min, err = parseBound(args[0]); err == nil {
			c.Max, err = parseBound(args[1])
		}
	default:
		c.Size, err = parseBound(args[0])
		if err == nil && kind.HasClaim() {
			c.Claim, err = parseClaim(args[1])
		}
	}
	if err != nil {
		return Constraint{}, fmt.Errorf("invalid constraint %q: %w", expr, err)
	}
	return c, nil
}

// MustParse is Parse for expressions known to be valid.
func MustParse(expr string) Constraint {
	c, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseAll parses every expression, stopping at the first error.
func ParseAll(exprs []string) ([]Constraint, error) {
	out := make([]Constraint, 0, len(exprs))
	for _, e := range exprs {
		c, err := Parse(e)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// splitArgs splits on top-level commas, leaving [N]byte intact.
func splitArgs(s string) []string {
	var (
		args  []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if last := strings.TrimSpace(s[start:]); last != "" || len(args) > 0 {
		args = append(args, last)
	}
	return args
}

func parseBound(arg string) (int64, error) {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "[") {
		end := strings.IndexByte(arg, ']')
		elem := strings.TrimSpace(arg[end+1:])
		if end < 0 || (elem != "byte" && elem != "uint8") {
			return 0, fmt.Errorf("bound %q: want N or [N]byte", arg)
		}
		arg = strings.TrimSpace(arg[1:end])
	}
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bound %q: not a natural number", arg)
	}
	return n, nil
}

func parseClaim(arg string) (bool, error) {
	switch strings.TrimPrefix(strings.TrimSpace(arg), "sizetrait.") {
	case "true", "True":
		return true, nil
	case "false", "False":
		return false, nil
	}
	return false, fmt.Errorf("claim %q: want true or false", arg)
}
