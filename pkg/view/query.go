package view

import (
	"cmp"
	"strings"

	errs "github.com/matzehuels/blogscope/pkg/errors"
)

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder parses "asc" or "desc". The empty string means [Asc].
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	}
	return "", errs.New(errs.ErrCodeInvalidInput, "unknown sort order %q (want asc or desc)", s)
}

// Toggle returns the opposite direction.
func (o Order) Toggle() Order {
	if o == Desc {
		return Asc
	}
	return Desc
}

// compare orders a and b according to o. Under [Desc], a sorts first when
// its key is greater.
func compare[K cmp.Ordered](o Order, a, b K) int {
	if o == Desc {
		return cmp.Compare(b, a)
	}
	return cmp.Compare(a, b)
}

// blank reports whether q contains nothing but whitespace.
func blank(q string) bool {
	return strings.TrimSpace(q) == ""
}

// matcher tests fields for a case-insensitive substring match of a query.
type matcher struct {
	needle string
}

func newMatcher(q string) matcher {
	return matcher{needle: strings.ToLower(q)}
}

// matches reports whether at least one field contains the query.
func (m matcher) matches(fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), m.needle) {
			return true
		}
	}
	return false
}

func parseKey[K ~string](s, what string, valid ...K) (K, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return valid[0], nil
	}
	for _, k := range valid {
		if string(k) == s {
			return k, nil
		}
	}
	names := make([]string, len(valid))
	for i, k := range valid {
		names[i] = string(k)
	}
	var zero K
	return zero, errs.New(errs.ErrCodeInvalidInput, "unknown %s %q (want one of: %s)", what, s, strings.Join(names, ", "))
}
