package seat

import (
	"errors"
	"slices"
	"strings"
)

const MaxIDLength = 4

var (
	ErrEmptyID   = errors.New("seat identifier cannot be empty")
	ErrIDTooLong = errors.New("seat identifier is too long (max 4 characters)")
)

// ValidateID checks the shape of a seat identifier such as "14C".
// No physical seat-map format is enforced beyond length.
func ValidateID(id string) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return ErrEmptyID
	}
	if len(trimmed) > MaxIDLength {
		return ErrIDTooLong
	}
	return nil
}

// Set is an immutable set of seat identifiers kept in canonical order:
// deduplicated and sorted lexicographically. Every operation returns a new Set.
type Set struct {
	ids []string
}

func NewSet(ids ...string) Set {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return Set{ids: slices.Compact(out)}
}

// Parse reads the comma-separated form used by seed files and legacy exports.
func Parse(csv string) Set {
	if strings.TrimSpace(csv) == "" {
		return Set{}
	}
	return NewSet(strings.Split(csv, ",")...)
}

func (s Set) Len() int      { return len(s.ids) }
func (s Set) IsEmpty() bool { return len(s.ids) == 0 }

func (s Set) Contains(id string) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// Slice returns a copy of the identifiers in canonical order.
func (s Set) Slice() []string {
	if s.ids == nil {
		return []string{}
	}
	return slices.Clone(s.ids)
}

func (s Set) String() string {
	return strings.Join(s.ids, ",")
}

func (s Set) Equal(other Set) bool {
	return slices.Equal(s.ids, other.ids)
}

func (s Set) Add(ids ...string) Set {
	return NewSet(append(slices.Clone(s.ids), ids...)...)
}

func (s Set) Remove(ids ...string) Set {
	return s.Difference(NewSet(ids...))
}

func (s Set) Union(other Set) Set {
	return NewSet(append(slices.Clone(s.ids), other.ids...)...)
}

func (s Set) Difference(other Set) Set {
	out := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		if !other.Contains(id) {
			out = append(out, id)
		}
	}
	return Set{ids: out}
}

func (s Set) Intersect(other Set) Set {
	out := make([]string, 0)
	for _, id := range s.ids {
		if other.Contains(id) {
			out = append(out, id)
		}
	}
	return Set{ids: out}
}

// SplitAt returns the first n seats and the remainder. n is clamped to [0, Len].
func (s Set) SplitAt(n int) (head, tail Set) {
	n = max(0, min(n, len(s.ids)))
	return Set{ids: slices.Clone(s.ids[:n])}, Set{ids: slices.Clone(s.ids[n:])}
}

func (s Set) At(i int) string {
	return s.ids[i]
}
