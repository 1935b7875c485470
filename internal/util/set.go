package util

import (
	"fmt"
	"sort"
	"strings"
)

// StringSet is a map[string]bool with set-ish methods added. It backs the
// world's SCORED_ACTIONS and VALUE_SCORED_TREASURES globals, where membership
// is the only thing that matters and insertion order is never observed.
type StringSet map[string]bool

// NewStringSet creates a StringSet, optionally seeded with the keys of the
// given maps.
func NewStringSet(of ...map[string]bool) StringSet {
	s := StringSet{}
	for _, m := range of {
		for k := range m {
			s.Add(k)
		}
	}
	return s
}

// StringSetOf builds a StringSet from a slice. A nil slice yields a nil set.
func StringSetOf(sl []string) StringSet {
	if sl == nil {
		return nil
	}
	s := StringSet{}
	for _, v := range sl {
		s.Add(v)
	}
	return s
}

func (s StringSet) Add(value string)    { s[value] = true }
func (s StringSet) Remove(value string) { delete(s, value) }
func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}
func (s StringSet) Len() int   { return len(s) }
func (s StringSet) Empty() bool { return s.Len() == 0 }

// Copy returns a shallow copy of s.
func (s StringSet) Copy() StringSet {
	newS := NewStringSet()
	for k := range s {
		newS[k] = true
	}
	return newS
}

// Elements returns the members of s. No particular order is guaranteed.
func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}
	sl := make([]string, 0, len(s))
	for item := range s {
		sl = append(sl, item)
	}
	return sl
}

// StringOrdered shows the contents of the set, alphabetized, so String's
// output is reproducible across runs.
func (s StringSet) StringOrdered() string {
	convs := s.Elements()
	sort.Strings(convs)

	var sb strings.Builder
	sb.WriteRune('{')
	for i := range convs {
		sb.WriteString(convs[i])
		if i+1 < len(convs) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}

func (s StringSet) String() string {
	return fmt.Sprintf("StringSet%s", s.StringOrdered())
}
