// SPDX-License-Identifier: MIT

package polytope

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// IndexSet is an ordered set of non-negative ints, used for vertex bases
// (tight row indices) and label sets. Iteration is always ascending.
//
// An IndexSet is treated as immutable once built: the set operations below
// return fresh sets. The zero value is an empty set.
type IndexSet struct {
	set *treeset.Set
}

// NewIndexSet returns a set holding items (duplicates collapse).
func NewIndexSet(items ...int) IndexSet {
	s := treeset.NewWithIntComparator()
	for _, it := range items {
		s.Add(it)
	}

	return IndexSet{set: s}
}

// Len returns the number of members.
func (s IndexSet) Len() int {
	if s.set == nil {
		return 0
	}

	return s.set.Size()
}

// Empty reports whether the set has no members.
func (s IndexSet) Empty() bool { return s.Len() == 0 }

// Contains reports membership of i.
func (s IndexSet) Contains(i int) bool {
	return s.set != nil && s.set.Contains(i)
}

// Ints returns the members in ascending order.
func (s IndexSet) Ints() []int {
	if s.set == nil {
		return []int{}
	}
	out := make([]int, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}

	return out
}

// First returns the smallest member; ok is false for an empty set.
func (s IndexSet) First() (v int, ok bool) {
	if s.set == nil {
		return 0, false
	}
	it := s.set.Iterator()
	if !it.First() {
		return 0, false
	}

	return it.Value().(int), true
}

// Union returns s ∪ o.
func (s IndexSet) Union(o IndexSet) IndexSet {
	out := NewIndexSet(s.Ints()...)
	for _, v := range o.Ints() {
		out.set.Add(v)
	}

	return out
}

// Intersect returns s ∩ o.
func (s IndexSet) Intersect(o IndexSet) IndexSet {
	out := NewIndexSet()
	for _, v := range s.Ints() {
		if o.Contains(v) {
			out.set.Add(v)
		}
	}

	return out
}

// IntersectLen returns |s ∩ o| without allocating a new set.
func (s IndexSet) IntersectLen(o IndexSet) int {
	if s.set == nil || o.set == nil {
		return 0
	}
	n := 0
	it := s.set.Iterator()
	for it.Next() {
		if o.set.Contains(it.Value()) {
			n++
		}
	}

	return n
}

// Equal reports whether both sets hold the same members.
func (s IndexSet) Equal(o IndexSet) bool {
	return s.Len() == o.Len() && s.IntersectLen(o) == s.Len()
}

// String renders the set as "{1,2,3}".
func (s IndexSet) String() string {
	ints := s.Ints()
	parts := make([]string, len(ints))
	for i, v := range ints {
		parts[i] = fmt.Sprint(v)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// MarshalJSON encodes the set as an ascending JSON array.
func (s IndexSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Ints())
}

// UnmarshalJSON decodes a JSON array of ints.
func (s *IndexSet) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	*s = NewIndexSet(ints...)

	return nil
}
