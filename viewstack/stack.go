// This file is part of Menuhost.
//
// Menuhost is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Menuhost is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Menuhost.  If not, see <https://www.gnu.org/licenses/>.

package viewstack

// Stack is an ordered collection of unique entries. The zero value is an
// empty stack ready for use.
type Stack[T comparable] struct {
	// bottom of the stack is at index zero
	entries []T
}

// index returns the index of the entry in the underlying array or -1 if the
// entry is not in the stack.
func (s *Stack[T]) index(v T) int {
	for i := range s.entries {
		if s.entries[i] == v {
			return i
		}
	}
	return -1
}

// Push adds the entry to the top of the stack. If the entry is already in the
// stack then it is moved to the top.
//
// Returns false if the entry was already on top of the stack, in which case
// the stack is unchanged.
func (s *Stack[T]) Push(v T) bool {
	i := s.index(v)
	if i == len(s.entries)-1 && i >= 0 {
		return false
	}
	if i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
	s.entries = append(s.entries, v)
	return true
}

// Pop removes and returns the top of the stack. Returns false if the stack is
// empty.
func (s *Stack[T]) Pop() (T, bool) {
	var v T
	if len(s.entries) == 0 {
		return v, false
	}
	v = s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return v, true
}

// Remove the entry from wherever it sits in the stack. Returns false if the
// entry is not in the stack.
func (s *Stack[T]) Remove(v T) bool {
	i := s.index(v)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	return true
}

// Peek returns the top of the stack without removing it. Returns false if the
// stack is empty.
func (s *Stack[T]) Peek() (T, bool) {
	return s.PeekAt(0)
}

// PeekAt returns the entry at the specified depth. A depth of zero is the top
// of the stack. Returns false if depth is out of range.
func (s *Stack[T]) PeekAt(depth int) (T, bool) {
	var v T
	if depth < 0 || depth >= len(s.entries) {
		return v, false
	}
	return s.entries[len(s.entries)-1-depth], true
}

// Contains returns true if the entry is in the stack.
func (s *Stack[T]) Contains(v T) bool {
	return s.index(v) >= 0
}

// Len returns the number of entries in the stack.
func (s *Stack[T]) Len() int {
	return len(s.entries)
}

// Snapshot returns a copy of the stack, ordered from top to bottom.
func (s *Stack[T]) Snapshot() []T {
	c := make([]T, len(s.entries))
	for i, v := range s.entries {
		c[len(c)-1-i] = v
	}
	return c
}
