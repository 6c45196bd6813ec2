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

import "fmt"

// Checkpoint is the recorded contents of a Stack. A Checkpoint is created by
// Checkpoints.Save() and should be treated as an opaque value.
type Checkpoint[T comparable] struct {
	// serial number of the checkpoint. starts at one so the zero value of a
	// Checkpoint is never valid
	serial int

	// entry that caused the checkpoint to be made
	owner T

	// the entries in the stack ordered from top to bottom
	entries []T
}

// Owner returns the entry that the checkpoint was saved on behalf of.
func (cp Checkpoint[T]) Owner() T {
	return cp.owner
}

// Len returns the number of entries recorded by the checkpoint.
func (cp Checkpoint[T]) Len() int {
	return len(cp.entries)
}

// Captured returns the recorded entries, ordered from top to bottom.
func (cp Checkpoint[T]) Captured() []T {
	c := make([]T, len(cp.entries))
	copy(c, cp.entries)
	return c
}

// Replay returns the recorded entries in the order in which they should be
// pushed to reproduce the original stack. ie. the bottom most entry first.
func (cp Checkpoint[T]) Replay() []T {
	r := make([]T, len(cp.entries))
	for i, v := range cp.entries {
		r[len(r)-1-i] = v
	}
	return r
}

func (cp Checkpoint[T]) String() string {
	return fmt.Sprintf("checkpoint %d (%d entries)", cp.serial, len(cp.entries))
}

// Checkpoints is a stack of Checkpoint instances. The zero value is ready for
// use.
type Checkpoints[T comparable] struct {
	saved  []Checkpoint[T]
	serial int
}

// Save records the contents of the Stack and pushes the Checkpoint onto the
// stack of checkpoints. The Stack itself is not changed.
func (c *Checkpoints[T]) Save(owner T, s *Stack[T]) Checkpoint[T] {
	c.serial++
	cp := Checkpoint[T]{
		serial:  c.serial,
		owner:   owner,
		entries: s.Snapshot(),
	}
	c.saved = append(c.saved, cp)
	return cp
}

// Top returns the most recently saved Checkpoint. Returns false if there are
// no saved checkpoints.
func (c *Checkpoints[T]) Top() (Checkpoint[T], bool) {
	if len(c.saved) == 0 {
		return Checkpoint[T]{}, false
	}
	return c.saved[len(c.saved)-1], true
}

// Innermost returns true if the Checkpoint is the most recently saved
// checkpoint.
func (c *Checkpoints[T]) Innermost(cp Checkpoint[T]) bool {
	if len(c.saved) == 0 || cp.serial == 0 {
		return false
	}
	return c.saved[len(c.saved)-1].serial == cp.serial
}

// Discard removes the Checkpoint from the stack of checkpoints. Only the
// innermost checkpoint can be discarded. Returns false if the Checkpoint is
// not the innermost.
func (c *Checkpoints[T]) Discard(cp Checkpoint[T]) bool {
	if !c.Innermost(cp) {
		return false
	}
	c.saved = c.saved[:len(c.saved)-1]
	return true
}

// All returns a copy of every saved Checkpoint, outermost first.
func (c *Checkpoints[T]) All() []Checkpoint[T] {
	a := make([]Checkpoint[T], len(c.saved))
	copy(a, c.saved)
	return a
}

// Depth returns the number of saved checkpoints.
func (c *Checkpoints[T]) Depth() int {
	return len(c.saved)
}
