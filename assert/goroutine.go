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

// Package assert contains helpers for reasoning about which goroutine is
// running a piece of code.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only be used for reasoning about reentrancy, never for
// storing goroutine specific data.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		return 0
	}
	n, _ := strconv.ParseUint(string(b[:i]), 10, 64)
	return n
}

// Ownership records which goroutine currently owns a critical section. The
// zero value is unowned.
//
// Ownership does not provide mutual exclusion by itself. It is intended to be
// used alongside a mutex so that a goroutine can discover that it is calling
// back into a critical section it already holds.
type Ownership struct {
	id atomic.Uint64
}

// Claim records the calling goroutine as the owner.
func (o *Ownership) Claim() {
	o.id.Store(GetGoRoutineID())
}

// Release clears the owner.
func (o *Ownership) Release() {
	o.id.Store(0)
}

// IsCurrent returns true if the calling goroutine is the owner.
func (o *Ownership) IsCurrent() bool {
	id := o.id.Load()
	return id != 0 && id == GetGoRoutineID()
}
