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

package host

import (
	"context"
	"sync"
)

// loop is the queue of functions waiting to be run by the event loop.
type loop struct {
	crit  sync.Mutex
	queue []func()

	// wake is signalled whenever a function is added to an empty queue
	wake chan struct{}
}

// Post arranges for the function to be run by the event loop. It never blocks
// and is safe to call from any goroutine, including the event loop itself.
func (h *Host) Post(f func()) {
	h.loop.crit.Lock()
	h.loop.queue = append(h.loop.queue, f)
	h.loop.crit.Unlock()

	select {
	case h.loop.wake <- struct{}{}:
	default:
	}
}

// Service runs every function that has been posted. It does not wait for
// functions to be posted. Functions posted while Service() is running are run
// by the next call to Service().
//
// Returns the number of functions run.
func (h *Host) Service() int {
	h.loop.crit.Lock()
	q := h.loop.queue
	h.loop.queue = nil
	h.loop.crit.Unlock()

	for _, f := range q {
		f()
	}
	return len(q)
}

// Run is the event loop. It services posted functions until the context is
// cancelled. Functions still in the queue when the context is cancelled are
// not run.
func (h *Host) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.loop.wake:
			h.Service()
		}
	}
}
