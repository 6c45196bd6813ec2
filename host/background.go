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
	"github.com/jetsetilly/menuhost/curated"
	"github.com/jetsetilly/menuhost/logger"
	"golang.org/x/sync/semaphore"
)

// Sentinal error patterns.
const (
	ErrInProgress = "host: background: %s is already in progress"
)

// RunBackground runs the job in a new goroutine. Only one job with the name
// can be running at any one time. An ErrInProgress error is returned if a job
// with the same name is already running.
//
// The done function, if it is not nil, is posted to the event loop with the
// result of the job. Background jobs cannot be cancelled.
func (h *Host) RunBackground(name string, job func() error, done func(error)) error {
	h.backgroundCrit.Lock()
	sem, ok := h.background[name]
	if !ok {
		sem = semaphore.NewWeighted(1)
		h.background[name] = sem
	}
	h.backgroundCrit.Unlock()

	if !sem.TryAcquire(1) {
		return curated.Errorf(ErrInProgress, name)
	}

	h.workers.Add(1)
	go func() {
		defer h.workers.Done()

		err := job()
		sem.Release(1)

		if err != nil {
			logger.Logf(logger.Allow, "host", "background %s: %v", name, err)
		}
		if done != nil {
			h.Post(func() {
				done(err)
			})
		}
	}()

	return nil
}

// WaitBackground blocks until every background job has finished. Functions
// posted by the jobs will still need servicing by the event loop.
func (h *Host) WaitBackground() {
	h.workers.Wait()
}
