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
	"sync"

	"github.com/jetsetilly/menuhost/assert"
	"github.com/jetsetilly/menuhost/emulation"
	"github.com/jetsetilly/menuhost/logger"
	"github.com/jetsetilly/menuhost/menu"
	"github.com/jetsetilly/menuhost/notifications"
	"github.com/jetsetilly/menuhost/viewstack"
	"golang.org/x/sync/semaphore"
)

// Host is the view host. It should be created with NewHost().
type Host struct {
	engine emulation.Engine
	notify notifications.Notify

	// critical section for all changes to the stack. owner is the goroutine
	// currently making a change
	crit  sync.Mutex
	owner assert.Ownership

	// calls made by the owning goroutine while a change is in progress
	pending []func()

	// pending calls are discarded while discarding is true. see DismissAll()
	discarding bool

	stack       viewstack.Stack[menu.View]
	checkpoints viewstack.Checkpoints[menu.View]

	// the state of the emulation as last told to the engine
	state emulation.State

	externalPause bool

	// the splash screen and whether the render surface has been initialised
	splash             menu.View
	surfaceInitialised bool

	// registry of dialogs. dialogs are not part of the stack and have their
	// own critical section
	dialogsCrit sync.Mutex
	dialogs     []menu.Dialog

	// the event loop
	loop loop

	// background jobs, indexed by name
	backgroundCrit sync.Mutex
	background     map[string]*semaphore.Weighted
	workers        sync.WaitGroup
}

// NewHost is the preferred method of initialisation for the Host type. The
// engine is assumed to be running.
func NewHost(engine emulation.Engine) *Host {
	return &Host{
		engine:     engine,
		state:      emulation.Running,
		background: make(map[string]*semaphore.Weighted),
		loop: loop{
			wake: make(chan struct{}, 1),
		},
	}
}

// SetNotify sets the recipient of notices sent by the host.
func (h *Host) SetNotify(n notifications.Notify) {
	h.critical(func() {
		h.notify = n
	})
}

// SetSplash registers the view that will be treated as the splash screen.
func (h *Host) SetSplash(v menu.View) {
	h.critical(func() {
		h.splash = v
	})
}

// begin a change to the stack. returns false if the calling goroutine
// already owns the change in progress, in which case the change should be
// queued with queue().
func (h *Host) begin() bool {
	if h.owner.IsCurrent() {
		return false
	}
	h.crit.Lock()
	h.owner.Claim()
	return true
}

// end a change to the stack. queued changes are performed before the final
// state of the engine is decided.
func (h *Host) end() {
	for {
		for len(h.pending) > 0 {
			f := h.pending[0]
			h.pending = h.pending[1:]
			f()
		}

		// the engine or the notification recipient may have called back
		// into the host. loop until there is nothing pending
		h.settle()
		if len(h.pending) == 0 {
			break
		}
	}

	h.owner.Release()
	h.crit.Unlock()
}

// queue a change to be made at the end of the change in progress.
func (h *Host) queue(f func(), name string) {
	if h.discarding {
		logger.Logf(logger.Allow, "host", "discarding %s made during dismissal of all views", name)
		return
	}
	h.pending = append(h.pending, f)
}

// critical runs f in the critical section unless the calling goroutine
// already owns it. it is used for operations that do not change the stack.
func (h *Host) critical(f func()) {
	if h.owner.IsCurrent() {
		f()
		return
	}
	h.crit.Lock()
	defer h.crit.Unlock()
	f()
}

// settle decides the state of the engine.
func (h *Host) settle() {
	want := emulation.Running
	if h.stack.Len() > 0 || h.externalPause {
		want = emulation.Paused
	}

	if want == h.state {
		return
	}
	h.state = want

	switch want {
	case emulation.Paused:
		h.engine.Pause()
		h.send(notifications.NotifyEnginePaused)
	case emulation.Running:
		h.engine.Resume()
		h.send(notifications.NotifyEngineResumed)
	}
}

// send a notice if a recipient has been set.
func (h *Host) send(notice notifications.Notice) {
	if h.notify == nil {
		return
	}
	if err := h.notify.Notify(notice); err != nil {
		logger.Log(logger.Allow, "host", err)
	}
}

// State returns the state of the emulation as decided by the host.
func (h *Host) State() emulation.State {
	var s emulation.State
	h.critical(func() {
		s = h.state
	})
	return s
}

// SetExternalPause sets or clears the external pause. The engine is paused
// while the external pause is set, regardless of the state of the stack.
func (h *Host) SetExternalPause(set bool) {
	if !h.begin() {
		h.queue(func() { h.externalPause = set }, "external pause")
		return
	}
	defer h.end()
	h.externalPause = set
}

// ExternalPause returns true if the external pause is set.
func (h *Host) ExternalPause() bool {
	var p bool
	h.critical(func() {
		p = h.externalPause
	})
	return p
}
