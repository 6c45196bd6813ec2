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
	"github.com/jetsetilly/menuhost/emulation"
	"github.com/jetsetilly/menuhost/logger"
	"github.com/jetsetilly/menuhost/menu"
	"github.com/jetsetilly/menuhost/notifications"
)

// Push the view onto the top of the stack and attach its element. If the
// stack was empty the engine is paused.
//
// Pushing the view that is already on top of the stack has no effect. Pushing
// a view that is lower in the stack moves it to the top.
func (h *Host) Push(v menu.View) {
	if v == nil {
		return
	}
	if !h.begin() {
		h.queue(func() { h.push(v) }, "push")
		return
	}
	defer h.end()
	h.push(v)
}

func (h *Host) push(v menu.View) {
	if h.stack.Push(v) {
		v.Element().Attach()
		logger.Logf(logger.Allow, "host", "push %v (depth %d)", v, h.stack.Len())
	}
}

// Pop removes the view on top of the stack and returns it. The view's element
// is detached and the view's OnDismissed() function is called, if it has one.
// If the stack becomes empty the engine is resumed, unless there is an
// external pause in effect.
//
// Returns nil if the stack is empty or if the call has been queued.
func (h *Host) Pop() menu.View {
	if !h.begin() {
		h.queue(func() { h.pop() }, "pop")
		return nil
	}
	defer h.end()
	return h.pop()
}

func (h *Host) pop() menu.View {
	v, ok := h.stack.Pop()
	if !ok {
		return nil
	}
	h.dismissed(v)
	return v
}

// Remove the view from wherever it is in the stack. Otherwise the same as
// Pop().
//
// Returns nil if the view is not in the stack or if the call has been queued.
func (h *Host) Remove(v menu.View) menu.View {
	if v == nil {
		return nil
	}
	if !h.begin() {
		h.queue(func() { h.remove(v) }, "remove")
		return nil
	}
	defer h.end()
	return h.remove(v)
}

func (h *Host) remove(v menu.View) menu.View {
	if !h.stack.Remove(v) {
		return nil
	}
	h.dismissed(v)
	return v
}

// dismissed is called for every view that has been taken off the stack.
func (h *Host) dismissed(v menu.View) {
	v.Element().Detach()
	logger.Logf(logger.Allow, "host", "dismiss %v (depth %d)", v, h.stack.Len())

	if v == h.splash && !h.surfaceInitialised {
		h.surfaceInitialised = true
		h.engine.InitializeRenderSurface()
		h.state = emulation.Running
		h.send(notifications.NotifyRenderSurface)
	}

	if d, ok := v.(menu.Dismissed); ok {
		d.OnDismissed()
	}
}

// Peek returns the view on top of the stack. Returns nil if the stack is
// empty.
func (h *Host) Peek() menu.View {
	return h.PeekAt(0)
}

// PeekAt returns the view at the depth. The top of the stack is at depth zero.
// Returns nil if the depth is out of range.
func (h *Host) PeekAt(depth int) menu.View {
	var v menu.View
	h.critical(func() {
		v, _ = h.stack.PeekAt(depth)
	})
	return v
}

// Len returns the number of views on the stack.
func (h *Host) Len() int {
	var n int
	h.critical(func() {
		n = h.stack.Len()
	})
	return n
}

// Views returns a copy of the stack ordered from top to bottom.
func (h *Host) Views() []menu.View {
	var s []menu.View
	h.critical(func() {
		s = h.stack.Snapshot()
	})
	return s
}

// DismissAll dismisses every registered dialog, most recent first, and then
// every view on the stack, from the top down. Views held by any detours in
// progress are also dismissed and the detours are abandoned.
//
// No other change to the stack can happen while DismissAll() is running.
// Changes requested by views or dialogs while they are being dismissed are
// discarded.
func (h *Host) DismissAll() {
	if !h.begin() {
		h.queue(h.dismissAll, "dismiss all")
		return
	}
	defer h.end()
	h.dismissAll()
}

func (h *Host) dismissAll() {
	h.discarding = true
	defer func() {
		h.discarding = false
	}()

	dialogs := h.takeDialogs()
	for i := len(dialogs) - 1; i >= 0; i-- {
		dialogs[i].Dismiss()
	}

	for h.stack.Len() > 0 {
		h.pop()
	}

	// views held by detours have already been detached
	for h.checkpoints.Depth() > 0 {
		cp, _ := h.checkpoints.Top()
		h.checkpoints.Discard(cp)
		logger.Logf(logger.Allow, "host", "abandoning detour %v", cp.Owner())
		for _, v := range cp.Captured() {
			if d, ok := v.(menu.Dismissed); ok {
				d.OnDismissed()
			}
		}
	}
}
