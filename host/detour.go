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
	"github.com/jetsetilly/menuhost/menu"
	"github.com/jetsetilly/menuhost/notifications"
)

// Sentinal error patterns.
const (
	NotInnermostDetour = "host: detour: %v is not the innermost detour"
)

// BeginDetour replaces the entire stack with the view. The contents of the
// stack are recorded and can be restored with EndDetour().
//
// The views taken off the stack have their elements detached but they are not
// dismissed and their OnDismissed() functions are not called.
//
// Detours can be nested.
func (h *Host) BeginDetour(v menu.View) {
	if v == nil {
		return
	}
	if !h.begin() {
		h.queue(func() { h.beginDetour(v) }, "begin detour")
		return
	}
	defer h.end()
	h.beginDetour(v)
}

func (h *Host) beginDetour(v menu.View) {
	// the detour view is never part of what it is replacing
	if h.stack.Remove(v) {
		v.Element().Detach()
	}

	cp := h.checkpoints.Save(v, &h.stack)
	for _, c := range cp.Captured() {
		h.stack.Remove(c)
		c.Element().Detach()
	}

	h.push(v)

	logger.Logf(logger.Allow, "host", "detour %v begins with %d views captured", v, cp.Len())
	h.send(notifications.NotifyDetourBegin)
}

// EndDetour removes the detour view from the stack, dismissing it in the same
// way as Remove(), and then restores the stack as it was when BeginDetour()
// was called.
//
// Returns a NotInnermostDetour error if the view is not the most recent
// detour. A queued call will always return nil. If the queued call fails then
// the error is logged.
func (h *Host) EndDetour(v menu.View) error {
	if !h.begin() {
		h.queue(func() {
			if err := h.endDetour(v); err != nil {
				logger.Log(logger.Allow, "host", err)
			}
		}, "end detour")
		return nil
	}
	defer h.end()
	return h.endDetour(v)
}

func (h *Host) endDetour(v menu.View) error {
	cp, ok := h.checkpoints.Top()
	if !ok || cp.Owner() != v {
		return curated.Errorf(NotInnermostDetour, v)
	}
	h.checkpoints.Discard(cp)

	h.remove(v)
	for _, r := range cp.Replay() {
		h.push(r)
	}

	logger.Logf(logger.Allow, "host", "detour %v ends with %d views restored", v, cp.Len())
	h.send(notifications.NotifyDetourEnd)

	return nil
}

// DetourDepth returns the number of detours in progress.
func (h *Host) DetourDepth() int {
	var n int
	h.critical(func() {
		n = h.checkpoints.Depth()
	})
	return n
}
