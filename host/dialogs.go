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

import "github.com/jetsetilly/menuhost/menu"

// RegisterDialog adds the dialog to the registry. Registered dialogs are
// dismissed by DismissAll(). Registering a dialog that is already registered
// has no effect.
func (h *Host) RegisterDialog(d menu.Dialog) {
	h.dialogsCrit.Lock()
	defer h.dialogsCrit.Unlock()
	for _, e := range h.dialogs {
		if e == d {
			return
		}
	}
	h.dialogs = append(h.dialogs, d)
}

// UnregisterDialog removes the dialog from the registry. Returns false if the
// dialog was not registered.
func (h *Host) UnregisterDialog(d menu.Dialog) bool {
	h.dialogsCrit.Lock()
	defer h.dialogsCrit.Unlock()
	for i, e := range h.dialogs {
		if e == d {
			h.dialogs = append(h.dialogs[:i], h.dialogs[i+1:]...)
			return true
		}
	}
	return false
}

// Dialogs returns a copy of the registry in the order the dialogs were
// registered.
func (h *Host) Dialogs() []menu.Dialog {
	h.dialogsCrit.Lock()
	defer h.dialogsCrit.Unlock()
	c := make([]menu.Dialog, len(h.dialogs))
	copy(c, h.dialogs)
	return c
}

// takeDialogs empties the registry and returns what was in it.
func (h *Host) takeDialogs() []menu.Dialog {
	h.dialogsCrit.Lock()
	defer h.dialogsCrit.Unlock()
	d := h.dialogs
	h.dialogs = nil
	return d
}
