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

package menu

import "fmt"

// Element is the visual part of a View, as provided by the presentation
// layer. It is a full overlay layer over the render surface.
type Element interface {
	Attach()
	Detach()
	IsVisible() bool
}

// KeyTap is an input event delivered to a View that is calibrating.
type KeyTap struct {
	// the key or button that has been pressed
	Key string

	// position of the tap on the input surface. not all input devices
	// provide a position
	X int
	Y int
}

func (ev KeyTap) String() string {
	return fmt.Sprintf("%s (%d, %d)", ev.Key, ev.X, ev.Y)
}

// View is implemented by every screen that can be placed on the view stack.
type View interface {
	Element() Element

	// Show and Dismiss push and remove the View from the view stack
	Show()
	Dismiss()

	IsShowing() bool

	// returns true if the View is capturing input for calibration purposes.
	// only calibrating views receive KeyTap events
	IsCalibrating() bool

	// returns true if the event has been consumed
	OnKeyTapCalibrationEvent(ev KeyTap) bool
}

// Dismissed is an optional interface for a View. The OnDismissed() function
// is called by the Navigator after the View has been removed from the stack
// and its Element detached.
//
// It is safe for OnDismissed() to push or remove other views.
type Dismissed interface {
	OnDismissed()
}

// Dialog is a transient window that is not part of the view stack. Dialogs
// are registered with the view host so that they can be closed in bulk.
type Dialog interface {
	Dismiss()
}

// Navigator is the part of the view host used by views to show and dismiss
// themselves.
type Navigator interface {
	Push(View)
	Remove(View) View
}
