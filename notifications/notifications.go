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

package notifications

// Notice describes events that change the state of the application in a way
// that the application host might want to know about.
type Notice string

// List of defined notifications.
const (
	// the preference document has been reset. the application should
	// terminate and relaunch because every consumer of the preferences
	// assumes a previously loaded document
	NotifyTerminate Notice = "NotifyTerminate"

	// the engine has been paused or resumed by the view host
	NotifyEnginePaused  Notice = "NotifyEnginePaused"
	NotifyEngineResumed Notice = "NotifyEngineResumed"

	// the splash screen has been dismissed and the render surface created
	NotifyRenderSurface Notice = "NotifyRenderSurface"

	// a detour flow has replaced or restored the view stack
	NotifyDetourBegin Notice = "NotifyDetourBegin"
	NotifyDetourEnd   Notice = "NotifyDetourEnd"
)

// Notify is implemented by anything that wants to receive notices.
type Notify interface {
	Notify(notice Notice) error
}

// NotifyFunc allows an ordinary function to be used as a Notify
// implementation.
type NotifyFunc func(notice Notice) error

// Notify implements the Notify interface.
func (f NotifyFunc) Notify(notice Notice) error {
	return f(notice)
}
