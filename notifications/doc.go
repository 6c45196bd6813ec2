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

// Package notifications allow communication from the preference store and
// the view host to whatever is hosting them. For example, the preference
// store uses NotifyTerminate after a reset to ask the application to relaunch.
//
// Notifications are sometimes passed onto the user (eg. the engine has paused)
// but some, like NotifyTerminate, must be acted upon.
package notifications
