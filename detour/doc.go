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

// Package detour implements calibration flows. A calibration flow is a view
// that replaces the entire view stack while it is showing. The stack is
// restored exactly when the flow is dismissed.
//
// While the flow is showing, a small set of input routing preferences are
// overridden. The preferences are restored to their previous values, including
// their absence, when the flow is dismissed.
//
// The flow moves through a fixed sequence of slots. A KeyTap event records a
// result for the current slot and arms a timer. When the timer expires the
// flow moves on to the next slot. Taps that arrive while the timer is armed
// are ignored. Moving on from the last slot completes the flow and dismisses
// it.
package detour
