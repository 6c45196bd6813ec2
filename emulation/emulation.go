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

// Package emulation is a minimal abstraction of the emulation engine that
// runs underneath the menus. The engine itself is not part of this module.
package emulation

// Engine defines the functions required by the view host to control the
// emulation. The engine is assumed to run continuously until paused.
type Engine interface {
	// Pause and Resume are called on transitions between the Running and
	// Paused states. They will not be called twice in a row for the same
	// transition
	Pause()
	Resume()

	// InitializeRenderSurface is called exactly once, when the splash screen
	// is first dismissed. The engine is considered to be running once the
	// function returns
	InitializeRenderSurface()
}

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// Values are ordered so that order comparisons are meaningful. Running is
// "greater than" Paused.
const (
	Paused State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	}
	return "unknown"
}
