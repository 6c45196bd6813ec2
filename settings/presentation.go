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

package settings

import "github.com/jetsetilly/menuhost/prefs"

// Kind is the variant of a Descriptor.
type Kind int

// List of valid Kind values.
const (
	Toggle Kind = iota
	Slider
	Choice
	Action
	Submenu
)

func (k Kind) String() string {
	switch k {
	case Toggle:
		return "toggle"
	case Slider:
		return "slider"
	case Choice:
		return "choice"
	case Action:
		return "action"
	case Submenu:
		return "submenu"
	}
	return "unknown"
}

// Binding is the information given to a Row when it is bound to a Descriptor.
type Binding struct {
	Position int
	Title    string
	Summary  string

	// the current value of the preference. will be nil for the Action and
	// Submenu kinds
	Value prefs.Value

	Enabled bool
}

// Row is a single row in a menu as created by the presentation layer.
type Row interface {
	// the Kind of Descriptor the Row was inflated for. a Row can only be
	// recycled for a Descriptor of the same Kind
	Kind() Kind

	Bind(Binding)
}

// Inflater creates a new Row for the Kind.
type Inflater interface {
	Inflate(Kind) Row
}

// Presenter opens the dialogs required by the Slider and Choice kinds. The
// done function is called with the chosen value. It is not called if the
// dialog is cancelled.
type Presenter interface {
	PickNumber(title string, min int, max int, current int, done func(int))
	PickChoice(title string, choices []string, current string, done func(string))
}

// Context is the environment in which a Table operates.
type Context struct {
	Store     *prefs.Store
	Inflater  Inflater
	Presenter Presenter

	// Open is called when a Submenu row is selected
	Open func(name string) error
}
