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

import (
	"sync/atomic"
)

// Layer is a simple implementation of the Element interface that records
// whether it is attached. Optional functions are called on attachment and
// detachment.
type Layer struct {
	Name string

	OnAttach func()
	OnDetach func()

	visible atomic.Bool
}

// NewLayer is the preferred method of initialisation for the Layer type.
func NewLayer(name string) *Layer {
	return &Layer{Name: name}
}

// Attach implements the Element interface.
func (l *Layer) Attach() {
	l.visible.Store(true)
	if l.OnAttach != nil {
		l.OnAttach()
	}
}

// Detach implements the Element interface.
func (l *Layer) Detach() {
	l.visible.Store(false)
	if l.OnDetach != nil {
		l.OnDetach()
	}
}

// IsVisible implements the Element interface.
func (l *Layer) IsVisible() bool {
	return l.visible.Load()
}

func (l *Layer) String() string {
	return l.Name
}
