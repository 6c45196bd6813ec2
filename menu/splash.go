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

// Splash is the View shown when the application starts. The view host treats
// the first dismissal of the splash screen as the signal to create the render
// surface.
type Splash struct {
	nav   Navigator
	layer *Layer
}

// NewSplash is the preferred method of initialisation for the Splash type.
func NewSplash(nav Navigator) *Splash {
	return &Splash{
		nav:   nav,
		layer: NewLayer("splash"),
	}
}

// Element implements the View interface.
func (s *Splash) Element() Element {
	return s.layer
}

// Show implements the View interface.
func (s *Splash) Show() {
	s.nav.Push(s)
}

// Dismiss implements the View interface.
func (s *Splash) Dismiss() {
	s.nav.Remove(s)
}

// IsShowing implements the View interface.
func (s *Splash) IsShowing() bool {
	return s.layer.IsVisible()
}

// IsCalibrating implements the View interface.
func (s *Splash) IsCalibrating() bool {
	return false
}

// OnKeyTapCalibrationEvent implements the View interface.
func (s *Splash) OnKeyTapCalibrationEvent(_ KeyTap) bool {
	return false
}

func (s *Splash) String() string {
	return "splash"
}
