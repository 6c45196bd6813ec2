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

package detour

import (
	"github.com/jetsetilly/menuhost/prefs"
)

// preferences that route input to the calibration flow rather than to the
// emulation
var (
	captureKeys    = prefs.Key{Domain: "input", Name: "captureKeys"}
	keypadVisible  = prefs.Key{Domain: "keypad", Name: "visible"}
	keypadHaptics  = prefs.Key{Domain: "keypad", Name: "haptics"}
	joystickActive = prefs.Key{Domain: "joystick", Name: "enabled"}
)

// the eight points of the keypad rosette, clockwise from the top
var rosette = []Slot{
	{Name: "north", Prompt: "tap the top of the rosette"},
	{Name: "north-east", Prompt: "tap the top right of the rosette"},
	{Name: "east", Prompt: "tap the right of the rosette"},
	{Name: "south-east", Prompt: "tap the bottom right of the rosette"},
	{Name: "south", Prompt: "tap the bottom of the rosette"},
	{Name: "south-west", Prompt: "tap the bottom left of the rosette"},
	{Name: "west", Prompt: "tap the left of the rosette"},
	{Name: "north-west", Prompt: "tap the top left of the rosette"},
}

// NewKeypadCalibration returns a Flow that records the position of each point
// of the on-screen keypad rosette. The results are stored under
// keypad/rosette. The Scheduler can be nil.
func NewKeypadCalibration(host Host, store *prefs.Store, sched Scheduler) *Flow {
	return NewFlow(Config{
		Name:   "keypad calibration",
		Host:   host,
		Store:  store,
		Slots:  rosette,
		Domain: "keypad",
		Key:    "rosette",
		Overrides: map[prefs.Key]prefs.Value{
			captureKeys:   true,
			keypadVisible: true,
			keypadHaptics: false,
		},
		Scheduler: sched,
	})
}

// the axes and buttons of a physical joystick
var joystick = []Slot{
	{Name: "up", Prompt: "push the stick up"},
	{Name: "down", Prompt: "pull the stick down"},
	{Name: "left", Prompt: "push the stick left"},
	{Name: "right", Prompt: "push the stick right"},
	{Name: "fire", Prompt: "press the fire button"},
}

// NewJoystickCalibration returns a Flow that records the key or button used
// for each direction and button of a joystick. The results are stored under
// joystick/calibration. The Scheduler can be nil.
func NewJoystickCalibration(host Host, store *prefs.Store, sched Scheduler) *Flow {
	return NewFlow(Config{
		Name:   "joystick calibration",
		Host:   host,
		Store:  store,
		Slots:  joystick,
		Domain: "joystick",
		Key:    "calibration",
		Overrides: map[prefs.Key]prefs.Value{
			captureKeys:    true,
			joystickActive: false,
		},
		Scheduler: sched,
	})
}
