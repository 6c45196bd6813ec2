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

package prefs

// list of preference values that are no longer used. they are dropped from
// the document when it is loaded.
var defunct = []Key{
	{Domain: "joystick", Name: "touchMenuEnabled"},
	{Domain: "keypad", Name: "autoRepeat"},
	{Domain: "video", Name: "scanlines"},
}

// returns true if the key is in list of defunct values.
func isDefunct(domain string, name string) bool {
	for _, k := range defunct {
		if k.Domain == domain && k.Name == name {
			return true
		}
	}
	return false
}
