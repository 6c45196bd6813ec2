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

package easyterm

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt = 3  // end-of-text character
	KeySuspend   = 26 // substitute character
	KeyEsc       = 27
	KeyTab       = 9
	KeyCarriage  = 13
	KeyBackspace = 127
)

// ASCII codes for characters that follow KeyEsc.
const (
	EscCursor = 91
)

// list of ASCII code for characters that can follow EscCursor.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// Special identifies keys that do not produce a printable character.
type Special int

// List of Special keys.
const (
	None Special = iota
	Up
	Down
	Left
	Right
	Enter
	Escape
	Backspace
	Interrupt
)

// Key is a decoded key press. If Special is None then Rune is the character
// that was typed.
type Key struct {
	Rune    rune
	Special Special
}

// Decode the bytes read from the terminal into a Key.
func Decode(b []byte) Key {
	if len(b) == 0 {
		return Key{}
	}

	switch b[0] {
	case KeyEsc:
		if len(b) >= 3 && b[1] == EscCursor {
			switch b[2] {
			case CursorUp:
				return Key{Special: Up}
			case CursorDown:
				return Key{Special: Down}
			case CursorForward:
				return Key{Special: Right}
			case CursorBackward:
				return Key{Special: Left}
			}
		}
		return Key{Special: Escape}
	case KeyCarriage, '\n':
		return Key{Special: Enter}
	case KeyBackspace:
		return Key{Special: Backspace}
	case KeyInterrupt:
		return Key{Special: Interrupt}
	}

	return Key{Rune: []rune(string(b))[0]}
}
