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

package easyterm_test

import (
	"testing"

	"github.com/jetsetilly/menuhost/easyterm"
	"github.com/jetsetilly/menuhost/test"
)

func TestDecode(t *testing.T) {
	test.ExpectEquality(t, easyterm.Decode([]byte{27, 91, 'A'}), easyterm.Key{Special: easyterm.Up})
	test.ExpectEquality(t, easyterm.Decode([]byte{27, 91, 'B'}), easyterm.Key{Special: easyterm.Down})
	test.ExpectEquality(t, easyterm.Decode([]byte{27, 91, 'C'}), easyterm.Key{Special: easyterm.Right})
	test.ExpectEquality(t, easyterm.Decode([]byte{27, 91, 'D'}), easyterm.Key{Special: easyterm.Left})
	test.ExpectEquality(t, easyterm.Decode([]byte{27}), easyterm.Key{Special: easyterm.Escape})
	test.ExpectEquality(t, easyterm.Decode([]byte{13}), easyterm.Key{Special: easyterm.Enter})
	test.ExpectEquality(t, easyterm.Decode([]byte{127}), easyterm.Key{Special: easyterm.Backspace})
	test.ExpectEquality(t, easyterm.Decode([]byte{3}), easyterm.Key{Special: easyterm.Interrupt})
	test.ExpectEquality(t, easyterm.Decode([]byte("q")), easyterm.Key{Rune: 'q'})
	test.ExpectEquality(t, easyterm.Decode([]byte("é")), easyterm.Key{Rune: 'é'})
	test.ExpectEquality(t, easyterm.Decode(nil), easyterm.Key{})
}
