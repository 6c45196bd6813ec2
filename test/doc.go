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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and should be used when
// later parts of the test depend on the value being correct. For example,
// demanding that the length of a slice is correct before indexing it.
//
// ExpectSuccess() and ExpectFailure() test for success or failure under
// generic conditions. A bool is successful if it is true and an error is
// successful if it is nil. It is worth stating how the nil type is handled
// because it is not obvious: nil is considered a success. Because of how
// errors usually work (nil to indicate no error) we *need* to interpret nil in
// this way.
//
// The optional tags argument to all functions is prepended to the failure
// message. Useful when the test is in a loop:
//
//	for i, v := range values {
//		test.ExpectEquality(t, v, expected[i], i)
//	}
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for later comparison.
package test
