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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a pattern and placeholder
// values in the same way as fmt.Errorf().
//
// The pattern is what identifies the error. Packages export their patterns as
// constants and callers test for them with Is() and Has():
//
//	const PersistFailed = "prefs: persist: %v"
//
//	err := curated.Errorf(PersistFailed, ioErr)
//	if curated.Is(err, PersistFailed) {
//		...
//	}
//
// Is() only looks at the outermost error. Has() looks for the pattern anywhere
// in the chain of curated errors passed as placeholder values.
//
// The Error() string is normalised so that adjacent duplicate parts of the
// chain are removed. Parts are separated by ": ". This means wrapping an error
// with a pattern of the same prefix does not stutter:
//
//	e := curated.Errorf("host: %v", curated.Errorf("host: stack empty"))
//	fmt.Println(e) // host: stack empty
//
// Curated errors implement Unwrap() so that the standard errors.Is() and
// errors.As() functions can see through them to any uncurated error used as a
// placeholder value.
package curated
