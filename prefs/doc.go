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

// Package prefs is the preference store. Preferences are grouped into domains
// (eg. "audio", "joystick") and each domain is a map of keys to values. A
// value is a bool, a number, a string or an array of objects. The whole
// document is persisted as a single JSON file:
//
//	{
//	  "audio": {
//	    "speakerVolume": 5
//	  },
//	  "keypad": {
//	    "rosette": [ {"slot": "north", "key": "w"} ]
//	  }
//	}
//
// There is one Store for the application. It is created with NewStore() and
// passed to everything that needs it. The document is read once with Load()
// and written with Persist().
//
// Reading a key that is not in the document will add the supplied default
// value to the document before returning it. This is called materialisation
// and it means that repeated reads of the same key always return the same
// value.
//
// Numbers may have been stored as any numeric type, either by a different
// caller or because the document has been round-tripped through JSON. The
// numeric accessors (GetInt(), GetFloat64(), etc.) coerce between types. If
// coercion is impossible the accessors return NaN or InvalidInt rather than
// failing.
//
// Every Set() marks the store as dirty. Sync() persists the document and, only
// if the store is dirty, calls the native sync function for the domain. This
// avoids expensive synchronisation with the engine when nothing has changed.
//
// Override checkpoints (see PushOverrides()) allow a group of values to be
// replaced temporarily and later restored exactly as they were.
package prefs
