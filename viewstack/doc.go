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

// Package viewstack is the data structure underneath the view host. A Stack
// is an ordered collection of unique entries, the most recently pushed entry
// being the top of the stack.
//
// Checkpoints record the entire contents of a stack so that it can be
// reproduced exactly at a later time. Checkpoints are themselves kept on a
// stack, allowing the save/restore process to be nested.
//
// Entries are compared by identity. In practice the type parameter is an
// interface type whose dynamic values are pointers.
//
// None of the types in the package are safe for concurrent use.
package viewstack
