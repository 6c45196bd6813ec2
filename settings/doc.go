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

// Package settings describes the rows of a preferences menu. Each row is a
// Descriptor binding a preference value (a domain and a key) to a row in the
// presentation layer and to a selection handler.
//
// The set of descriptors for a menu is fixed when the program is compiled.
// Descriptors are collected into a Table, which also determines whether a row
// is enabled. Whether a row is enabled depends only on its position in the
// table and never on the value of any preference.
//
// The presentation layer is represented by the Inflater, Row and Presenter
// interfaces. Rows are recycled where possible:
//
//	row, err := table.GetView(ctx, position, recycled)
//
// and selections are handled with:
//
//	err := table.HandleSelection(ctx, position, isChecked)
//
// HandleSelection() is the only function in the package that writes to the
// preference store.
package settings
