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

import (
	"github.com/jetsetilly/menuhost/logger"
	"github.com/jetsetilly/menuhost/settings"
)

// Menu is a View built from a settings.Table.
type Menu struct {
	nav   Navigator
	table *settings.Table
	ctx   *settings.Context
	layer *Layer

	// rows from the previous call to Rows(). they are recycled by the next
	// call
	rows []settings.Row

	onDismissed func()
}

// NewMenu is the preferred method of initialisation for the Menu type.
func NewMenu(nav Navigator, table *settings.Table, ctx *settings.Context) *Menu {
	return &Menu{
		nav:   nav,
		table: table,
		ctx:   ctx,
		layer: NewLayer(table.Name),
	}
}

// Title returns the name of the settings.Table.
func (m *Menu) Title() string {
	return m.table.Name
}

// Len returns the number of rows in the menu.
func (m *Menu) Len() int {
	return m.table.Len()
}

// Element implements the View interface.
func (m *Menu) Element() Element {
	return m.layer
}

// Show implements the View interface.
func (m *Menu) Show() {
	m.nav.Push(m)
}

// Dismiss implements the View interface.
func (m *Menu) Dismiss() {
	m.nav.Remove(m)
}

// IsShowing implements the View interface.
func (m *Menu) IsShowing() bool {
	return m.layer.IsVisible()
}

// IsCalibrating implements the View interface.
func (m *Menu) IsCalibrating() bool {
	return false
}

// OnKeyTapCalibrationEvent implements the View interface.
func (m *Menu) OnKeyTapCalibrationEvent(_ KeyTap) bool {
	return false
}

// SetOnDismissed sets the function to be called after the menu has been
// dismissed.
func (m *Menu) SetOnDismissed(f func()) {
	m.onDismissed = f
}

// OnDismissed implements the Dismissed interface.
func (m *Menu) OnDismissed() {
	m.rows = m.rows[:0]
	if m.onDismissed != nil {
		m.onDismissed()
	}
}

// Rows returns every row of the menu, bound to the current preference values.
// Rows returned by the previous call are recycled where possible.
func (m *Menu) Rows() ([]settings.Row, error) {
	rows := make([]settings.Row, m.table.Len())
	for i := range rows {
		var recycled settings.Row
		if i < len(m.rows) {
			recycled = m.rows[i]
		}

		r, err := m.table.GetView(m.ctx, i, recycled)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}
	m.rows = rows
	return rows, nil
}

// Select the row at the position.
func (m *Menu) Select(position int, isChecked bool) error {
	if !m.table.IsEnabled(position) {
		logger.Logf(logger.Allow, "menu", "%s: row %d is disabled", m.table.Name, position)
		return nil
	}
	return m.table.HandleSelection(m.ctx, position, isChecked)
}

func (m *Menu) String() string {
	return m.table.Name
}
