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

package settings

import (
	"github.com/jetsetilly/menuhost/curated"
	"github.com/jetsetilly/menuhost/logger"
)

// Sentinal error patterns returned by Table functions.
const (
	UnknownPosition = "settings: unknown position: %d"
	NoHandler       = "settings: no handler for %s (%s)"
	NoPresenter     = "settings: no presenter for %s (%s)"
)

// Table is the ordered list of descriptors for a menu.
type Table struct {
	Name        string
	Descriptors []Descriptor

	// Enabled returns true if the row at position is enabled. If Enabled is
	// nil every row is enabled
	Enabled func(position int) bool
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.Descriptors)
}

// Descriptor returns the Descriptor at the position. Returns nil if the
// position is out of range.
func (t *Table) Descriptor(position int) *Descriptor {
	if position < 0 || position >= len(t.Descriptors) {
		return nil
	}
	return &t.Descriptors[position]
}

// IsEnabled returns true if the row at the position is enabled.
func (t *Table) IsEnabled(position int) bool {
	if t.Enabled == nil {
		return true
	}
	return t.Enabled(position)
}

// GetView returns a Row bound to the Descriptor at the position. The recycled
// Row is reused if it is of the correct Kind, otherwise a new Row is created
// by the Inflater. The recycled Row may be nil.
//
// Reading the preference value will materialise the default value if it is
// not yet in the store.
func (t *Table) GetView(ctx *Context, position int, recycled Row) (Row, error) {
	d := t.Descriptor(position)
	if d == nil {
		return nil, curated.Errorf(UnknownPosition, position)
	}

	var row Row
	if d.View != nil {
		row = d.View(ctx, recycled)
	} else if recycled != nil && recycled.Kind() == d.Kind {
		row = recycled
	} else {
		row = ctx.Inflater.Inflate(d.Kind)
	}

	v := d.value(ctx.Store)
	row.Bind(Binding{
		Position: position,
		Title:    d.Title,
		Summary:  d.summary(v),
		Value:    v,
		Enabled:  t.IsEnabled(position),
	})

	return row, nil
}

// HandleSelection is called when the row at the position has been selected.
// The isChecked argument is the state of the row's check box, if it has one.
//
// The Descriptor's Handler is used if it has one. Otherwise the default
// handler for the Kind is used.
func (t *Table) HandleSelection(ctx *Context, position int, isChecked bool) error {
	d := t.Descriptor(position)
	if d == nil {
		return curated.Errorf(UnknownPosition, position)
	}

	if d.Handler != nil {
		return d.Handler(ctx, isChecked)
	}

	switch d.Kind {
	case Toggle:
		ctx.Store.Set(d.Domain, d.Key, isChecked)
		return ctx.Store.Sync(d.Domain)

	case Slider:
		if ctx.Presenter == nil {
			return curated.Errorf(NoPresenter, d.Title, d.Kind)
		}
		current := ctx.Store.GetInt(d.Domain, d.Key, d.defaultInt())
		ctx.Presenter.PickNumber(d.Title, d.Min, d.Max, current, func(v int) {
			v = min(max(v, d.Min), d.Max)
			ctx.Store.Set(d.Domain, d.Key, v)
			if err := ctx.Store.Sync(d.Domain); err != nil {
				logger.Log(logger.Allow, "settings", err)
			}
		})
		return nil

	case Choice:
		if ctx.Presenter == nil {
			return curated.Errorf(NoPresenter, d.Title, d.Kind)
		}
		def, _ := d.Default.(string)
		current := ctx.Store.GetString(d.Domain, d.Key, def)
		ctx.Presenter.PickChoice(d.Title, d.Choices, current, func(v string) {
			ctx.Store.Set(d.Domain, d.Key, v)
			if err := ctx.Store.Sync(d.Domain); err != nil {
				logger.Log(logger.Allow, "settings", err)
			}
		})
		return nil

	case Submenu:
		if ctx.Open == nil {
			return curated.Errorf(NoHandler, d.Title, d.Kind)
		}
		return ctx.Open(d.Submenu)
	}

	return curated.Errorf(NoHandler, d.Title, d.Kind)
}
