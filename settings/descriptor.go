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
	"fmt"

	"github.com/jetsetilly/menuhost/prefs"
)

// Descriptor binds a single preference to a row and a selection handler.
// Descriptors should be treated as immutable once they have been added to a
// Table.
type Descriptor struct {
	Kind Kind

	// the preference value. unused by the Action and Submenu kinds unless the
	// Handler refers to them
	Domain  string
	Key     string
	Default prefs.Value

	Title string

	// Summary returns the summary line for the row. The current value of the
	// preference is supplied. If Summary is nil a summary is created
	// according to the Kind
	Summary func(prefs.Value) string

	// the options for the Choice kind
	Choices []string

	// the range of the Slider kind
	Min int
	Max int

	// the name of the menu opened by the Submenu kind
	Submenu string

	// View replaces the normal inflation of a Row. The recycled Row may be
	// nil
	View func(ctx *Context, recycled Row) Row

	// Handler replaces the default selection handler for the Kind. It must
	// be provided for the Action kind
	Handler func(ctx *Context, isChecked bool) error
}

// value returns the current value of the preference. the default value will
// be materialised by this call if required.
func (d *Descriptor) value(store *prefs.Store) prefs.Value {
	switch d.Kind {
	case Toggle:
		def, _ := d.Default.(bool)
		return store.GetBool(d.Domain, d.Key, def)
	case Slider:
		return store.GetInt(d.Domain, d.Key, d.defaultInt())
	case Choice:
		def, _ := d.Default.(string)
		return store.GetString(d.Domain, d.Key, def)
	}
	return nil
}

func (d *Descriptor) defaultInt() int {
	switch v := d.Default.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return d.Min
}

// summary for the row.
func (d *Descriptor) summary(v prefs.Value) string {
	if d.Summary != nil {
		return d.Summary(v)
	}

	switch d.Kind {
	case Toggle:
		if b, ok := v.(bool); ok && b {
			return "on"
		}
		return "off"
	case Slider:
		return fmt.Sprintf("%v of %d", v, d.Max)
	case Choice:
		return fmt.Sprintf("%v", v)
	}
	return ""
}
