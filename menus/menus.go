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

package menus

import (
	"github.com/jetsetilly/menuhost/curated"
	"github.com/jetsetilly/menuhost/detour"
	"github.com/jetsetilly/menuhost/host"
	"github.com/jetsetilly/menuhost/menu"
	"github.com/jetsetilly/menuhost/prefs"
	"github.com/jetsetilly/menuhost/settings"
)

// Sentinal error patterns.
const (
	UnknownMenu = "menus: unknown menu: %s"
)

// Menus is the collection of menus.
type Menus struct {
	host  *host.Host
	ctx   *settings.Context
	sched detour.Scheduler

	menus map[string]*menu.Menu

	// the most recent calibration flow
	flow *detour.Flow
}

// NewMenus is the preferred method of initialisation for the Menus type. The
// Scheduler is used by calibration flows and can be nil.
func NewMenus(h *host.Host, store *prefs.Store, inflater settings.Inflater, presenter settings.Presenter, sched detour.Scheduler) *Menus {
	m := &Menus{
		host:  h,
		sched: sched,
		menus: make(map[string]*menu.Menu),
	}

	m.ctx = &settings.Context{
		Store:     store,
		Inflater:  inflater,
		Presenter: presenter,
		Open:      m.Open,
	}

	for _, t := range []*settings.Table{
		m.rootTable(),
		audioTable(),
		videoTable(),
		m.inputTable(),
	} {
		m.menus[t.Name] = menu.NewMenu(h, t, m.ctx)
	}

	return m
}

// Open shows the named menu.
func (m *Menus) Open(name string) error {
	mn, ok := m.menus[name]
	if !ok {
		return curated.Errorf(UnknownMenu, name)
	}
	mn.Show()
	return nil
}

// Menu returns the named menu. Returns nil if there is no menu with that
// name.
func (m *Menus) Menu(name string) *menu.Menu {
	return m.menus[name]
}

// Calibration returns the most recent calibration flow. Returns nil if no
// calibration flow has been started.
func (m *Menus) Calibration() *detour.Flow {
	return m.flow
}
