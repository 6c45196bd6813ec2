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

package detour

import (
	"time"

	"github.com/jetsetilly/menuhost/menu"
)

// Host is the part of the view host used by a Flow.
type Host interface {
	BeginDetour(menu.View)
	EndDetour(menu.View) error
	Post(func())
}

// Timer is returned by a Scheduler. It is satisfied by *time.Timer.
type Timer interface {
	Stop() bool
}

// Scheduler runs a function after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// the default scheduler runs the function on the host's event loop.
type hostScheduler struct {
	host Host
}

func (s hostScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() {
		s.host.Post(f)
	})
}
