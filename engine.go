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


package main

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/menuhost/emulation"
	"github.com/jetsetilly/menuhost/logger"
	"github.com/jetsetilly/menuhost/prefs"
)

// the nominal frame rate of the headless engine
const framesPerSecond = 60

// headless is an emulation.Engine that does no emulation. It keeps track of
// how long it would have been running and logs every transition, which is
// enough to see the view host working from the terminal.
type headless struct {
	crit sync.Mutex

	// the time of the most recent call to Resume() or to
	// InitializeRenderSurface(). zero when paused
	resumed time.Time

	// accumulated running time before the most recent resume
	elapsed time.Duration

	surface bool
	paused  bool

	// number of Pause() and Resume() calls
	pauses  int
	resumes int

	now func() time.Time
}

func newHeadless() *headless {
	return &headless{
		now: time.Now,
	}
}

// Pause implements the emulation.Engine interface.
func (eng *headless) Pause() {
	eng.crit.Lock()
	defer eng.crit.Unlock()

	if !eng.resumed.IsZero() {
		eng.elapsed += eng.now().Sub(eng.resumed)
		eng.resumed = time.Time{}
	}
	eng.paused = true
	eng.pauses++

	logger.Logf(logger.Allow, "engine", "paused at frame %d", eng.frame())
}

// Resume implements the emulation.Engine interface.
func (eng *headless) Resume() {
	eng.crit.Lock()
	defer eng.crit.Unlock()

	eng.resumed = eng.now()
	eng.paused = false
	eng.resumes++

	logger.Logf(logger.Allow, "engine", "resumed at frame %d", eng.frame())
}

// InitializeRenderSurface implements the emulation.Engine interface.
func (eng *headless) InitializeRenderSurface() {
	eng.crit.Lock()
	defer eng.crit.Unlock()

	if eng.surface {
		logger.Log(logger.Allow, "engine", "render surface already initialised")
		return
	}
	eng.surface = true
	eng.paused = false
	eng.resumed = eng.now()

	logger.Log(logger.Allow, "engine", "render surface initialised")
}

// frame returns the current frame number. must be called from inside the
// critical section.
func (eng *headless) frame() int {
	d := eng.elapsed
	if !eng.resumed.IsZero() {
		d += eng.now().Sub(eng.resumed)
	}
	return int(d.Seconds() * framesPerSecond)
}

func (eng *headless) String() string {
	eng.crit.Lock()
	defer eng.crit.Unlock()

	if !eng.surface {
		return "engine: waiting for render surface"
	}
	state := emulation.Running
	if eng.paused {
		state = emulation.Paused
	}
	return fmt.Sprintf("engine: %s (frame %d)", state, eng.frame())
}

// applyPreferences is the prefs.NativeSync function for the engine. The
// headless engine has nothing to configure so the values are logged.
func (eng *headless) applyPreferences(store *prefs.Store) prefs.NativeSync {
	return func(domain string) {
		d := store.Document()[domain]

		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		s := strings.Builder{}
		for _, k := range keys {
			fmt.Fprintf(&s, " %s=%v", k, d[k])
		}

		logger.Logf(logger.Allow, "engine", "applying %s preferences:%s", domain, s.String())
	}
}
