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
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jetsetilly/menuhost/logger"
	"github.com/jetsetilly/menuhost/menu"
	"github.com/jetsetilly/menuhost/prefs"
)

// DefaultDelay is the time between a slot being recorded and the flow moving
// on to the next slot.
const DefaultDelay = 1000 * time.Millisecond

// Slot is a single step in a Flow.
type Slot struct {
	Name   string
	Prompt string
}

// Config for a new Flow.
type Config struct {
	Name  string
	Host  Host
	Store *prefs.Store

	Slots []Slot

	// where the results are stored in the preferences. the results are a
	// list of objects, one for each slot
	Domain string
	Key    string

	// preferences that are overridden while the flow is showing
	Overrides map[prefs.Key]prefs.Value

	// Delay defaults to DefaultDelay if it is zero
	Delay time.Duration

	// Scheduler defaults to a scheduler that runs on the host's event loop
	Scheduler Scheduler

	// called when the final slot has been recorded, before the flow is
	// dismissed
	OnComplete func(results []interface{})
}

// Flow is a calibration flow. It implements the menu.View and menu.Dismissed
// interfaces.
type Flow struct {
	cfg   Config
	layer *menu.Layer

	crit sync.Mutex

	// active is true between Show() and OnDismissed(). ending is true while
	// Dismiss() is waiting for the host
	active bool
	ending bool

	cursor  int
	results []interface{}

	// the stored result from before Show(). restored if the flow is dismissed
	// before it completes
	prior     prefs.Value
	hadPrior  bool
	completed bool

	// the armed timer. gen is incremented every time the timer is armed or
	// stopped so that a stale timer can be recognised
	timer Timer
	gen   int
}

// NewFlow is the preferred method of initialisation for the Flow type.
func NewFlow(cfg Config) *Flow {
	if cfg.Delay == 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = hostScheduler{host: cfg.Host}
	}
	return &Flow{
		cfg:   cfg,
		layer: menu.NewLayer(cfg.Name),
	}
}

func (f *Flow) String() string {
	return f.cfg.Name
}

// Element implements the menu.View interface.
func (f *Flow) Element() menu.Element {
	return f.layer
}

// IsShowing implements the menu.View interface.
func (f *Flow) IsShowing() bool {
	return f.layer.IsVisible()
}

// IsCalibrating implements the menu.View interface.
func (f *Flow) IsCalibrating() bool {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.active && !f.ending
}

// Slot returns the current slot and its index.
func (f *Flow) Slot() (Slot, int) {
	f.crit.Lock()
	defer f.crit.Unlock()
	if len(f.cfg.Slots) == 0 {
		return Slot{}, 0
	}
	return f.cfg.Slots[f.cursor], f.cursor
}

// Results returns a copy of the results recorded so far.
func (f *Flow) Results() []interface{} {
	f.crit.Lock()
	defer f.crit.Unlock()
	r := make([]interface{}, len(f.results))
	copy(r, f.results)
	return r
}

// sync the preference domains. errors are logged.
func (f *Flow) sync(domains []string) {
	for _, d := range domains {
		if err := f.cfg.Store.Sync(d); err != nil {
			logger.Log(logger.Allow, "detour", err)
		}
	}
}

// Show implements the menu.View interface. The input routing preferences are
// overridden and the view stack is replaced by the Flow.
func (f *Flow) Show() {
	f.crit.Lock()
	if f.active || len(f.cfg.Slots) == 0 {
		f.crit.Unlock()
		return
	}
	f.active = true
	f.ending = false
	f.completed = false
	f.cursor = 0
	f.results = f.results[:0]
	f.hadPrior = f.cfg.Store.Has(f.cfg.Domain, f.cfg.Key)
	f.prior = nil
	if f.hadPrior {
		f.prior = f.cfg.Store.Get(f.cfg.Domain, f.cfg.Key, nil)
	}
	f.crit.Unlock()

	f.sync(f.cfg.Store.PushOverrides(f.cfg.Overrides))
	f.cfg.Host.BeginDetour(f)

	logger.Logf(logger.Allow, "detour", "%s: started with %d slots", f.cfg.Name, len(f.cfg.Slots))
}

// Dismiss implements the menu.View interface. The view stack is restored to
// how it was before Show() was called.
func (f *Flow) Dismiss() {
	f.crit.Lock()
	if !f.active || f.ending {
		f.crit.Unlock()
		return
	}
	f.ending = true
	f.crit.Unlock()

	if err := f.cfg.Host.EndDetour(f); err != nil {
		logger.Log(logger.Allow, "detour", err)
		f.crit.Lock()
		f.ending = false
		f.crit.Unlock()
	}
}

// OnDismissed implements the menu.Dismissed interface. The timer is stopped
// and the overridden preferences are restored. If the flow did not complete
// then the stored result is returned to what it was before Show().
//
// If the Flow has been removed from the stack by something other than
// Dismiss() then the end of the detour is requested from the host.
func (f *Flow) OnDismissed() {
	f.crit.Lock()
	if !f.active {
		f.crit.Unlock()
		return
	}
	f.active = false
	ending := f.ending
	f.ending = false
	f.stopTimer()
	cancelled := !f.completed && len(f.results) > 0
	prior, hadPrior := f.prior, f.hadPrior
	f.crit.Unlock()

	if cancelled {
		if hadPrior {
			f.cfg.Store.Set(f.cfg.Domain, f.cfg.Key, prior)
		} else {
			f.cfg.Store.Delete(f.cfg.Domain, f.cfg.Key)
		}
		logger.Logf(logger.Allow, "detour", "%s: cancelled, previous result restored", f.cfg.Name)
	}

	domains := f.cfg.Store.PopOverrides()
	if cancelled && !slices.Contains(domains, f.cfg.Domain) {
		domains = append(domains, f.cfg.Domain)
	}
	f.sync(domains)

	if !ending {
		if err := f.cfg.Host.EndDetour(f); err != nil {
			logger.Log(logger.Allow, "detour", err)
		}
	}

	logger.Logf(logger.Allow, "detour", "%s: finished", f.cfg.Name)
}

// stopTimer must be called from inside the critical section.
func (f *Flow) stopTimer() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++
}

// OnKeyTapCalibrationEvent implements the menu.View interface. The event is
// recorded as the result of the current slot and the timer is armed. Events
// that arrive while the timer is armed are consumed but otherwise ignored.
func (f *Flow) OnKeyTapCalibrationEvent(ev menu.KeyTap) bool {
	f.crit.Lock()
	if !f.active || f.ending {
		f.crit.Unlock()
		return false
	}
	if f.timer != nil {
		f.crit.Unlock()
		return true
	}

	slot := f.cfg.Slots[f.cursor]
	f.results = append(f.results[:f.cursor], map[string]interface{}{
		"slot": slot.Name,
		"key":  ev.Key,
		"x":    ev.X,
		"y":    ev.Y,
	})
	results := make([]interface{}, len(f.results))
	copy(results, f.results)

	f.gen++
	gen := f.gen
	f.timer = f.cfg.Scheduler.AfterFunc(f.cfg.Delay, func() {
		f.advance(gen)
	})
	f.crit.Unlock()

	// interim results are stored but not synced
	f.cfg.Store.Set(f.cfg.Domain, f.cfg.Key, results)

	logger.Logf(logger.Allow, "detour", "%s: %s recorded as %v", f.cfg.Name, slot.Name, ev)

	return true
}

// advance to the next slot. called when the timer expires.
func (f *Flow) advance(gen int) {
	f.crit.Lock()
	if !f.active || f.ending || gen != f.gen {
		f.crit.Unlock()
		return
	}
	f.timer = nil

	f.cursor++
	complete := f.cursor >= len(f.cfg.Slots)
	if complete {
		f.cursor = 0
		f.completed = true
	}
	results := make([]interface{}, len(f.results))
	copy(results, f.results)
	f.crit.Unlock()

	if !complete {
		return
	}

	f.sync([]string{f.cfg.Domain})
	if f.cfg.OnComplete != nil {
		f.cfg.OnComplete(results)
	}
	f.Dismiss()
}

// Progress returns a short description of the flow's progress.
func (f *Flow) Progress() string {
	f.crit.Lock()
	defer f.crit.Unlock()
	if len(f.cfg.Slots) == 0 {
		return f.cfg.Name
	}
	s := f.cfg.Slots[f.cursor]
	if s.Prompt == "" {
		return fmt.Sprintf("%s %d/%d: %s", f.cfg.Name, f.cursor+1, len(f.cfg.Slots), s.Name)
	}
	return fmt.Sprintf("%s %d/%d: %s", f.cfg.Name, f.cursor+1, len(f.cfg.Slots), s.Prompt)
}
