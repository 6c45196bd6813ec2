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

package detour_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/menuhost/detour"
	"github.com/jetsetilly/menuhost/host"
	"github.com/jetsetilly/menuhost/menu"
	"github.com/jetsetilly/menuhost/prefs"
	"github.com/jetsetilly/menuhost/test"
	"github.com/spf13/afero"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type engine struct {
	calls []string
}

func (e *engine) Pause()                   { e.calls = append(e.calls, "pause") }
func (e *engine) Resume()                  { e.calls = append(e.calls, "resume") }
func (e *engine) InitializeRenderSurface() { e.calls = append(e.calls, "surface") }

// timer and scheduler give the tests control over when the flow advances
type timer struct {
	f       func()
	d       time.Duration
	stopped bool
}

func (t *timer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type scheduler struct {
	pending []*timer
}

func (s *scheduler) AfterFunc(d time.Duration, f func()) detour.Timer {
	t := &timer{f: f, d: d}
	s.pending = append(s.pending, t)
	return t
}

// fire every pending timer. returns the number of timers that fired
func (s *scheduler) fire() int {
	p := s.pending
	s.pending = nil
	n := 0
	for _, t := range p {
		if !t.stopped {
			t.stopped = true
			t.f()
			n++
		}
	}
	return n
}

type setup struct {
	eng   *engine
	host  *host.Host
	store *prefs.Store
	sched *scheduler
}

func newSetup(t *testing.T) setup {
	t.Helper()
	store := prefs.NewStore(afero.NewMemMapFs(), "/preferences.json")
	test.DemandSuccess(t, store.Load())
	eng := &engine{}
	return setup{
		eng:   eng,
		host:  host.NewHost(eng),
		store: store,
		sched: &scheduler{},
	}
}

func (s setup) stack() string {
	var n []string
	for _, v := range s.host.Views() {
		n = append(n, fmt.Sprintf("%v", v))
	}
	return strings.Join(n, " ")
}

func (s setup) views(names ...string) []*menu.Layer {
	var l []*menu.Layer
	for _, n := range names {
		v := &view{layer: menu.NewLayer(n)}
		s.host.Push(v)
		l = append(l, v.layer)
	}
	return l
}

// view is a minimal menu.View
type view struct {
	layer *menu.Layer
}

func (v *view) Element() menu.Element                       { return v.layer }
func (v *view) Show()                                       {}
func (v *view) Dismiss()                                    {}
func (v *view) IsShowing() bool                             { return v.layer.IsVisible() }
func (v *view) IsCalibrating() bool                         { return false }
func (v *view) OnKeyTapCalibrationEvent(_ menu.KeyTap) bool { return false }
func (v *view) String() string                              { return v.layer.Name }

var captureKeys = prefs.Key{Domain: "input", Name: "captureKeys"}

func newFlow(s setup) *detour.Flow {
	return detour.NewFlow(detour.Config{
		Name:   "D",
		Host:   s.host,
		Store:  s.store,
		Slots:  []detour.Slot{{Name: "one"}, {Name: "two"}},
		Domain: "test",
		Key:    "results",
		Overrides: map[prefs.Key]prefs.Value{
			captureKeys: true,
		},
		Scheduler: s.sched,
	})
}

func TestDetourRestoresStack(t *testing.T) {
	s := newSetup(t)
	layers := s.views("A", "B", "C")
	test.ExpectEquality(t, s.stack(), "C B A")

	d := newFlow(s)
	test.DemandImplements[menu.Dismissed](t, d)

	d.Show()
	test.ExpectEquality(t, s.stack(), "D")
	test.ExpectSuccess(t, d.IsShowing())
	test.ExpectSuccess(t, d.IsCalibrating())
	test.ExpectFailure(t, layers[2].IsVisible())
	test.ExpectSuccess(t, s.store.GetBool("input", "captureKeys", false))

	d.Dismiss()
	test.ExpectEquality(t, s.stack(), "C B A")
	test.ExpectFailure(t, d.IsShowing())
	test.ExpectFailure(t, d.IsCalibrating())
	test.ExpectSuccess(t, layers[2].IsVisible())

	// the override is removed because the key did not exist before
	test.ExpectFailure(t, s.store.Has("input", "captureKeys"))

	test.ExpectEquality(t, strings.Join(s.eng.calls, " "), "pause")
	test.ExpectEquality(t, s.host.DetourDepth(), 0)
}

func TestDetourEmptyStack(t *testing.T) {
	s := newSetup(t)
	d := newFlow(s)

	d.Show()
	test.ExpectEquality(t, s.stack(), "D")
	d.Dismiss()
	test.ExpectEquality(t, s.stack(), "")
	test.ExpectEquality(t, strings.Join(s.eng.calls, " "), "pause resume")
}

func TestOverridesRestoredVerbatim(t *testing.T) {
	s := newSetup(t)
	s.store.Set("input", "captureKeys", "sometimes")

	d := newFlow(s)
	d.Show()
	test.ExpectSuccess(t, s.store.GetBool("input", "captureKeys", false))
	d.Dismiss()
	test.ExpectEquality(t, s.store.GetString("input", "captureKeys", ""), "sometimes")
}

func TestSlotsAndCompletion(t *testing.T) {
	s := newSetup(t)
	s.views("A", "B")

	var completed []interface{}
	d := detour.NewFlow(detour.Config{
		Name:   "D",
		Host:   s.host,
		Store:  s.store,
		Slots:  []detour.Slot{{Name: "one"}, {Name: "two"}, {Name: "three", Prompt: "press three"}},
		Domain: "test",
		Key:    "results",
		Overrides: map[prefs.Key]prefs.Value{
			captureKeys: true,
		},
		Scheduler: s.sched,
		OnComplete: func(results []interface{}) {
			completed = results
		},
	})

	// events are not consumed until the flow is showing
	test.ExpectFailure(t, d.OnKeyTapCalibrationEvent(menu.KeyTap{Key: "1"}))

	d.Show()
	_, i := d.Slot()
	test.ExpectEquality(t, i, 0)
	test.ExpectEquality(t, d.Progress(), "D 1/3: one")

	test.ExpectSuccess(t, d.OnKeyTapCalibrationEvent(menu.KeyTap{Key: "1"}))
	test.DemandEquality(t, len(s.sched.pending), 1)
	test.ExpectEquality(t, s.sched.pending[0].d, detour.DefaultDelay)

	// taps while the timer is armed are ignored
	test.ExpectSuccess(t, d.OnKeyTapCalibrationEvent(menu.KeyTap{Key: "X"}))
	test.ExpectEquality(t, len(s.sched.pending), 1)

	// interim result has been stored
	l := s.store.GetList("test", "results", nil)
	test.DemandEquality(t, len(l), 1)
	test.ExpectEquality(t, l[0].(map[string]interface{})["key"], interface{}("1"))

	test.ExpectEquality(t, s.sched.fire(), 1)
	slot, i := d.Slot()
	test.ExpectEquality(t, i, 1)
	test.ExpectEquality(t, slot.Name, "two")

	test.ExpectSuccess(t, d.OnKeyTapCalibrationEvent(menu.KeyTap{Key: "2", X: 10, Y: 20}))
	s.sched.fire()
	test.ExpectEquality(t, d.Progress(), "D 3/3: press three")
	test.ExpectSuccess(t, d.OnKeyTapCalibrationEvent(menu.KeyTap{Key: "3"}))
	test.ExpectSuccess(t, completed == nil)

	// moving on from the last slot completes the flow
	s.sched.fire()
	test.DemandEquality(t, len(completed), 3)
	test.ExpectEquality(t, completed[1].(map[string]interface{})["x"], interface{}(10))
	test.ExpectEquality(t, s.stack(), "B A")
	test.ExpectFailure(t, d.IsShowing())
	test.ExpectFailure(t, s.store.Has("input", "captureKeys"))

	// the results have been synced
	test.ExpectFailure(t, s.store.Dirty())
	test.ExpectEquality(t, len(s.store.GetList("test", "results", nil)), 3)

	// the flow wraps back to the first slot
	_, i = d.Slot()
	test.ExpectEquality(t, i, 0)
}

func TestDismissStopsTimer(t *testing.T) {
	s := newSetup(t)
	d := newFlow(s)
	d.Show()
	d.OnKeyTapCalibrationEvent(menu.KeyTap{Key: "1"})
	d.Dismiss()

	test.ExpectEquality(t, s.sched.fire(), 0)
	test.ExpectEquality(t, s.stack(), "")
}

func TestCancelKeepsPreviousResult(t *testing.T) {
	s := newSetup(t)
	d := newFlow(s)

	// a complete run
	d.Show()
	for _, k := range []string{"1", "2"} {
		test.ExpectSuccess(t, d.OnKeyTapCalibrationEvent(menu.KeyTap{Key: k}))
		test.ExpectEquality(t, s.sched.fire(), 1)
	}
	test.ExpectEquality(t, s.stack(), "")
	test.DemandEquality(t, len(s.store.GetList("test", "results", nil)), 2)
	test.ExpectFailure(t, s.store.Dirty())
	before := s.store.String()

	// a second run that is cancelled after one slot
	d.Show()
	test.ExpectSuccess(t, d.OnKeyTapCalibrationEvent(menu.KeyTap{Key: "9"}))
	test.ExpectEquality(t, len(s.store.GetList("test", "results", nil)), 1)
	d.Dismiss()

	l := s.store.GetList("test", "results", nil)
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0].(map[string]interface{})["key"], interface{}("1"))
	test.ExpectEquality(t, s.store.String(), before)
	test.ExpectFailure(t, s.store.Dirty())
}

func TestCancelFirstRun(t *testing.T) {
	s := newSetup(t)
	s.views("A")
	d := newFlow(s)

	d.Show()
	test.ExpectSuccess(t, d.OnKeyTapCalibrationEvent(menu.KeyTap{Key: "1"}))
	test.ExpectSuccess(t, s.store.Has("test", "results"))

	// removal by the host is also a cancellation
	s.host.Pop()
	test.ExpectEquality(t, s.stack(), "A")
	test.ExpectFailure(t, s.store.Has("test", "results"))
	test.ExpectFailure(t, s.store.Dirty())
}

func TestFlowPoppedByHost(t *testing.T) {
	s := newSetup(t)
	s.views("A", "B")
	d := newFlow(s)
	d.Show()

	s.host.Pop()
	test.ExpectEquality(t, s.stack(), "B A")
	test.ExpectEquality(t, s.host.DetourDepth(), 0)
	test.ExpectFailure(t, s.store.Has("input", "captureKeys"))
}

func TestFlowDismissAll(t *testing.T) {
	s := newSetup(t)
	s.views("A", "B")
	d := newFlow(s)
	d.Show()

	s.host.DismissAll()
	test.ExpectEquality(t, s.stack(), "")
	test.ExpectEquality(t, s.host.DetourDepth(), 0)
	test.ExpectFailure(t, s.store.Has("input", "captureKeys"))
	test.ExpectFailure(t, d.IsCalibrating())

	// the flow can be shown again
	d.Show()
	test.ExpectEquality(t, s.stack(), "D")
	d.Dismiss()
}

func TestHostScheduler(t *testing.T) {
	s := newSetup(t)
	d := detour.NewFlow(detour.Config{
		Name:   "D",
		Host:   s.host,
		Store:  s.store,
		Slots:  []detour.Slot{{Name: "one"}, {Name: "two"}},
		Domain: "test",
		Key:    "results",
		Delay:  time.Millisecond,
	})
	d.Show()
	d.OnKeyTapCalibrationEvent(menu.KeyTap{Key: "1"})

	// the timer posts to the event loop
	deadline := time.Now().Add(time.Second)
	for s.host.Service() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("timer did not expire")
		}
		time.Sleep(time.Millisecond)
	}

	_, i := d.Slot()
	test.ExpectEquality(t, i, 1)
	d.Dismiss()
}

func TestConcreteFlows(t *testing.T) {
	s := newSetup(t)
	s.views("settings")

	k := detour.NewKeypadCalibration(s.host, s.store, s.sched)
	k.Show()
	test.ExpectSuccess(t, s.store.GetBool("keypad", "visible", false))
	for i := range 8 {
		test.ExpectSuccess(t, k.OnKeyTapCalibrationEvent(menu.KeyTap{Key: "tap", X: i, Y: i}))
		test.ExpectEquality(t, s.sched.fire(), 1)
	}
	test.ExpectEquality(t, s.stack(), "settings")

	rosette := s.store.GetList("keypad", "rosette", nil)
	test.DemandEquality(t, len(rosette), 8)
	test.ExpectEquality(t, rosette[0].(map[string]interface{})["slot"], interface{}("north"))
	test.ExpectEquality(t, rosette[7].(map[string]interface{})["slot"], interface{}("north-west"))

	// keypad/visible did not exist before the calibration
	test.ExpectFailure(t, s.store.Has("keypad", "visible"))

	s.store.Set("joystick", "enabled", true)
	j := detour.NewJoystickCalibration(s.host, s.store, s.sched)
	j.Show()
	test.ExpectFailure(t, s.store.GetBool("joystick", "enabled", true))
	j.Dismiss()
	test.ExpectSuccess(t, s.store.GetBool("joystick", "enabled", false))
	test.ExpectEquality(t, s.stack(), "settings")
}
