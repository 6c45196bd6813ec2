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

package host_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/jetsetilly/menuhost/emulation"
	"github.com/jetsetilly/menuhost/host"
	"github.com/jetsetilly/menuhost/menu"
	"github.com/jetsetilly/menuhost/test"
)

// engine records the calls made to it
type engine struct {
	crit  sync.Mutex
	calls []string
}

func (e *engine) record(s string) {
	e.crit.Lock()
	defer e.crit.Unlock()
	e.calls = append(e.calls, s)
}

func (e *engine) Pause() {
	e.record("pause")
}

func (e *engine) Resume() {
	e.record("resume")
}

func (e *engine) InitializeRenderSurface() {
	e.record("surface")
}

func (e *engine) String() string {
	e.crit.Lock()
	defer e.crit.Unlock()
	return strings.Join(e.calls, " ")
}

func (e *engine) clear() {
	e.crit.Lock()
	defer e.crit.Unlock()
	e.calls = e.calls[:0]
}

// view is a minimal implementation of menu.View and menu.Dismissed
type view struct {
	name  string
	h     *host.Host
	layer *menu.Layer

	// called by OnDismissed()
	onDismissed func()
	dismissals  int
}

func newView(h *host.Host, name string) *view {
	return &view{
		name:  name,
		h:     h,
		layer: menu.NewLayer(name),
	}
}

func (v *view) Element() menu.Element {
	return v.layer
}

func (v *view) Show() {
	v.h.Push(v)
}

func (v *view) Dismiss() {
	v.h.Remove(v)
}

func (v *view) IsShowing() bool {
	return v.layer.IsVisible()
}

func (v *view) IsCalibrating() bool {
	return false
}

func (v *view) OnKeyTapCalibrationEvent(_ menu.KeyTap) bool {
	return false
}

func (v *view) OnDismissed() {
	v.dismissals++
	if v.onDismissed != nil {
		v.onDismissed()
	}
}

func (v *view) String() string {
	return v.name
}

// dialog records the order in which dialogs are dismissed
type dialog struct {
	name  string
	order *[]string
}

func (d *dialog) Dismiss() {
	*d.order = append(*d.order, d.name)
}

// names of the views in the host, top to bottom
func names(h *host.Host) string {
	var s []string
	for _, v := range h.Views() {
		s = append(s, fmt.Sprintf("%v", v))
	}
	return strings.Join(s, " ")
}

// checks that the engine state agrees with the contents of the stack
func expectSettled(t *testing.T, h *host.Host, tags ...any) bool {
	t.Helper()
	if h.Len() > 0 || h.ExternalPause() {
		return test.ExpectEquality(t, h.State(), emulation.Paused, tags...)
	}
	return test.ExpectEquality(t, h.State(), emulation.Running, tags...)
}
