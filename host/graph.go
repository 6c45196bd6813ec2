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

package host

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/menuhost/menu"
)

// node is a single view in the graph. Next is the view underneath it.
type node struct {
	Name        string
	Showing     bool
	Calibrating bool
	Next        *node
}

// graph is the structure rendered by WriteGraph().
type graph struct {
	State         string
	ExternalPause bool
	Stack         *node

	// views held by detours, innermost detour first
	Detours []*node

	Dialogs []string
}

// link the views (ordered top to bottom) into a list of nodes.
func link(views []menu.View) *node {
	var head *node
	for i := len(views) - 1; i >= 0; i-- {
		head = &node{
			Name:        fmt.Sprintf("%v", views[i]),
			Showing:     views[i].IsShowing(),
			Calibrating: views[i].IsCalibrating(),
			Next:        head,
		}
	}
	return head
}

// WriteGraph writes a graphviz description of the view stack to w.
func (h *Host) WriteGraph(w io.Writer) {
	var g graph
	h.critical(func() {
		g.State = h.state.String()
		g.ExternalPause = h.externalPause
		g.Stack = link(h.stack.Snapshot())
		for _, cp := range h.checkpoints.All() {
			g.Detours = append([]*node{link(cp.Captured())}, g.Detours...)
		}
	})
	for _, d := range h.Dialogs() {
		g.Dialogs = append(g.Dialogs, fmt.Sprintf("%v", d))
	}

	memviz.Map(w, &g)
}
