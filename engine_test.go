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
	"testing"
	"time"

	"github.com/jetsetilly/menuhost/test"
)

func TestHeadlessFrames(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	eng := newHeadless()
	eng.now = func() time.Time { return now }

	test.ExpectEquality(t, eng.String(), "engine: waiting for render surface")

	eng.InitializeRenderSurface()
	now = now.Add(2 * time.Second)
	test.ExpectEquality(t, eng.String(), "engine: running (frame 120)")

	// frames do not advance while paused
	eng.Pause()
	now = now.Add(time.Minute)
	test.ExpectEquality(t, eng.String(), "engine: paused (frame 120)")

	eng.Resume()
	now = now.Add(time.Second / 2)
	test.ExpectEquality(t, eng.String(), "engine: running (frame 150)")

	// a second initialisation is ignored
	eng.InitializeRenderSurface()
	test.ExpectEquality(t, eng.String(), "engine: running (frame 150)")
	test.ExpectEquality(t, eng.pauses, 1)
	test.ExpectEquality(t, eng.resumes, 1)
}
