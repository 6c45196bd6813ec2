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

package prefs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/menuhost/prefs"
	"github.com/jetsetilly/menuhost/test"
)

func TestOverrides(t *testing.T) {
	s, _ := newTestStore(t)

	s.Set("joystick", "variant", "keypad")
	s.Set("audio", "speakerVolume", 8)
	before := s.String()

	domains := s.PushOverrides(map[prefs.Key]prefs.Value{
		{Domain: "joystick", Name: "variant"}:    "calibration",
		{Domain: "joystick", Name: "deadzone"}:   0,
		{Domain: "input", Name: "routeToDetour"}: true,
	})
	if diff := cmp.Diff([]string{"input", "joystick"}, domains); diff != "" {
		t.Errorf("unexpected domains (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, s.OverrideDepth(), 1)
	test.ExpectEquality(t, s.GetString("joystick", "variant", ""), "calibration")
	test.ExpectSuccess(t, s.GetBool("input", "routeToDetour", false))

	// nested checkpoint
	s.PushOverrides(map[prefs.Key]prefs.Value{
		{Domain: "joystick", Name: "variant"}: "rosette",
	})
	test.ExpectEquality(t, s.OverrideDepth(), 2)
	test.ExpectEquality(t, s.GetString("joystick", "variant", ""), "rosette")

	domains = s.PopOverrides()
	if diff := cmp.Diff([]string{"joystick"}, domains); diff != "" {
		t.Errorf("unexpected domains (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, s.GetString("joystick", "variant", ""), "calibration")

	s.PopOverrides()
	test.ExpectEquality(t, s.OverrideDepth(), 0)

	// absent keys have been removed, including the empty input domain
	test.ExpectEquality(t, s.String(), before)
	test.ExpectFailure(t, s.Has("input", "routeToDetour"))

	// no more checkpoints
	test.ExpectSuccess(t, s.PopOverrides() == nil)
}

func TestOverridesForgottenOnLoad(t *testing.T) {
	s, _ := newTestStore(t)
	s.PushOverrides(map[prefs.Key]prefs.Value{
		{Domain: "audio", Name: "enabled"}: false,
	})
	test.DemandSuccess(t, s.Load())
	test.ExpectEquality(t, s.OverrideDepth(), 0)
}

func TestParseOverrides(t *testing.T) {
	o := prefs.ParseOverrides("audio.speakerVolume::8; joystick.variant::keypad;audio.enabled:: false; video.gamma::1.5")
	expected := map[prefs.Key]prefs.Value{
		{Domain: "audio", Name: "speakerVolume"}: int64(8),
		{Domain: "joystick", Name: "variant"}:    "keypad",
		{Domain: "audio", Name: "enabled"}:       false,
		{Domain: "video", Name: "gamma"}:         1.5,
	}
	if diff := cmp.Diff(expected, o); diff != "" {
		t.Errorf("unexpected overrides (-want +got):\n%s", diff)
	}

	// malformed entries are ignored
	o = prefs.ParseOverrides("audio::8; .x::1; audio.::2; audio.x:1; ;")
	test.ExpectEquality(t, len(o), 0)

	test.ExpectEquality(t, prefs.Key{Domain: "audio", Name: "enabled"}.String(), "audio.enabled")
}

func TestOverridesNotPersisted(t *testing.T) {
	s, fs := newTestStore(t)

	s.Set("video", "scale", 3)
	test.DemandSuccess(t, s.Sync("video"))

	s.PushOverrides(map[prefs.Key]prefs.Value{
		{Domain: "video", Name: "scale"}:         5,
		{Domain: "audio", Name: "speakerVolume"}: 9,
	})

	// sync of an unrelated key writes the file
	s.Set("audio", "enabled", false)
	test.DemandSuccess(t, s.Sync("audio"))

	// overridden values are still in effect
	test.ExpectEquality(t, s.GetInt("video", "scale", 0), 5)
	test.ExpectEquality(t, s.GetInt("audio", "speakerVolume", 0), 9)

	// but the file has the values from before the override
	r := prefs.NewStore(fs, testPath)
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.GetInt("video", "scale", 0), 3)
	test.ExpectFailure(t, r.Has("audio", "speakerVolume"))
	test.ExpectEquality(t, r.GetBool("audio", "enabled", true), false)
}

func TestNestedOverridesNotPersisted(t *testing.T) {
	s, fs := newTestStore(t)

	s.Set("joystick", "variant", "keypad")
	s.PushOverrides(map[prefs.Key]prefs.Value{
		{Domain: "joystick", Name: "variant"}: "calibration",
	})
	s.PushOverrides(map[prefs.Key]prefs.Value{
		{Domain: "joystick", Name: "variant"}: "rosette",
	})
	test.DemandSuccess(t, s.Persist())

	r := prefs.NewStore(fs, testPath)
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.GetString("joystick", "variant", ""), "keypad")
}

func TestSetWhileOverridden(t *testing.T) {
	s, fs := newTestStore(t)

	s.PushOverrides(map[prefs.Key]prefs.Value{
		{Domain: "video", Name: "scale"}:         5,
		{Domain: "audio", Name: "speakerVolume"}: 9,
	})

	// the user changes an overridden key
	s.Set("audio", "speakerVolume", 3)
	test.DemandSuccess(t, s.Sync("audio"))

	r := prefs.NewStore(fs, testPath)
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.GetInt("audio", "speakerVolume", 0), 3)
	test.ExpectFailure(t, r.Has("video", "scale"))

	// the change survives the end of the override
	s.PopOverrides()
	test.ExpectEquality(t, s.GetInt("audio", "speakerVolume", 0), 3)
	test.ExpectFailure(t, s.Has("video", "scale"))
	test.DemandSuccess(t, s.Persist())

	r = prefs.NewStore(fs, testPath)
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.GetInt("audio", "speakerVolume", 0), 3)
}
