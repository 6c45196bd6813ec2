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
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/jetsetilly/menuhost/curated"
	"github.com/jetsetilly/menuhost/notifications"
	"github.com/jetsetilly/menuhost/prefs"
	"github.com/jetsetilly/menuhost/test"
	"github.com/spf13/afero"
)

func TestPersistAndLoad(t *testing.T) {
	s, fs := newTestStore(t)

	s.Set("audio", "speakerVolume", 8)
	s.Set("audio", "enabled", true)
	s.Set("joystick", "variant", "keypad")
	s.Set("keypad", "rosette", []interface{}{
		map[string]interface{}{"x": 1, "y": 2},
	})
	test.ExpectSuccess(t, s.Persist())

	data, err := afero.ReadFile(fs, testPath)
	test.DemandSuccess(t, err)

	// pretty printed
	test.ExpectSuccess(t, strings.Contains(string(data), "\n  \"audio\": {"))

	// temporary file has been moved into place
	_, err = fs.Stat(testPath + ".tmp")
	test.ExpectFailure(t, err)

	r := prefs.NewStore(fs, testPath)
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.GetInt("audio", "speakerVolume", 0), 8)
	test.ExpectSuccess(t, r.GetBool("audio", "enabled", false))
	test.ExpectEquality(t, r.GetString("joystick", "variant", ""), "keypad")
	test.ExpectEquality(t, r.GetFloat32("audio", "speakerVolume", 0), float32(8))
	test.ExpectEquality(t, s.String(), r.String())

	l := r.GetList("keypad", "rosette", nil)
	test.DemandEquality(t, len(l), 1)
	o, ok := l[0].(map[string]interface{})
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, o["y"], interface{}(json.Number("2")))
}

func TestMissingFile(t *testing.T) {
	s := prefs.NewStore(afero.NewMemMapFs(), testPath)
	test.ExpectSuccess(t, s.Load())
	test.ExpectEquality(t, s.String(), "{}")
	test.ExpectEquality(t, s.GetInt("audio", "speakerVolume", 5), 5)
}

func TestUnparsableFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	test.DemandSuccess(t, afero.WriteFile(fs, testPath, []byte(`{"audio": {"speakerVolume": 8`), 0o600))

	s := prefs.NewStore(fs, testPath)
	test.ExpectSuccess(t, s.Load())
	test.ExpectEquality(t, s.String(), "{}")
	test.ExpectEquality(t, s.GetInt("audio", "speakerVolume", 5), 5)
}

func TestTrailingDataInFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	test.DemandSuccess(t, afero.WriteFile(fs, testPath, []byte(`{"audio": {"speakerVolume": 8}} garbage`), 0o600))

	s := prefs.NewStore(fs, testPath)
	test.ExpectSuccess(t, s.Load())
	test.ExpectEquality(t, s.String(), "{}")

	// trailing whitespace is fine
	test.DemandSuccess(t, afero.WriteFile(fs, testPath, []byte("{\"audio\": {\"speakerVolume\": 8}}\n\n"), 0o600))
	test.ExpectSuccess(t, s.Load())
	test.ExpectEquality(t, s.GetInt("audio", "speakerVolume", 5), 8)
}

func TestLoadDropsBadEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	test.DemandSuccess(t, afero.WriteFile(fs, testPath, []byte(`{
		"audio": {"speakerVolume": 8},
		"video": 10,
		"keypad": {"autoRepeat": true, "haptics": false}
	}`), 0o600))

	s := prefs.NewStore(fs, testPath)
	test.DemandSuccess(t, s.Load())
	test.ExpectEquality(t, s.String(), `{"audio":{"speakerVolume":8},"keypad":{"haptics":false}}`)
}

func TestReset(t *testing.T) {
	s, fs := newTestStore(t)

	var notices []notifications.Notice
	s.SetNotify(notifications.NotifyFunc(func(n notifications.Notice) error {
		notices = append(notices, n)
		return nil
	}))

	s.Set("audio", "speakerVolume", 8)
	test.DemandSuccess(t, s.Persist())

	test.ExpectSuccess(t, s.Reset())
	test.DemandEquality(t, len(notices), 1)
	test.ExpectEquality(t, notices[0], notifications.NotifyTerminate)

	r := prefs.NewStore(fs, testPath)
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.String(), "{}")

	// only defaults from subsequent reads are in the document
	test.ExpectEquality(t, r.GetInt("audio", "speakerVolume", 5), 5)
	test.ExpectEquality(t, r.String(), `{"audio":{"speakerVolume":5}}`)
}

func TestPersistRetry(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := prefs.NewStore(fs, testPath)
	s.SetRetry(3, 0)

	called := false
	s.SetNativeSync(func(_ string) {
		called = true
	})

	s.Set("audio", "speakerVolume", 8)
	err := s.Sync("audio")
	test.ExpectSuccess(t, curated.Is(err, prefs.PersistFailed))

	// failed sync leaves the store dirty and does not call the native sync
	test.ExpectSuccess(t, s.Dirty())
	test.ExpectFailure(t, called)
}

func TestFatalPersist(t *testing.T) {
	s, fs := newTestStore(t)

	s.Set("audio", "speakerVolume", 8)
	s.Set("audio", "gain", math.NaN())

	err := s.Persist()
	test.ExpectSuccess(t, curated.Is(err, prefs.FatalPersist))

	data, rerr := afero.ReadFile(fs, testPath)
	test.DemandSuccess(t, rerr)
	test.ExpectEquality(t, string(data), "{}")

	// the next load is the same as a reset
	r := prefs.NewStore(fs, testPath)
	test.DemandSuccess(t, r.Load())
	test.ExpectEquality(t, r.String(), "{}")
}
