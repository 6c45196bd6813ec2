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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/menuhost/paths"
	"github.com/jetsetilly/menuhost/test"
)

// run the path tests in a temporary directory containing the local resource
// directory so that the results are predictable
func inLocalResourceDir(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".menuhost", 0o700))
}

func TestPaths(t *testing.T) {
	inLocalResourceDir(t)

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".menuhost", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(".menuhost", "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".menuhost", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".menuhost")
}

func TestPrefsFile(t *testing.T) {
	inLocalResourceDir(t)

	t.Setenv(paths.PrefsEnv, "")
	test.ExpectEquality(t, paths.PrefsFile(), filepath.Join(".menuhost", paths.DefaultPrefsFile))

	t.Setenv(paths.PrefsEnv, "/tmp/other.json")
	test.ExpectEquality(t, paths.PrefsFile(), "/tmp/other.json")

	t.Setenv(paths.PrefsEnv, "   ")
	test.ExpectEquality(t, paths.PrefsFile(), filepath.Join(".menuhost", paths.DefaultPrefsFile))
}
