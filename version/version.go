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


// Package version reports the version of the menuhost command. The version
// number is set by the linker when building a release:
//
//	go build -ldflags "-X github.com/jetsetilly/menuhost/version.number=v0.1.0"
//
// Otherwise the version is derived from the VCS information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Menuhost"

// set by the linker for release builds
var number string

// Info describes the build.
type Info struct {
	// the release number. "unreleased" if there is VCS information but no
	// release number and "local" if there is neither
	Version string

	// the VCS revision. suffixed with "+dirty" if the source had been modified
	// but not committed
	Revision string

	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}

// Version returns the build information.
var Version = sync.OnceValue(func() Info {
	return fromBuildInfo(debug.ReadBuildInfo())
})

func fromBuildInfo(bi *debug.BuildInfo, ok bool) Info {
	var vcs bool
	var revision string
	var modified bool

	if ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	inf := Info{Revision: "no revision information"}
	if revision != "" {
		inf.Revision = revision
		if modified {
			inf.Revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
