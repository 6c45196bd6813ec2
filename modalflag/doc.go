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


// Package modalflag wraps the flag package in the standard library so that a
// command line can select a mode of operation, with each mode having its own
// flags. The menuhost command uses it to choose between the RUN, PREFS, RESET
// and GRAPH modes:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PREFS", "RESET", "GRAPH")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		statsview := md.AddBool("statsview", false, "run stats server")
//		...
//	}
//
// The first sub-mode is the default and is selected when the next argument is
// not a recognised sub-mode. Sub-mode comparisons are case insensitive. After
// a call to Parse(), RemainingArgs() returns the arguments that were neither
// flags nor the selected sub-mode.
package modalflag
