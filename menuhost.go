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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/jetsetilly/menuhost/easyterm"
	"github.com/jetsetilly/menuhost/host"
	"github.com/jetsetilly/menuhost/logger"
	"github.com/jetsetilly/menuhost/menus"
	"github.com/jetsetilly/menuhost/modalflag"
	"github.com/jetsetilly/menuhost/paths"
	"github.com/jetsetilly/menuhost/prefs"
	"github.com/jetsetilly/menuhost/statsview"
	"github.com/jetsetilly/menuhost/version"
	"github.com/spf13/afero"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

// signals that end the application. preferences are persisted before exit
var exitSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), exitSignals...)
	exitVal := launch(ctx, afero.NewOsFs(), os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. Returns the value
// to be used with os.Exit().
func launch(ctx context.Context, fs afero.Fs, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PREFS", "RESET", "GRAPH", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, fs, output)
	case "PREFS":
		err = showPrefs(md, fs, output)
	case "RESET":
		err = reset(md, fs, output)
	case "GRAPH":
		err = graph(md, fs, output)
	case "VERSION":
		fmt.Fprintln(output, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return 0
}

// openStore creates the preference store and loads the document.
func openStore(fs afero.Fs) (*prefs.Store, error) {
	store := prefs.NewStore(fs, paths.PrefsFile())
	if err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}

func run(ctx context.Context, md *modalflag.Modes, fs afero.Fs, output io.Writer) error {
	md.NewMode()

	overrides := md.AddString("prefs", "", "preference overrides for this session (eg. audio.speakerVolume::8)")
	log := md.AddBool("log", false, "echo log to stderr")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	store, err := openStore(fs)
	if err != nil {
		return err
	}

	// overrides last for the session only. they are removed before the
	// document is persisted for the final time
	if *overrides != "" {
		store.PushOverrides(prefs.ParseOverrides(*overrides))
	}

	eng := newHeadless()
	store.SetNativeSync(eng.applyPreferences(store))

	term := &easyterm.Terminal{}
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()
	term.CBreakMode()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	h := host.NewHost(eng)
	fe := newFrontend(term, h, store, eng, cancel)
	fe.splash.Show()
	fe.redraw()

	// the reader blocks on stdin so it can only notice the end of the context
	// after a key has been read. main() exits the process soon after launch()
	// returns in any case
	go func() {
		for {
			k, err := term.ReadKey()
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				logger.Log(logger.Allow, "menuhost", err)
				cancel()
				return
			}
			h.Post(func() {
				fe.key(k)
			})
		}
	}()

	err = h.Run(ctx)

	h.DismissAll()
	h.WaitBackground()
	h.Service()

	for store.OverrideDepth() > 0 {
		store.PopOverrides()
	}
	if perr := store.Persist(); perr != nil {
		logger.Log(logger.Allow, "menuhost", perr)
	}

	term.Clear()
	logger.WriteRecent(output)

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func showPrefs(md *modalflag.Modes, fs afero.Fs, output io.Writer) error {
	md.NewMode()
	asJSON := md.AddBool("json", false, "print document as JSON")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	store, err := openStore(fs)
	if err != nil {
		return err
	}

	if *asJSON {
		fmt.Fprintln(output, store.String())
		return nil
	}

	// restrict output to the domains named in the arguments
	filter := make(map[string]bool)
	for _, d := range md.RemainingArgs() {
		filter[d] = true
	}

	doc := store.Document()
	for _, domain := range store.Domains() {
		if len(filter) > 0 && !filter[domain] {
			continue
		}

		keys := make([]string, 0, len(doc[domain]))
		for k := range doc[domain] {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(output, "%s :: %v\n", prefs.Key{Domain: domain, Name: k}, doc[domain][k])
		}
	}

	return nil
}

func reset(md *modalflag.Modes, fs afero.Fs, output io.Writer) error {
	md.NewMode()
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	store := prefs.NewStore(fs, paths.PrefsFile())
	if err := store.Reset(); err != nil {
		return err
	}
	fmt.Fprintf(output, "preferences at %s have been reset\n", store.Path())

	return nil
}

// graph prints the structure of the view host after opening the menus named
// in the arguments. The root menu is always opened first.
func graph(md *modalflag.Modes, fs afero.Fs, output io.Writer) error {
	md.NewMode()
	calibrate := md.AddBool("calibrate", false, "start the keypad calibration after opening the menus")
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// the calibration flow syncs the store. writes are kept in memory so that
	// the preferences file is never changed by this mode
	store, err := openStore(afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(fs), afero.NewMemMapFs()))
	if err != nil {
		return err
	}

	h := host.NewHost(newHeadless())
	m := menus.NewMenus(h, store, nil, nil, nil)

	names := append([]string{menus.Root}, md.RemainingArgs()...)
	for _, n := range names {
		if err := m.Open(strings.ToLower(n)); err != nil {
			return err
		}
	}

	if *calibrate {
		// the calibration action is the fourth row of the input menu
		if err := m.Open(menus.Input); err != nil {
			return err
		}
		if err := m.Menu(menus.Input).Select(3, false); err != nil {
			return err
		}
	}

	h.WriteGraph(output)

	return nil
}
