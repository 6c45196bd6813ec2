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

package menus

import (
	"github.com/jetsetilly/menuhost/detour"
	"github.com/jetsetilly/menuhost/logger"
	"github.com/jetsetilly/menuhost/settings"
)

// Names of the menus.
const (
	Root  = "settings"
	Audio = "audio"
	Video = "video"
	Input = "input"
)

// position of the rows in the video menu
const (
	videoScale = iota
	videoCRT
	videoShader
)

// the shader row is shown but is not available in this build
func videoEnabled(position int) bool {
	return position != videoShader
}

func (m *Menus) rootTable() *settings.Table {
	return &settings.Table{
		Name: Root,
		Descriptors: []settings.Descriptor{
			{Kind: settings.Submenu, Title: "Audio", Submenu: Audio},
			{Kind: settings.Submenu, Title: "Video", Submenu: Video},
			{Kind: settings.Submenu, Title: "Input", Submenu: Input},
			{
				Kind:  settings.Action,
				Title: "Reset preferences",
				Handler: func(ctx *settings.Context, _ bool) error {
					return ctx.Store.Reset()
				},
			},
		},
	}
}

func audioTable() *settings.Table {
	return &settings.Table{
		Name: Audio,
		Descriptors: []settings.Descriptor{
			{Kind: settings.Toggle, Title: "Audio", Domain: "audio", Key: "enabled", Default: true},
			{Kind: settings.Slider, Title: "Speaker volume", Domain: "audio", Key: "speakerVolume", Default: 5, Max: 10},
			{Kind: settings.Toggle, Title: "Stereo", Domain: "audio", Key: "stereo", Default: false},
		},
	}
}

func videoTable() *settings.Table {
	t := &settings.Table{
		Name:    Video,
		Enabled: videoEnabled,
	}
	t.Descriptors = make([]settings.Descriptor, 3)
	t.Descriptors[videoScale] = settings.Descriptor{Kind: settings.Slider, Title: "Scale", Domain: "video", Key: "scale", Default: 3, Min: 1, Max: 5}
	t.Descriptors[videoCRT] = settings.Descriptor{Kind: settings.Toggle, Title: "CRT effects", Domain: "video", Key: "crt", Default: true}
	t.Descriptors[videoShader] = settings.Descriptor{Kind: settings.Choice, Title: "Shader", Domain: "video", Key: "shader", Default: "none", Choices: []string{"none", "sharp", "soft"}}
	return t
}

func (m *Menus) inputTable() *settings.Table {
	return &settings.Table{
		Name: Input,
		Descriptors: []settings.Descriptor{
			{
				Kind:    settings.Choice,
				Title:   "Controller",
				Domain:  "joystick",
				Key:     "variant",
				Default: "joystick",
				Choices: []string{"joystick", "keypad", "paddle"},
			},
			{Kind: settings.Toggle, Title: "Show keypad", Domain: "keypad", Key: "visible", Default: true},
			{Kind: settings.Toggle, Title: "Keypad haptics", Domain: "keypad", Key: "haptics", Default: true},
			{
				Kind:  settings.Action,
				Title: "Calibrate keypad",
				Handler: func(ctx *settings.Context, _ bool) error {
					m.calibrate(detour.NewKeypadCalibration(m.host, ctx.Store, m.sched))
					return nil
				},
			},
			{
				Kind:  settings.Action,
				Title: "Calibrate joystick",
				Handler: func(ctx *settings.Context, _ bool) error {
					m.calibrate(detour.NewJoystickCalibration(m.host, ctx.Store, m.sched))
					return nil
				},
			},
		},
	}
}

// calibrate shows the calibration flow and records it as the current flow.
func (m *Menus) calibrate(f *detour.Flow) {
	logger.Logf(logger.Allow, "menus", "starting %v", f)
	m.flow = f
	f.Show()
}
