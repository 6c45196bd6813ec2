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

// Package host coordinates the stack of views shown over the emulation with
// the running state of the emulation engine.
//
// The engine is paused whenever there is at least one view on the stack or
// when an external pause is in effect (for example, when the application has
// been sent to the background). The engine is resumed when neither condition
// holds. The transition is decided once, at the end of every change to the
// stack, so compound operations never cause a spurious pause/resume pair.
//
// The first dismissal of the splash screen is special. Instead of resuming the
// engine, the render surface is created with a call to
// Engine.InitializeRenderSurface(). This happens only once.
//
// Changes to the stack are mutually exclusive. Views can change the stack
// from inside their own OnDismissed() function. Such calls are made from the
// goroutine that owns the change in progress and are queued until the change
// has finished. The queued calls return immediately with a nil or no-op
// result. Calls from other goroutines wait for the change in progress, and
// any queued calls, to complete.
//
// Detours temporarily replace the entire stack with a single view. See
// BeginDetour() and EndDetour().
//
// The host also offers a simple event loop. Functions passed to Post() are run
// by Service() or Run(), which should be called from the goroutine that drives
// the views.
package host
