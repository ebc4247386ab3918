// Package stardust is the interactive backdrop of the Vanilla Moon landing
// page: a drag-spun rotation with momentum, bursts of stardust thrown off the
// pointer, and translucent ribbon curves that sway harder the faster the page
// spins. It renders through [Ebitengine] in a window and through pure-Go
// backends everywhere else.
//
// # Quick start
//
// The simplest way to get started is [RunGame], which opens a window, polls
// the mouse and touch screen and drives the animator every frame:
//
//	anim, _ := stardust.New(stardust.DefaultConfig())
//	game, _ := stardust.NewGame(anim, stardust.GameConfig{
//		Title: "Vanilla Moon", Width: 1280, Height: 720, MoonCursor: true,
//	})
//	stardust.RunGame(game)
//
// For full control, attach any [Surface], feed gestures yourself and call
// [Animator.Tick] once per frame, or hand a [Scheduler] to [Animator.Run]:
//
//	anim.Attach(surface)
//	anim.DragStart(x)
//	anim.DragMove(x, y)
//	anim.DragEnd()
//	rotation := anim.Tick()
//
// # Motion model
//
// While dragging, every move sets the rotational velocity to the horizontal
// delta times [Config.DragGain]; it is never accumulated. Once released the
// velocity decays by [Config.Damping] each frame and keeps adding to the
// rotation, so the page coasts to a stop. Increments are per frame and the
// default tuning assumes ~60 Hz; set [Config.FrameScaled] and use
// [Animator.TickDelta] to scale them by real elapsed time instead.
//
// # Surfaces
//
// [EbitenSurface] draws onto an offscreen [ebiten.Image]. The raster
// subpackage rasterizes in software with gogpu/gg, svgframe records frames
// as SVG documents and termview paints them onto a terminal with tcell.
// [Tee] fans one frame out to several surfaces.
//
// # Scripted sessions
//
// [PointerTracker] can replay synthetic gestures instead of hardware input.
// A [ScriptRunner] sequences presses, drags, waits, resizes and snapshots
// from a JSON file; cmd/stardust-render plays one headlessly and writes the
// snapshots as PNG and SVG.
//
// # Debug mode
//
// [Animator.SetDebugMode] logs per-frame particle counts, velocity and tick
// time to stderr.
//
// [Ebitengine]: https://ebitengine.org
package stardust
