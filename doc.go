// Package controls turns per-frame polled input into stateful,
// edge-triggered, listener-driven controls for games.
//
// A [Registry] owns three kinds of control, each created the first time it
// is referenced by name:
//
//   - [ButtonControl]: Released → OnHold → Holding → OnRelease, with hold
//     timers in scaled and unscaled seconds.
//   - [AxisControl]: processed and raw analog values with per-frame deltas.
//   - [DragControl]: press, potential drag, dragging and drag end for one
//     mouse button.
//
// The registry also runs a double-click detector on the primary mouse
// button.
//
// # Frame loop
//
// Call [Registry.Update] once per tick before game logic runs. Controls are
// refreshed in a fixed order (buttons, axes, drags, double click) and their
// listeners fire synchronously, in registration order, inside Update:
//
//	bindings, err := controls.LoadBindings(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	reg := controls.NewRegistry(controls.NewEbitenSource(bindings),
//		controls.NewEbitenClock(), controls.RegistryConfig{})
//
//	reg.AddButtonDownListener("Jump", func() { player.Jump() })
//
//	func (g *Game) Update() error {
//		g.reg.Update()
//		g.player.X += g.reg.Axis("Horizontal") * speed
//		return nil
//	}
//
// # Sources
//
// Raw input comes from an [InputSource]: [EbitenSource] for Ebitengine
// games, [ScriptedSource] for tests and replays, and term.Source for tcell
// terminal programs. Timing comes from a [Clock].
//
// Names the source does not know are reported once with log.Printf and then
// read as neutral values (false, 0, Released, None) for the rest of the
// session; see [Registry.Revalidate].
//
// Events can also be forwarded to an ECS world via [Registry.SetEventSink]
// and the [Donburi] adapter in controls/ecs.
//
// [Donburi]: https://github.com/yohamta/donburi
package controls
