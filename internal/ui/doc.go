// Package ui contains the Bubble Tea program that presents the series viewer.
// The Model routes messages; viewport state itself is owned by a
// viewport.Orchestrator and the Model only forwards events to it.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each tea.Msg type
//     is dispatched through a typed handler registry (keys, mouse, resize,
//     catalog reloads).
//   - Mouse presses inside the image region open a drag session, motion with
//     the button held folds pointer deltas into window/level, and release or
//     motion leaving the image region ends the session. Presses on the series
//     list select a series; the wheel steps through frames.
//   - Key bindings act as sliders: they call SetWindow/SetLevel/SetZoom with a
//     stepped value and rely on the orchestrator for clamping.
//
// Presentation:
//   - The Model implements viewport.Presenter. After every mutation the
//     orchestrator hands it a Snapshot (state, series, render descriptor) and
//     View draws from that snapshot only.
//   - The image pane shades a synthetic grayscale phantom with the descriptor's
//     contrast, brightness and scale so adjustments are visible in a terminal.
//
// Catalog reloads:
//   - When a backend.Watcher is supplied, Update waits for its events and hands
//     them to applyBackendEvent, which swaps the catalog in the orchestrator and
//     refreshes the series list. Every mutation therefore happens on the Bubble
//     Tea goroutine.
package ui
