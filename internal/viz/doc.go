// Package viz provides terminal-based visualization for the integer
// trig engine.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Explorer]: live walk around the circle with a float-reference readout
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//
// # Key Bindings
//
//	Space - Pause/Resume the walk
//	←/→   - Step backward/forward (Shift for single units)
//	+/-   - Double/halve the step size
//	Tab   - Switch focus between sine and cosine
//	Q     - Quit
package viz
