// Package vtcore is an embeddable VT100/xterm-compatible terminal engine.
//
// It is built for bare-metal and hosted environments that own a linear
// framebuffer and want a text console without a hosted runtime: given a
// stream of bytes from a PTY (or any byte producer), it interprets
// ANSI/VT escape sequences, maintains a grid of styled cells plus
// scrollback, rasterizes glyphs through a pluggable font backend, and
// issues pixel writes to a caller-supplied draw target. It also turns
// keyboard scancodes and mouse events back into the ANSI byte sequences
// a shell expects.
//
// The engine is single-owner: Process, Flush, HandleKeyboard and
// HandleMouse all run to completion without suspension and must not be
// called concurrently. Callers sharing an Engine across goroutines wrap
// it in their own mutex.
package vtcore
