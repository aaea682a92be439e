// Package hostclip implements vtcore.ClipboardHandler over the host's
// system clipboard via github.com/atotto/clipboard, backing OSC 52
// requests from applications running inside the terminal.
package hostclip

import (
	"github.com/atotto/clipboard"

	"github.com/kernelterm/vtcore"
)

// System is a vtcore.ClipboardHandler backed by the OS clipboard.
type System struct{}

func (System) ClipboardRead() (string, error)       { return clipboard.ReadAll() }
func (System) ClipboardWrite(data string) error { return clipboard.WriteAll(data) }

var _ vtcore.ClipboardHandler = System{}
