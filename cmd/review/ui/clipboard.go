package ui

import (
	"quickreview/internal/wizard"

	"github.com/atotto/clipboard"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// systemClipboard writes through the OS clipboard.
var systemClipboard = wizard.ClipboardFunc(func(text string) error {
	return clipboardWriteAll(text)
})
