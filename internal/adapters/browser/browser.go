// Package browser opens the dashboard in the user's default web browser.
package browser

import (
	"io"

	"github.com/pkg/browser"
)

// Opener implements ports.Browser with github.com/pkg/browser.
type Opener struct {
	open func(url string) error
}

// NewOpener creates an Opener. The launcher's own output is discarded so it
// does not interleave with the log.
func NewOpener() *Opener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Opener{open: browser.OpenURL}
}

// Open launches url.
func (o *Opener) Open(url string) error {
	return o.open(url)
}
