// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package output delivers a generated value to the user. Sinks are a closed
// set selected by name from configuration.
package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/atotto/clipboard"

	"github.com/KenKundert/avendesora-sub000/internal/logging"
	"github.com/KenKundert/avendesora-sub000/internal/suggest"
)

// Sink receives one value.
type Sink interface {
	Name() string
	Deliver(label, value string) error
}

// Writer prints values as "value\n", or "label: value\n" when a label is
// given.
type Writer struct {
	W io.Writer
}

func (w Writer) Name() string { return "stdout" }

func (w Writer) Deliver(label, value string) error {
	if label != "" {
		_, err := fmt.Fprintf(w.W, "%s: %s\n", label, value)
		return err
	}
	_, err := fmt.Fprintln(w.W, value)
	return err
}

// Clipboard copies values to the system clipboard. When Clear is positive
// the clipboard is emptied again after that long, provided it still holds
// the value.
type Clipboard struct {
	Clear time.Duration
	// Notify, if set, receives a short confirmation that is safe to print.
	Notify io.Writer

	system bool
	write  func(string) error
	read   func() (string, error)
	sleep  func(time.Duration)
}

// NewClipboard returns a Clipboard backed by the system clipboard.
func NewClipboard(clear time.Duration, notify io.Writer) *Clipboard {
	return &Clipboard{
		Clear:  clear,
		Notify: notify,
		system: true,
		write:  clipboard.WriteAll,
		read:   clipboard.ReadAll,
		sleep:  time.Sleep,
	}
}

func (c *Clipboard) Name() string { return "clipboard" }

func (c *Clipboard) Deliver(label, value string) error {
	if c.system && clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available on this system")
	}
	if err := c.write(value); err != nil {
		return fmt.Errorf("could not copy to clipboard: %w", err)
	}
	if c.Notify != nil {
		what := "value"
		if label != "" {
			what = label
		}
		fmt.Fprintf(c.Notify, "%s copied to clipboard\n", what)
	}
	if c.Clear > 0 {
		c.sleep(c.Clear)
		if current, err := c.read(); err == nil && current == value {
			if err := c.write(""); err != nil {
				logging.Warnf("could not clear clipboard: %v", err)
			}
		}
	}
	return nil
}

// Names lists the sinks New accepts.
func Names() []string {
	out := []string{"clipboard", "stdout"}
	sort.Strings(out)
	return out
}

// New selects a sink by name.
func New(name string, stdout io.Writer, clear time.Duration) (Sink, error) {
	switch name {
	case "", "stdout":
		return Writer{W: stdout}, nil
	case "clipboard":
		return NewClipboard(clear, stdout), nil
	default:
		return nil, fmt.Errorf("unknown output %q%s", name, suggest.Hint(name, Names()))
	}
}
