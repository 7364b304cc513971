// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package output

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := Writer{W: &buf}
	require.NoError(t, w.Deliver("", "secret"))
	require.NoError(t, w.Deliver("pin", "1234"))
	assert.Equal(t, "secret\npin: 1234\n", buf.String())
}

type fakeBoard struct {
	content string
	writes  []string
	fail    bool
}

func (f *fakeBoard) clip(notify *bytes.Buffer, clear time.Duration) *Clipboard {
	return &Clipboard{
		Clear:  clear,
		Notify: notify,
		write: func(s string) error {
			if f.fail {
				return errors.New("no display")
			}
			f.content = s
			f.writes = append(f.writes, s)
			return nil
		},
		read:  func() (string, error) { return f.content, nil },
		sleep: func(time.Duration) {},
	}
}

func TestClipboardDeliver(t *testing.T) {
	board := &fakeBoard{}
	var notify bytes.Buffer
	c := board.clip(&notify, 0)

	require.NoError(t, c.Deliver("passcode", "hunter2"))
	assert.Equal(t, "hunter2", board.content)
	assert.Equal(t, "passcode copied to clipboard\n", notify.String())
	assert.NotContains(t, notify.String(), "hunter2")
}

func TestClipboardClears(t *testing.T) {
	board := &fakeBoard{}
	c := board.clip(&bytes.Buffer{}, time.Second)
	require.NoError(t, c.Deliver("", "hunter2"))
	assert.Equal(t, []string{"hunter2", ""}, board.writes)
	assert.Equal(t, "", board.content)
}

func TestClipboardError(t *testing.T) {
	board := &fakeBoard{fail: true}
	err := board.clip(nil, 0).Deliver("", "x")
	assert.ErrorContains(t, err, "no display")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	s, err := New("", &buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "stdout", s.Name())

	s, err = New("clipboard", &buf, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "clipboard", s.Name())

	_, err = New("clipbaord", &buf, 0)
	assert.ErrorContains(t, err, `did you mean "clipboard"`)
}
