// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger defines a type for writing to logs and a thread-safe
// io.Writer that keeps the last lines written to it in a ring buffer,
// useful for reporting the tail of a subprocess's output on failure.
package logger

import (
	"container/ring"
	"strings"
	"sync"
)

// Logf is the basic logger type: a printf-like func. Like [log.Printf], the
// format need not end in a newline. Logf functions must be safe for concurrent
// use.
type Logf func(format string, args ...any)

// Write implements the [io.Writer] interface.
func (f Logf) Write(p []byte) (n int, err error) {
	f("%s", p)
	return len(p), nil
}

// Tail is an io.Writer that retains the last lines written to it.
type Tail struct {
	mu        sync.Mutex
	r         *ring.Ring
	remainder string
}

// NewTail returns a new Tail that retains up to size lines.
func NewTail(size int) *Tail {
	return &Tail{r: ring.New(size)}
}

// Write implements the [io.Writer] interface. Partial lines are buffered
// until a newline arrives.
func (t *Tail) Write(b []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	text := t.remainder + string(b)
	for {
		idx := strings.Index(text, "\n")
		if idx == -1 {
			break
		}
		t.r.Value = text[:idx]
		t.r = t.r.Next()
		text = text[idx+1:]
	}
	t.remainder = text
	return len(b), nil
}

// Lines returns the retained lines, oldest first. A trailing partial line
// is included.
func (t *Tail) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := make([]string, 0, t.r.Len()+1)
	t.r.Do(func(x any) {
		if x != nil {
			lines = append(lines, x.(string))
		}
	})
	if t.remainder != "" {
		lines = append(lines, t.remainder)
	}
	return lines
}

// String returns the retained lines joined with newlines.
func (t *Tail) String() string {
	return strings.Join(t.Lines(), "\n")
}
