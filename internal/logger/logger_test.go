// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"fmt"
	"io"
	"testing"

	"go.astrophena.name/botstrap/internal/testutil"
)

func TestLogfWriter(t *testing.T) {
	t.Parallel()

	var message string
	logf := func(format string, args ...any) {
		message = fmt.Sprintf(format, args...)
	}
	io.WriteString(Logf(logf), "hello")
	testutil.AssertEqual(t, message, "hello")
}

func TestTail(t *testing.T) {
	t.Parallel()

	tl := NewTail(3)
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(tl, "line %d\n", i)
	}

	testutil.AssertEqual(t, tl.Lines(), []string{"line 3", "line 4", "line 5"})
}

func TestTailPartialLines(t *testing.T) {
	t.Parallel()

	tl := NewTail(4)
	io.WriteString(tl, "first ")
	io.WriteString(tl, "line\nsec")
	io.WriteString(tl, "ond line\ntrailing")

	testutil.AssertEqual(t, tl.Lines(), []string{"first line", "second line", "trailing"})
	testutil.AssertEqual(t, tl.String(), "first line\nsecond line\ntrailing")
}

func TestTailEmpty(t *testing.T) {
	t.Parallel()

	tl := NewTail(3)
	testutil.AssertEqual(t, len(tl.Lines()), 0)
}
