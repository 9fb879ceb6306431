// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"runtime"
	"strings"
	"testing"

	"go.astrophena.name/botstrap/internal/testutil"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	i := Version()
	testutil.AssertEqual(t, i.Go, runtime.Version())
	testutil.AssertEqual(t, i.OS, runtime.GOOS)
	testutil.AssertEqual(t, i.Arch, runtime.GOARCH)
	if i.Version == "" {
		t.Error("Version must not be empty")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	s := Version().String()
	if !strings.Contains(s, CmdName()) {
		t.Errorf("version string %q must contain command name %q", s, CmdName())
	}
	if !strings.Contains(s, runtime.Version()) {
		t.Errorf("version string %q must contain Go version %q", s, runtime.Version())
	}
}
