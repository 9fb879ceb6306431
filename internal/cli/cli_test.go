// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.astrophena.name/botstrap/internal/testutil"
)

func testEnv(args []string) (*Env, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Env{
		Args:   args,
		Getenv: func(string) string { return "" },
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv([]string{"-version"})
	err := Run(context.Background(), AppFunc(func(context.Context, *Env) error {
		t.Fatal("app must not run when -version is passed")
		return nil
	}), env)
	if !errors.Is(err, ErrExitVersion) {
		t.Fatalf("want %v, got %v", ErrExitVersion, err)
	}
	if stderr.Len() == 0 {
		t.Error("version must be printed to stderr")
	}
}

func TestRunPassesArgs(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv([]string{"foo", "bar"})
	var got []string
	err := Run(context.Background(), AppFunc(func(_ context.Context, env *Env) error {
		got = env.Args
		return nil
	}), env)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, []string{"foo", "bar"})
}

func TestRunFlagParseErrorUnprintable(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv([]string{"-nonexistent"})
	err := Run(context.Background(), AppFunc(func(context.Context, *Env) error {
		return nil
	}), env)
	if err == nil {
		t.Fatal("want error for unknown flag")
	}
	if isPrintableError(err) {
		t.Errorf("flag parse error must be unprintable, got %v", err)
	}
}

func TestLogfWritesToStderr(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(nil)
	env.Logf("hello, %s", "world")
	if !strings.Contains(stderr.String(), "hello, world") {
		t.Errorf("stderr must contain logged message, got %q", stderr.String())
	}
}

func TestParseDocComment(t *testing.T) {
	// Not parallel: mutates the package-level doc comment source.
	SetDocComment([]byte(`/*
Amazinator does amazing things.
*/
package main
`))
	t.Cleanup(func() { SetDocComment(nil) })

	testutil.AssertEqual(t, parseDocComment(), "Amazinator does amazing things.\n")
}
