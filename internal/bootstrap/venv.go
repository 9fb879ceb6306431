// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.astrophena.name/botstrap/internal/logger"
)

// installTailLines is how many lines of pip output are kept for error
// reporting.
const installTailLines = 20

// InstallError reports a failed dependency installation. It carries the
// tail of the installer's output so the cause is visible even when the
// full output has scrolled away.
type InstallError struct {
	Err    error
	Output []string
}

func (e *InstallError) Error() string {
	s := "installing dependencies: " + e.Err.Error()
	if len(e.Output) > 0 {
		s += "\n" + strings.Join(e.Output, "\n")
	}
	return s
}

func (e *InstallError) Unwrap() error { return e.Err }

// ensureVenv makes sure the virtual environment exists. An existing venv
// is reused as is; a missing one is created and the dependency manifest is
// installed into it. A failed install is fatal: the bot must not start in
// a half-populated environment.
func (l *Launcher) ensureVenv(ctx context.Context, root string) error {
	dir := filepath.Join(root, venvDir)
	if _, err := os.Stat(dir); err == nil {
		l.logf("Using existing virtual environment in %s.", dir)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	python := l.Python
	if python == "" {
		python = "python3"
	}

	l.logf("Creating virtual environment in %s.", dir)
	cmd := exec.CommandContext(ctx, python, "-m", "venv", venvDir)
	cmd.Dir = root
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	if err := l.runCmd(cmd); err != nil {
		return fmt.Errorf("creating virtual environment: %w", err)
	}

	if l.SkipInstall {
		l.logf("Skipping dependency installation.")
		return nil
	}
	return l.installRequirements(ctx, root)
}

func (l *Launcher) installRequirements(ctx context.Context, root string) error {
	manifest := filepath.Join(root, requirements)
	if _, err := os.Stat(manifest); err != nil {
		return &InstallError{Err: err}
	}

	l.logf("Installing dependencies from %s.", manifest)
	tail := logger.NewTail(installTailLines)
	cmd := exec.CommandContext(ctx, venvBin(root, "pip"), "install", "-r", requirements)
	cmd.Dir = root
	cmd.Stdout = multiWriter(l.Stdout, tail)
	cmd.Stderr = multiWriter(l.Stderr, tail)
	if err := l.runCmd(cmd); err != nil {
		return &InstallError{Err: err, Output: tail.Lines()}
	}
	return nil
}

// venvBin returns the path of an executable inside the virtual
// environment.
func venvBin(root, name string) string {
	return filepath.Join(root, venvDir, "bin", name)
}

func multiWriter(w io.Writer, tail *logger.Tail) io.Writer {
	if w == nil {
		return tail
	}
	return io.MultiWriter(w, tail)
}
