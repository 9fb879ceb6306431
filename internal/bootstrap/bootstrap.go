// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package bootstrap prepares the debate bot's runtime environment and
// starts it.
//
// The bot lives in a project tree with a fixed relative layout:
//
//	.env              configuration and secrets, required
//	requirements.txt  dependency manifest
//	venv/             virtual environment, created on first run
//	logs/             created if absent
//	data/debates/     created if absent
//	src/main.py       bot entrypoint, run from src/
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
	"strconv"

	"go.astrophena.name/botstrap/internal/envfile"
	"go.astrophena.name/botstrap/internal/filelock"
	"go.astrophena.name/botstrap/internal/logger"
)

// Fixed paths, relative to the project root.
const (
	envFile      = ".env"
	requirements = "requirements.txt"
	venvDir      = "venv"
	logsDir      = "logs"
	debatesDir   = "data/debates"
	srcDir       = "src"
	entrypoint   = "main.py"
	lockFile     = ".botstrap.lock"
)

// requiredEnvKeys are the .env keys the bot refuses to start without.
var requiredEnvKeys = []string{"TELEGRAM_BOT_TOKEN", "OPENROUTER_API_KEY"}

var (
	// ErrNoEnvFile indicates the .env configuration file is missing.
	ErrNoEnvFile = errors.New("missing .env file")
	// ErrNoEntrypoint indicates src/main.py is missing.
	ErrNoEntrypoint = errors.New("missing bot entrypoint")
)

// Launcher prepares the bot's environment and hands control off to it.
// All fields are optional except Root.
type Launcher struct {
	Root        string      // project root
	Python      string      // interpreter used to create the venv; defaults to python3
	SkipInstall bool        // don't install dependencies into a freshly created venv
	Logf        logger.Logf // status messages; nil discards them

	Stdin  io.Reader // wired to the bot process
	Stdout io.Writer // wired to the bot process and pip
	Stderr io.Writer // wired to the bot process and pip

	// exec runs a prepared command. Overridden in tests.
	exec func(*exec.Cmd) error
}

// Run performs the bootstrap sequence: lock the project tree, verify
// configuration, ensure the virtual environment and data directories exist,
// then start the bot. It returns when the bot exits; the bot's own exit
// status is returned as an [exec.ExitError].
func (l *Launcher) Run(ctx context.Context) error {
	root, err := filepath.Abs(l.Root)
	if err != nil {
		return err
	}

	lock, err := filelock.Acquire(filepath.Join(root, lockFile), strconv.Itoa(os.Getpid())+"\n")
	if err != nil {
		if errors.Is(err, filelock.ErrAlreadyLocked) {
			return fmt.Errorf("%w: another launcher is running in %s", err, root)
		}
		return err
	}
	defer lock.Release()

	if err := l.checkEnvFile(root); err != nil {
		return err
	}
	if err := l.ensureVenv(ctx, root); err != nil {
		return err
	}
	if err := ensureDirs(root); err != nil {
		return err
	}
	return l.launch(ctx, root)
}

// checkEnvFile verifies that .env exists and carries the keys the bot
// requires. A missing file is the only guided failure: the user gets told
// what to create.
func (l *Launcher) checkEnvFile(root string) error {
	path := filepath.Join(root, envFile)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		l.logf("%s not found.", path)
		l.logf("Create it with the bot's credentials:")
		l.logf("")
		l.logf("	TELEGRAM_BOT_TOKEN=<token from @BotFather>")
		l.logf("	OPENROUTER_API_KEY=<key from openrouter.ai>")
		return fmt.Errorf("%w: %s", ErrNoEnvFile, path)
	} else if err != nil {
		return err
	}

	if _, err := envfile.Load(path, requiredEnvKeys...); err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	return nil
}

// ensureDirs idempotently creates the directories the bot writes to.
func ensureDirs(root string) error {
	for _, dir := range []string{logsDir, debatesDir} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return err
		}
	}
	return nil
}

// launch starts the bot from the src directory using the virtual
// environment's interpreter.
func (l *Launcher) launch(ctx context.Context, root string) error {
	main := filepath.Join(root, srcDir, entrypoint)
	if _, err := os.Stat(main); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNoEntrypoint, main)
	} else if err != nil {
		return err
	}

	l.logf("Starting bot.")
	cmd := exec.CommandContext(ctx, venvBin(root, "python"), entrypoint)
	cmd.Dir = filepath.Join(root, srcDir)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	return l.runCmd(cmd)
}

func (l *Launcher) runCmd(cmd *exec.Cmd) error {
	if l.exec != nil {
		return l.exec(cmd)
	}
	return cmd.Run()
}

func (l *Launcher) logf(format string, args ...any) {
	if l.Logf != nil {
		l.Logf(format, args...)
	}
}
