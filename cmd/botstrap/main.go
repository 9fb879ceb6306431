// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.astrophena.name/botstrap/internal/bootstrap"
	"go.astrophena.name/botstrap/internal/cli"
	"go.astrophena.name/botstrap/internal/cli/envflag"
)

func main() { cli.Main(new(app)) }

type app struct {
	root        string
	python      string
	skipInstall bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	envflag.StringVar(fs, os.Getenv, &a.root, "root", "BOTSTRAP_ROOT", ".", "Bot project `root`.")
	envflag.StringVar(fs, os.Getenv, &a.python, "python", "PYTHON", "python3", "Python `interpreter` used to create the virtual environment.")
	envflag.BoolVar(fs, os.Getenv, &a.skipInstall, "skip-install", "BOTSTRAP_SKIP_INSTALL", false, "Don't install dependencies into a freshly created virtual environment.")
}

func (a *app) Run(ctx context.Context, env *cli.Env) error {
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: botstrap takes no arguments", cli.ErrInvalidArgs)
	}

	l := &bootstrap.Launcher{
		Root:        a.root,
		Python:      a.python,
		SkipInstall: a.skipInstall,
		Logf:        env.Logf,
		Stdin:       env.Stdin,
		Stdout:      env.Stdout,
		Stderr:      env.Stderr,
	}
	return l.Run(ctx)
}
