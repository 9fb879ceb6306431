// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Botstrap prepares the Telegram AI debate bot's environment and starts it.

It verifies that the .env configuration file exists and holds the bot's
credentials, creates the virtual environment and installs dependencies on
first run, creates the log and debate data directories, and then runs
src/main.py from the virtual environment, forwarding its exit status.

# Usage

	$ botstrap [flags...]

Run it from the bot's project root, or point it there with -root. A
missing .env is reported with guidance and exit code 1; a failed
dependency installation is fatal and never leaves a silently broken
environment behind. To reuse a freshly created environment without
network access, pass -skip-install.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/botstrap/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
