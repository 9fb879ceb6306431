// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package envflag provides a wrapper around the standard flag package,
// allowing flags to be overridden by environment variables.
package envflag

import (
	"flag"
	"strconv"
)

// StringVar sets up a string flag bound to p with the given name, default
// value and usage information. If the environment variable envName is set,
// its value overrides the flag's default.
func StringVar(fs *flag.FlagSet, getenv func(string) string, p *string, name, envName, value, usage string) {
	if env := getenv(envName); env != "" {
		value = env
	}
	fs.StringVar(p, name, value, usage+" Can be overridden by "+envName+" environment variable.")
}

// BoolVar sets up a boolean flag bound to p with the given name, default
// value and usage information. If the environment variable envName is set
// to a value strconv.ParseBool understands, it overrides the flag's
// default.
func BoolVar(fs *flag.FlagSet, getenv func(string) string, p *bool, name, envName string, value bool, usage string) {
	if env := getenv(envName); env != "" {
		if parsed, err := strconv.ParseBool(env); err == nil {
			value = parsed
		}
	}
	fs.BoolVar(p, name, value, usage+" Can be overridden by "+envName+" environment variable.")
}
