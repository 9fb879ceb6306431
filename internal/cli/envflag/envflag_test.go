// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package envflag

import (
	"flag"
	"testing"

	"go.astrophena.name/botstrap/internal/testutil"
)

func getenvFunc(env map[string]string) func(string) string {
	return func(name string) string { return env[name] }
}

func TestStringVar(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		env  map[string]string
		args []string
		want string
	}{
		"default":            {want: "python3"},
		"env override":       {env: map[string]string{"PYTHON": "python3.12"}, want: "python3.12"},
		"flag wins over env": {env: map[string]string{"PYTHON": "python3.12"}, args: []string{"-python", "pypy"}, want: "pypy"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			var got string
			StringVar(fs, getenvFunc(tc.env), &got, "python", "PYTHON", "python3", "Python interpreter.")
			if err := fs.Parse(tc.args); err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestBoolVar(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		env  map[string]string
		args []string
		want bool
	}{
		"default":     {want: false},
		"env true":    {env: map[string]string{"SKIP": "true"}, want: true},
		"env garbage": {env: map[string]string{"SKIP": "banana"}, want: false},
		"flag":        {args: []string{"-skip"}, want: true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			var got bool
			BoolVar(fs, getenvFunc(tc.env), &got, "skip", "SKIP", false, "Skip something.")
			if err := fs.Parse(tc.args); err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestUsageMentionsEnvVar(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var s string
	StringVar(fs, getenvFunc(nil), &s, "python", "PYTHON", "python3", "Python interpreter.")
	f := fs.Lookup("python")
	if f == nil {
		t.Fatal("flag not registered")
	}
	testutil.AssertEqual(t, f.Usage, "Python interpreter. Can be overridden by PYTHON environment variable.")
}
