// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package envfile loads and validates dotenv-style configuration files.
package envfile

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// MissingKeysError is returned by [Load] when required keys are absent or
// empty in the loaded file.
type MissingKeysError struct {
	Path string
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("%s: missing required keys: %s", e.Path, strings.Join(e.Keys, ", "))
}

// Load reads the dotenv file at path and verifies that all required keys
// are present and non-empty.
//
// If the file does not exist, the underlying error satisfies
// errors.Is(err, fs.ErrNotExist).
func Load(path string, required ...string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, key := range required {
		if vars[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingKeysError{Path: path, Keys: missing}
	}

	return vars, nil
}
