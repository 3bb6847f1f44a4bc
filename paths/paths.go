// This file is part of es40storage.
//
// es40storage is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// es40storage is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with es40storage.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// the name of the portable resource directory
const portableBase = ".es40storage"

// the name of the resource directory in the user's config directory
const configBase = "es40storage"

// ResourcePath returns the resource path prepended with the base path. The
// directories leading to the resource are created if necessary. The resource
// itself is not touched.
func ResourcePath(resource ...string) (string, error) {
	b, err := basePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(append([]string{b}, resource...)...)

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(portableBase); err == nil && fi.IsDir() {
		return portableBase, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configBase), nil
}
