// Package fsutil holds small filesystem helpers shared by tomlctl's
// subcommands.
package fsutil

import "os"

// Exists reports whether path names an existing file or directory,
// distinguishing "does not exist" from other stat failures (permission
// errors, bad paths on a mounted volume, and so on) so callers can give
// a clearer error than a bare ParseFile failure would.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
