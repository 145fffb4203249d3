package toml

import (
	"os"

	"github.com/pkg/errors"
)

// ParseFile opens path, parses it as TOML, and closes the file on every
// return path. Every failure is wrapped with the file path via
// github.com/pkg/errors.Wrapf, so callers printing the error always see
// which file was at fault. An open failure keeps the underlying os error
// as its cause and is not converted to a *ParseError; a parse failure
// keeps its *ParseError as the cause, still reachable with errors.As.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	root, err := Parse(f)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return nil, errors.Wrapf(err, "parsing %s", path)
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return root, nil
}
