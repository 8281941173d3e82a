package util

import (
	"io"
	"os"

	"ignition/internal/errors"
)

// StdoutPath is the --output value that selects standard output.
const StdoutPath = "-"

// OpenOutput returns the sink for the operator's output event.  "-"
// selects stdout, which is never closed by the returned closer; any
// other value is created (or truncated) as a regular file.
func OpenOutput(path string) (io.WriteCloser, error) {
	switch path {
	case "":
		return nil, errors.ErrNoOutput
	case StdoutPath:
		return nopCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.WrapOutput("open", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
