package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that accepts both "-x" and "-x=path".
// With a path, it writes to that file.
// Without one, it writes to a fallback writer supplied by the caller.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the path stored in the switch,
// "-" if the flag was passed without a value,
// or an empty string if it wasn't passed.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the same value as Get.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag marks this as a flag
// that doesn't require a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
func (fs *FileSwitch) Set(v string) error {
	if v == "true" {
		v = "-"
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag was set with any value.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination of this flag for writing.
// The caller must close the returned writer.
//
//   - the flag wasn't passed in: writes are discarded
//   - the flag was passed without a value: writes go to fallback,
//     which is not closed
//   - the flag was passed with a value: the file is created
func (fs *FileSwitch) Create(fallback io.Writer) (io.WriteCloser, error) {
	switch *fs {
	case "":
		return nopCloser{io.Discard}, nil
	case "-":
		return nopCloser{fallback}, nil
	default:
		f, err := os.Create(string(*fs))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return f, nil
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
