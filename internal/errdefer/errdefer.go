// Package errdefer runs cleanup that may fail
// from a defer statement,
// reporting the failure through the function's named error result.
package errdefer

import (
	"errors"
	"io"
)

// Close closes closer and joins its error, if any, into *err.
//
//	func write(path string) (err error) {
//		f, err := os.Create(path)
//		if err != nil {
//			return err
//		}
//		defer errdefer.Close(&err, f)
//		...
//	}
func Close(err *error, closer io.Closer) {
	*err = errors.Join(*err, closer.Close())
}
