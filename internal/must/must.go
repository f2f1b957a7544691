// Package must asserts program invariants,
// panicking if one is violated.
package must

import "fmt"

// NotErrorf panics if err is non-nil.
// The panic message includes the error
// and the printf-style description of what was being attempted.
func NotErrorf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Sprintf("unexpected error: %v\n%v", err, fmt.Sprintf(format, args...)))
	}
}
