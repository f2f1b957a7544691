// Package flagvalue provides flag.Value implementations.
package flagvalue

import (
	"flag"
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// Getter is a constraint satisfied by pointers to types
// which implement flag.Getter.
type Getter[T any] interface {
	*T
	flag.Getter
}

// List is a flag.Getter that may be passed any number of times,
// collecting one value of T for each occurrence.
type List[T any, PT Getter[T]] []T

// ListOf accepts zero or more instances of a flag into a slice.
//
//	flag.Var(flagvalue.ListOf(&categories), "lookup", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values recorded so far
// as a slice of the underlying type.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String returns a semicolon separated list of the values in this list.
func (lv *List[T, PT]) String() string {
	items := make([]string, len(*lv))
	for i, v := range *lv {
		items[i] = fmt.Sprint(v)
	}
	return strings.Join(items, "; ")
}

// Set parses a single occurrence of the flag
// and appends it to the list.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
