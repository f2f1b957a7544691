package styletable

import "strings"

// Category names a class of lexical element recognized by a tokenizer.
//
// Categories are dotted, lowercase names.
// A category with more segments is a specialization
// of the category obtained by dropping its last segment:
// "comment.preproc" specializes "comment".
type Category string

// Parent returns the category this category specializes,
// or an empty category for top-level categories.
//
//	Category("comment.preproc").Parent() // == "comment"
//	Category("comment").Parent()         // == ""
func (c Category) Parent() Category {
	if idx := strings.LastIndexByte(string(c), '.'); idx >= 0 {
		return c[:idx]
	}
	return ""
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}
