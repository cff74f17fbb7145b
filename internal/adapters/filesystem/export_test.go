package filesystem

import "io"

// SetWriteContent replaces the content writer used by Create until the
// returned function is called.
func SetWriteContent(fn func(io.WriteCloser, []byte) error) (restore func()) {
	prev := writeContent
	writeContent = fn
	return func() { writeContent = prev }
}
