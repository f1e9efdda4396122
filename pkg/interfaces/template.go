package interfaces

import (
	"io"
)

// TemplateRenderer executes a named template against data. When out is
// supplied the result is streamed there and the returned string is empty.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}
