package templates

import (
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter keeps the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// printf writes trusted markup; string arguments must already be escaped.
func (h *htmlWriter) printf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
