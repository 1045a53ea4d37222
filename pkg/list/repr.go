package list

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents the value. If indent is at least
	// 0, the value is pretty-printed with the current indentation level of
	// indent; the indentation of the first line has already been written.
	Repr(indent int) string
}

// String returns the elements of the list separated by spaces and enclosed
// in brackets, like [1 2 3].
func (l List[T]) String() string {
	return l.Repr(-1)
}

// Repr returns the representation of the list. With a negative indent it is
// the same as String; otherwise each element is written on its own line.
// Elements implementing Reprer are pretty-printed recursively. Strings are
// quoted unless they are non-empty and consist only of printable,
// non-space characters other than brackets and quotes.
func (l List[T]) Repr(indent int) string {
	b := reprBuilder{indent: indent}
	for it := l.Iterator(); it.HasElem(); it.Next() {
		b.writeElem(reprElem(it.Elem(), indent))
	}
	return b.String()
}

func reprElem(v any, indent int) string {
	if r, ok := v.(Reprer); ok {
		if indent < 0 {
			return r.Repr(indent)
		}
		return r.Repr(indent + 1)
	}
	if s, ok := v.(string); ok {
		return quote(s)
	}
	return fmt.Sprint(v)
}

func quote(s string) string {
	if s == "" || strings.IndexFunc(s, needsQuote) != -1 {
		return strconv.Quote(s)
	}
	return s
}

func needsQuote(r rune) bool {
	switch r {
	case '[', ']', '"', '\'':
		return true
	}
	return unicode.IsSpace(r) || !unicode.IsPrint(r)
}

type reprBuilder struct {
	indent int
	n      int
	buf    bytes.Buffer
}

func (b *reprBuilder) writeElem(v string) {
	if b.n == 0 {
		b.buf.WriteByte('[')
	}
	if b.indent >= 0 {
		b.buf.WriteByte('\n')
		b.buf.WriteString(strings.Repeat(" ", 2*(b.indent+1)))
	} else if b.n > 0 {
		b.buf.WriteByte(' ')
	}
	b.buf.WriteString(v)
	b.n++
}

func (b *reprBuilder) String() string {
	if b.n == 0 {
		return "[]"
	}
	if b.indent >= 0 {
		b.buf.WriteByte('\n')
		b.buf.WriteString(strings.Repeat(" ", 2*b.indent))
	}
	b.buf.WriteByte(']')
	return b.buf.String()
}
