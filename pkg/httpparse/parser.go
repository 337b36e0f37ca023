package httpparse

import (
	"errors"
)

var (
	ErrToken          = errors.New("invalid token")
	ErrTarget         = errors.New("invalid request target")
	ErrVersion        = errors.New("invalid HTTP version")
	ErrNewLine        = errors.New("invalid new line")
	ErrHeaderName     = errors.New("invalid header name")
	ErrHeaderValue    = errors.New("invalid header value")
	ErrTooManyHeaders = errors.New("too many headers")
)

// Status tells whether a buffer holds a whole request head.
type Status struct {
	complete bool
	length   int
}

func Partial() Status { return Status{} }

func Complete(n int) Status { return Status{complete: true, length: n} }

func (s Status) IsComplete() bool { return s.complete }

func (s Status) IsPartial() bool { return !s.complete }

// Len is the length of the request head, empty line included. It is zero for
// a partial status.
func (s Status) Len() int { return s.length }

type Header struct {
	Name  string
	Value string
}

// Request is the parsed request head. Fields are only valid after a
// complete parse.
type Request struct {
	Method  string
	Target  string
	Version int
	Headers []Header
}

// Parse checks whether buf starts with a complete HTTP/1.x request head.
// A truncated head is reported as Partial, never as an error. The head may
// carry at most maxHeaders header fields.
func Parse(buf []byte, maxHeaders int) (Status, error) {
	var req Request
	return req.Parse(buf, maxHeaders)
}

func (r *Request) Parse(buf []byte, maxHeaders int) (Status, error) {
	b := &bytesCursor{buf: buf}

	if !skipEmptyLines(b) {
		return Partial(), nil
	}

	method, ok, err := parseToken(b)
	if err != nil || !ok {
		return Partial(), err
	}

	target, ok, err := parseTarget(b)
	if err != nil || !ok {
		return Partial(), err
	}

	version, ok, err := parseVersion(b)
	if err != nil || !ok {
		return Partial(), err
	}

	ok, err = parseNewLine(b)
	if err != nil || !ok {
		return Partial(), err
	}

	headers, ok, err := parseHeaders(b, maxHeaders)
	if err != nil || !ok {
		return Partial(), err
	}

	r.Method = method
	r.Target = target
	r.Version = version
	r.Headers = headers

	return Complete(b.pos), nil
}

type bytesCursor struct {
	buf []byte
	pos int
}

func (b *bytesCursor) peek() (byte, bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	return b.buf[b.pos], true
}

func (b *bytesCursor) next() (byte, bool) {
	c, ok := b.peek()
	if ok {
		b.pos++
	}
	return c, ok
}

// skipEmptyLines drops CRLF or LF lines preceding the request line.
// It returns false when the buffer runs out.
func skipEmptyLines(b *bytesCursor) bool {
	for {
		c, ok := b.peek()
		if !ok {
			return false
		}
		switch c {
		case '\n':
			b.pos++
		case '\r':
			if b.pos+1 >= len(b.buf) {
				return false
			}
			if b.buf[b.pos+1] != '\n' {
				return true
			}
			b.pos += 2
		default:
			return true
		}
	}
}

// parseToken reads a method token followed by a single space.
func parseToken(b *bytesCursor) (string, bool, error) {
	start := b.pos
	for {
		c, ok := b.next()
		if !ok {
			return "", false, nil
		}
		if c == ' ' {
			if b.pos-1 == start {
				return "", false, ErrToken
			}
			return string(b.buf[start : b.pos-1]), true, nil
		}
		if !isToken(c) {
			return "", false, ErrToken
		}
	}
}

// parseTarget reads a request target followed by a single space.
func parseTarget(b *bytesCursor) (string, bool, error) {
	start := b.pos
	for {
		c, ok := b.next()
		if !ok {
			return "", false, nil
		}
		if c == ' ' {
			if b.pos-1 == start {
				return "", false, ErrTarget
			}
			return string(b.buf[start : b.pos-1]), true, nil
		}
		if !isTargetChar(c) {
			return "", false, ErrTarget
		}
	}
}

const versionPrefix = "HTTP/1."

// parseVersion reads "HTTP/1.x" and returns x.
func parseVersion(b *bytesCursor) (int, bool, error) {
	for i := 0; i < len(versionPrefix); i++ {
		c, ok := b.next()
		if !ok {
			return 0, false, nil
		}
		if c != versionPrefix[i] {
			return 0, false, ErrVersion
		}
	}
	c, ok := b.next()
	if !ok {
		return 0, false, nil
	}
	if c != '0' && c != '1' {
		return 0, false, ErrVersion
	}
	return int(c - '0'), true, nil
}

// parseNewLine accepts CRLF or a bare LF.
func parseNewLine(b *bytesCursor) (bool, error) {
	c, ok := b.next()
	if !ok {
		return false, nil
	}
	switch c {
	case '\n':
		return true, nil
	case '\r':
		c, ok = b.next()
		if !ok {
			return false, nil
		}
		if c != '\n' {
			return false, ErrNewLine
		}
		return true, nil
	default:
		return false, ErrNewLine
	}
}

func parseHeaders(b *bytesCursor, maxHeaders int) ([]Header, bool, error) {
	var headers []Header
	for {
		c, ok := b.peek()
		if !ok {
			return nil, false, nil
		}

		// empty line ends the head
		if c == '\r' || c == '\n' {
			ok, err := parseNewLine(b)
			if err != nil || !ok {
				return nil, false, err
			}
			return headers, true, nil
		}

		if len(headers) == maxHeaders {
			return nil, false, ErrTooManyHeaders
		}

		name, ok, err := parseHeaderName(b)
		if err != nil || !ok {
			return nil, false, err
		}
		value, ok, err := parseHeaderValue(b)
		if err != nil || !ok {
			return nil, false, err
		}
		headers = append(headers, Header{Name: name, Value: value})
	}
}

func parseHeaderName(b *bytesCursor) (string, bool, error) {
	start := b.pos
	for {
		c, ok := b.next()
		if !ok {
			return "", false, nil
		}
		if c == ':' {
			if b.pos-1 == start {
				return "", false, ErrHeaderName
			}
			return string(b.buf[start : b.pos-1]), true, nil
		}
		if !isToken(c) {
			return "", false, ErrHeaderName
		}
	}
}

// parseHeaderValue reads the field value up to and including the line end.
// Surrounding whitespace is trimmed.
func parseHeaderValue(b *bytesCursor) (string, bool, error) {
	for {
		c, ok := b.peek()
		if !ok {
			return "", false, nil
		}
		if c != ' ' && c != '\t' {
			break
		}
		b.pos++
	}

	start := b.pos
	for {
		c, ok := b.peek()
		if !ok {
			return "", false, nil
		}
		if c == '\r' || c == '\n' {
			end := b.pos
			ok, err := parseNewLine(b)
			if err != nil || !ok {
				return "", false, err
			}
			for end > start && (b.buf[end-1] == ' ' || b.buf[end-1] == '\t') {
				end--
			}
			return string(b.buf[start:end]), true, nil
		}
		if !isValueChar(c) {
			return "", false, ErrHeaderValue
		}
		b.pos++
	}
}

// isToken reports whether c is a tchar (RFC 9110).
func isToken(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// isTargetChar accepts visible ASCII and obs-text.
func isTargetChar(c byte) bool {
	return c > 0x20 && c != 0x7f
}

func isValueChar(c byte) bool {
	return c == '\t' || (c >= 0x20 && c != 0x7f)
}
