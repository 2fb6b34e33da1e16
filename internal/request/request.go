// Package request reads the request line of an HTTP/1.1 request from a
// connection.
//
// Only the first line is interpreted. Headers and any body that arrive in the
// same read are kept in Raw for the verbose echo and otherwise ignored.
package request

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// MaxSize is the largest number of bytes read from a connection.
const MaxSize = 4096

// ErrEmpty is returned when the peer sent no bytes at all.
var ErrEmpty = errors.New("empty request")

// RequestLine is the first line of an HTTP request.
type RequestLine struct {
	Method        string
	RequestTarget string
	HttpVersion   string
}

// Request is what was received on one connection.
type Request struct {
	RequestLine RequestLine
	// Raw holds every byte received, including headers.
	Raw []byte
}

// FromReader reads from r until a line feed has arrived, max bytes have been
// read, or r stops returning data, and parses the request line.
//
// A request line split across several TCP segments is therefore read whole.
// ErrEmpty is returned if nothing was read. Any other read error after some
// bytes arrived is not an error: the bytes received so far are parsed.
func FromReader(r io.Reader, max int) (*Request, error) {
	if max <= 0 {
		max = MaxSize
	}

	buf := make([]byte, max)
	n := 0
	var readErr error
	for n < max {
		m, err := r.Read(buf[n:])
		if m > 0 && bytes.IndexByte(buf[n:n+m], '\n') >= 0 {
			n += m
			break
		}
		n += m
		if err != nil {
			readErr = err
			break
		}
	}

	if n == 0 {
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrEmpty, readErr)
		}
		return nil, ErrEmpty
	}

	raw := buf[:n]
	return &Request{
		RequestLine: ParseRequestLine(string(raw)),
		Raw:         raw,
	}, nil
}

// ParseRequestLine splits the first line of text on whitespace into method,
// target and version. Fields that are absent are left empty; extra fields are
// ignored.
func ParseRequestLine(text string) RequestLine {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	fields := strings.Fields(text)

	var line RequestLine
	if len(fields) > 0 {
		line.Method = fields[0]
	}
	if len(fields) > 1 {
		line.RequestTarget = fields[1]
	}
	if len(fields) > 2 {
		line.HttpVersion = fields[2]
	}
	return line
}
