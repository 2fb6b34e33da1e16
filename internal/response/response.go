// Package response builds and serializes HTTP/1.1 responses.
package response

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// StatusCode represents an HTTP status code
type StatusCode int

// HTTP status codes the server produces
const (
	StatusOK               StatusCode = 200
	StatusNotFound         StatusCode = 404
	StatusMethodNotAllowed StatusCode = 405
)

// Text returns the reason phrase for the status code, or "" if unknown.
func (c StatusCode) Text() string {
	switch c {
	case StatusOK:
		return "OK"
	case StatusNotFound:
		return "Not Found"
	case StatusMethodNotAllowed:
		return "Method Not Allowed"
	default:
		return ""
	}
}

// Header is a single header field.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered list of header fields. Fields are written in the
// order they were added.
type Headers []Header

// Set replaces the value of the first field named name, or appends a new
// field if there is none.
func (h *Headers) Set(name, value string) {
	for i := range *h {
		if (*h)[i].Name == name {
			(*h)[i].Value = value
			return
		}
	}
	*h = append(*h, Header{Name: name, Value: value})
}

// Get returns the value of the first field named name.
func (h Headers) Get(name string) (string, bool) {
	for _, f := range h {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Response is a complete response, serialized at once by WriteTo.
type Response struct {
	Status  StatusCode
	Headers Headers
	Body    []byte
}

// Empty returns a bodiless response that closes the connection.
func Empty(status StatusCode) *Response {
	return &Response{
		Status:  status,
		Headers: Headers{{Name: "Connection", Value: "close"}},
	}
}

// Content returns a 200 response carrying body with the given content type.
func Content(contentType string, body []byte) *Response {
	return &Response{
		Status: StatusOK,
		Headers: Headers{
			{Name: "Content-Type", Value: contentType},
			{Name: "Content-Length", Value: strconv.Itoa(len(body))},
			{Name: "Connection", Value: "close"},
		},
		Body: body,
	}
}

// WriteTo writes the status line, headers and body to w in a single Write.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	bw := NewWriter(&buf)
	if err := bw.WriteStatusLine(r.Status); err != nil {
		return 0, err
	}
	if err := bw.WriteHeaders(r.Headers); err != nil {
		return 0, err
	}
	if _, err := bw.WriteBody(r.Body); err != nil {
		return 0, err
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// WriteStatusLine writes the HTTP status line to the writer
func WriteStatusLine(w io.Writer, statusCode StatusCode) error {
	_, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n", int(statusCode), statusCode.Text())
	return err
}

// WriteHeaders writes HTTP headers to the writer
func WriteHeaders(w io.Writer, headers Headers) error {
	for _, h := range headers {
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", h.Name, h.Value); err != nil {
			return err
		}
	}

	// Empty line separates headers from body
	_, err := io.WriteString(w, "\r\n")
	return err
}

// writerState tracks the state of the response writer
type writerState int

const (
	stateStart writerState = iota
	stateStatusWritten
	stateHeadersWritten
	stateBodyWritten
)

// Writer writes the parts of a response in order: status line, headers,
// body. Writing them out of order is an error.
type Writer struct {
	writer io.Writer
	state  writerState
}

// NewWriter creates a new response writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: w,
		state:  stateStart,
	}
}

// WriteStatusLine writes the HTTP status line
func (w *Writer) WriteStatusLine(statusCode StatusCode) error {
	if w.state != stateStart {
		return fmt.Errorf("status line must be written first")
	}

	err := WriteStatusLine(w.writer, statusCode)
	if err == nil {
		w.state = stateStatusWritten
	}
	return err
}

// WriteHeaders writes the HTTP headers
func (w *Writer) WriteHeaders(headers Headers) error {
	if w.state != stateStatusWritten {
		return fmt.Errorf("headers must be written after status line and before body")
	}

	err := WriteHeaders(w.writer, headers)
	if err == nil {
		w.state = stateHeadersWritten
	}
	return err
}

// WriteBody writes the response body
func (w *Writer) WriteBody(p []byte) (int, error) {
	if w.state != stateHeadersWritten {
		return 0, fmt.Errorf("body must be written after headers")
	}

	n, err := w.writer.Write(p)
	if err == nil {
		w.state = stateBodyWritten
	}
	return n, err
}
