// Package handler serves one HTTP request per connection from a root
// directory.
//
// Every connection gets at most one response and is then closed. Requests
// for anything other than a regular file inside the root, including paths
// that escape it, are answered with 404 so a client cannot tell a forbidden
// path from a missing one. Methods other than GET get 405.
package handler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/f4ah6o/webserver/internal/logger"
	"github.com/f4ah6o/webserver/internal/mime"
	"github.com/f4ah6o/webserver/internal/pathguard"
	"github.com/f4ah6o/webserver/internal/request"
	"github.com/f4ah6o/webserver/internal/response"
)

// IndexFile is served when the request target is "/".
const IndexFile = "/index.html"

// ErrNotRegular is returned by Resolve for directories and special files.
var ErrNotRegular = errors.New("not a regular file")

// Handler holds the read-only settings shared by all connections.
type Handler struct {
	// Root is the directory files are served from. It may be relative.
	Root string
	// Verbose echoes every raw request to Log.
	Verbose bool
	// ReadTimeout bounds the wait for request bytes. Zero waits forever.
	ReadTimeout time.Duration
	// Log receives the verbose echo and write failures. Nil discards them.
	Log *logger.Logger
}

// ResolvedFile is a request target mapped onto the filesystem.
type ResolvedFile struct {
	// Path is the canonical path inside the root.
	Path        string
	ContentType string
	Size        int64
	Regular     bool
}

type readDeadliner interface {
	SetReadDeadline(t time.Time) error
}

// Handle reads one request from conn, writes one response and closes conn.
// If the peer sends nothing, conn is closed without a response.
func (h *Handler) Handle(conn io.ReadWriteCloser) {
	defer conn.Close()

	log := h.Log
	if log == nil {
		log = logger.Discard()
	}

	if d, ok := conn.(readDeadliner); ok && h.ReadTimeout > 0 {
		if err := d.SetReadDeadline(time.Now().Add(h.ReadTimeout)); err != nil {
			log.Warn("set read deadline: %v", err)
		}
	}

	req, err := request.FromReader(conn, request.MaxSize)
	if err != nil {
		return
	}

	if h.Verbose {
		log.Request(req.Raw)
	}

	if _, err := h.Respond(req).WriteTo(conn); err != nil {
		log.Warn("write response: %v", err)
	}
}

// Respond builds the response for req.
func (h *Handler) Respond(req *request.Request) *response.Response {
	if req.RequestLine.Method != "GET" {
		return response.Empty(response.StatusMethodNotAllowed)
	}

	f, err := h.Resolve(req.RequestLine.RequestTarget)
	if err != nil {
		return response.Empty(response.StatusNotFound)
	}

	body, err := readFile(f.Path)
	if err != nil {
		return response.Empty(response.StatusNotFound)
	}
	return response.Content(f.ContentType, body)
}

// Resolve maps a request target to a regular file inside the root.
//
// The target is appended to the root as is; it is not URL-decoded and a
// query string is treated as part of the file name. The content type is
// derived from that composed path, so a symlink keeps the type its own name
// implies.
func (h *Handler) Resolve(target string) (*ResolvedFile, error) {
	if target == "/" {
		target = IndexFile
	}
	candidate := h.Root + target

	path, err := pathguard.Resolve(h.Root, candidate)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	return &ResolvedFile{
		Path:        path,
		ContentType: mime.ContentType(candidate),
		Size:        info.Size(),
		Regular:     true,
	}, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
