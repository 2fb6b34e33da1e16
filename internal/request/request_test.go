package request

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name string
		text string
		want RequestLine
	}{
		{
			name: "Full request",
			text: "GET /index.html HTTP/1.1\r\nHost: localhost\r\n\r\n",
			want: RequestLine{Method: "GET", RequestTarget: "/index.html", HttpVersion: "HTTP/1.1"},
		},
		{
			name: "Extra spaces and tabs",
			text: "  GET \t /a.txt   HTTP/1.0  \r\n",
			want: RequestLine{Method: "GET", RequestTarget: "/a.txt", HttpVersion: "HTTP/1.0"},
		},
		{
			name: "No line terminator",
			text: "POST /form HTTP/1.1",
			want: RequestLine{Method: "POST", RequestTarget: "/form", HttpVersion: "HTTP/1.1"},
		},
		{
			name: "Method only",
			text: "GET\r\n/index.html HTTP/1.1\r\n",
			want: RequestLine{Method: "GET"},
		},
		{
			name: "Blank line",
			text: "\r\n",
			want: RequestLine{},
		},
		{
			name: "Extra fields ignored",
			text: "GET / HTTP/1.1 trailing junk\n",
			want: RequestLine{Method: "GET", RequestTarget: "/", HttpVersion: "HTTP/1.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseRequestLine(tt.text); got != tt.want {
				t.Errorf("ParseRequestLine(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFromReader(t *testing.T) {
	const raw = "GET /docs/readme.txt HTTP/1.1\r\nHost: localhost\r\n\r\n"
	want := RequestLine{Method: "GET", RequestTarget: "/docs/readme.txt", HttpVersion: "HTTP/1.1"}

	tests := []struct {
		name    string
		r       io.Reader
		wantRaw string
	}{
		{name: "Single read", r: strings.NewReader(raw), wantRaw: raw},
		{name: "One byte at a time", r: iotest.OneByteReader(strings.NewReader(raw)), wantRaw: "GET /docs/readme.txt HTTP/1.1\r\n"},
		{name: "Half reads", r: iotest.HalfReader(strings.NewReader(raw)), wantRaw: raw},
		{name: "Error after data", r: io.MultiReader(strings.NewReader("GET /docs/readme.txt HTTP/1.1"), iotest.ErrReader(errors.New("reset"))), wantRaw: "GET /docs/readme.txt HTTP/1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := FromReader(tt.r, MaxSize)
			if err != nil {
				t.Fatalf("FromReader() error = %v", err)
			}
			if req.RequestLine != want {
				t.Errorf("RequestLine = %+v, want %+v", req.RequestLine, want)
			}
			if string(req.Raw) != tt.wantRaw {
				t.Errorf("Raw = %q, want %q", req.Raw, tt.wantRaw)
			}
		})
	}
}

func TestFromReaderEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    io.Reader
	}{
		{name: "Immediate EOF", r: strings.NewReader("")},
		{name: "Immediate error", r: iotest.ErrReader(errors.New("connection reset"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := FromReader(tt.r, MaxSize)
			if !errors.Is(err, ErrEmpty) {
				t.Errorf("FromReader() error = %v, want %v", err, ErrEmpty)
			}
			if req != nil {
				t.Errorf("FromReader() = %+v, want nil", req)
			}
		})
	}
}

func TestFromReaderBounded(t *testing.T) {
	long := "GET /" + strings.Repeat("a", 2*MaxSize) + " HTTP/1.1\r\n"

	req, err := FromReader(strings.NewReader(long), MaxSize)
	if err != nil {
		t.Fatalf("FromReader() error = %v", err)
	}
	if len(req.Raw) != MaxSize {
		t.Errorf("len(Raw) = %d, want %d", len(req.Raw), MaxSize)
	}
	if req.RequestLine.Method != "GET" {
		t.Errorf("Method = %q, want %q", req.RequestLine.Method, "GET")
	}
	if req.RequestLine.HttpVersion != "" {
		t.Errorf("HttpVersion = %q, want empty for a truncated line", req.RequestLine.HttpVersion)
	}
}
