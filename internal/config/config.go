// Package config holds the server settings taken from the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// DefaultRoot is served when -d is not given.
const DefaultRoot = "./"

// ErrNoPort is returned when -p is missing.
var ErrNoPort = errors.New("port is required (-p)")

// Config specifies where and how the server listens and what it serves.
// It is built once at startup and never modified afterwards.
type Config struct {
	// Port is the TCP port to listen on, 1-65535.
	Port int
	// Root is the directory files are served from.
	Root string
	// Verbose echoes every raw request to standard output.
	Verbose bool
	// ReadTimeout bounds how long a client may take to send its request.
	// Zero disables the deadline.
	ReadTimeout time.Duration
}

// Parse reads the flags in args (without the program name).
//
// Recognized flags:
//   - -p <port>: listening port, required
//   - -d <dir>: root directory, default "./"
//   - -v: verbose request echo
//   - -t <duration>: read timeout such as "5s", default 0 (none)
//
// Usage and flag errors are written to output.
func Parse(args []string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("webserver", flag.ContinueOnError)
	fs.SetOutput(output)

	var cfg Config
	port := fs.String("p", "", "port to listen on (required)")
	fs.StringVar(&cfg.Root, "d", DefaultRoot, "directory to serve")
	fs.BoolVar(&cfg.Verbose, "v", false, "print every received request")
	fs.DurationVar(&cfg.ReadTimeout, "t", 0, "read timeout per connection, 0 for none")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *port == "" {
		return nil, ErrNoPort
	}
	n, err := strconv.Atoi(*port)
	if err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("invalid port number %q", *port)
	}
	cfg.Port = n

	if cfg.ReadTimeout < 0 {
		return nil, fmt.Errorf("invalid read timeout %s", cfg.ReadTimeout)
	}
	return &cfg, nil
}

// Validate checks that Root exists and is a directory.
func (c *Config) Validate() error {
	info, err := os.Stat(c.Root)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory '%s' does not exist", c.Root)
	}
	return nil
}
