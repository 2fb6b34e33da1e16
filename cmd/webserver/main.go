// Package main serves static files from a directory over HTTP/1.1, one
// connection at a time.
//
// Usage:
//
//	webserver -p 8080 [-d ./site] [-v] [-t 5s]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/f4ah6o/webserver/internal/config"
	"github.com/f4ah6o/webserver/internal/handler"
	"github.com/f4ah6o/webserver/internal/logger"
	"github.com/f4ah6o/webserver/internal/server"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run starts the server and only returns on a startup failure.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fail(stderr, "Error: %v", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fail(stderr, "Error: %v", err)
		return 1
	}

	ln, err := server.Listen(cfg.Port, server.DefaultBacklog)
	if err != nil {
		fail(stderr, "%v", err)
		return 1
	}

	log := logger.New(stdout)
	h := &handler.Handler{
		Root:        cfg.Root,
		Verbose:     cfg.Verbose,
		ReadTimeout: cfg.ReadTimeout,
		Log:         log,
	}
	srv := server.New(ln, h, log)

	fmt.Fprintf(stdout, "Server is running on port %d serving directory: %s\n", cfg.Port, cfg.Root)
	if err := srv.Serve(); err != nil {
		fail(stderr, "%v", err)
		return 1
	}
	return 0
}

func fail(w io.Writer, format string, v ...interface{}) {
	color.New(color.FgRed).Fprintf(w, format+"\n", v...)
}
