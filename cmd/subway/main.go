// Command subway loads a subway map and either prints one route or serves
// route queries over HTTP.
//
//	subway -file metro.txt -from "Harbor Gate" -to Airport
//	subway -file metro.txt -serve :8080
//
// The map file defaults to $SUBWAY_MAP and the listen address to :$PORT.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/subway/api"
	"github.com/katalvlaran/subway/core"
	"github.com/katalvlaran/subway/loader"
	"github.com/katalvlaran/subway/render"
	"github.com/katalvlaran/subway/route"
)

// config holds the parsed command line.
type config struct {
	file     string
	from     string
	to       string
	serve    string
	strict   bool
	sameLine bool
	list     bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("subway", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.StringVar(&cfg.file, "file", os.Getenv("SUBWAY_MAP"), "subway map file (env SUBWAY_MAP)")
	fs.StringVar(&cfg.from, "from", "", "start station")
	fs.StringVar(&cfg.to, "to", "", "destination station")
	fs.StringVar(&cfg.serve, "serve", "", "serve the HTTP API on this address, e.g. :8080")
	fs.BoolVar(&cfg.strict, "strict", false, "reject connections to undeclared stations")
	fs.BoolVar(&cfg.sameLine, "same-line", false, "prefer staying on the same line")
	fs.BoolVar(&cfg.list, "list", false, "print stations and connections")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// PORT only applies when no one-shot query was asked for
	if cfg.serve == "" && cfg.from == "" && !cfg.list {
		if port := os.Getenv("PORT"); port != "" {
			cfg.serve = ":" + port
		}
	}
	if cfg.file == "" {
		return nil, errors.New("a map file is required (-file or SUBWAY_MAP)")
	}
	if cfg.serve == "" && !cfg.list && (cfg.from == "" || cfg.to == "") {
		return nil, errors.New("either -serve, -list, or both -from and -to are required")
	}

	return cfg, nil
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("subway: %v", err)
	}
}

// run executes one invocation. It blocks until ctx is done in serve mode.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	var graphOpts []core.GraphOption
	var loadOpts []loader.Option
	if cfg.strict {
		graphOpts = append(graphOpts, core.WithStrictStations())
		loadOpts = append(loadOpts, loader.WithStrict())
	}
	g := core.NewGraph(graphOpts...)
	stats, err := loader.LoadFile(cfg.file, g, loadOpts...)
	if err != nil {
		return err
	}
	if stats.Dropped > 0 {
		log.Printf("dropped %d link(s) naming undeclared stations", stats.Dropped)
	}

	p := render.NewPrinter(stdout)
	if cfg.list {
		if err := p.Stations(g); err != nil {
			return err
		}
		if err := p.Connections(g); err != nil {
			return err
		}
	}
	if cfg.from != "" && cfg.to != "" {
		var opts []route.Option
		if cfg.sameLine {
			opts = append(opts, route.WithPreferSameLine())
		}
		res, err := route.Search(g, cfg.from, cfg.to, opts...)
		if err != nil {
			return err
		}
		if err := p.Result(res, cfg.from, cfg.to); err != nil {
			return err
		}
	}
	if cfg.serve == "" {
		return nil
	}

	log.Printf("loaded %d stations, %d lines, %d links from %s", stats.Stations, stats.Lines, stats.Links, cfg.file)

	return serve(ctx, cfg.serve, api.NewServer(g))
}

// serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func serve(ctx context.Context, addr string, s *api.Server) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	select {
	case err, ok := <-serverErrors:
		if ok {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Println("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("server stopped")

	return nil
}
