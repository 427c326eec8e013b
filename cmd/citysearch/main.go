// Command citysearch finds routes between two cities with breadth-first,
// depth-first and A* search.
//
// Report mode reads a two-line query file and writes the three results:
//
//	citysearch [flags] <input_file> <output_file>
//
// Serve mode answers the same queries over HTTP:
//
//	citysearch -serve [flags]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/citysearch/citydb"
	"github.com/katalvlaran/citysearch/config"
	"github.com/katalvlaran/citysearch/core"
	"github.com/katalvlaran/citysearch/loader"
	"github.com/katalvlaran/citysearch/report"
	"github.com/katalvlaran/citysearch/search"
	"github.com/katalvlaran/citysearch/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("citysearch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", ".env", "optional dotenv file")
	cityFile := fs.String("cities", "", "city records file (overrides "+config.EnvCityFile+")")
	edgeFile := fs.String("edges", "", "edge records file (overrides "+config.EnvEdgeFile+")")
	dbPath := fs.String("db", "", "SQLite database used instead of the record files (overrides "+config.EnvDatabase+")")
	listen := fs.String("listen", "", "HTTP listen address (overrides "+config.EnvListen+")")
	serve := fs.Bool("serve", false, "serve HTTP instead of writing a report")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: citysearch [flags] <input_file> <output_file>")
		fmt.Fprintln(stderr, "       citysearch -serve [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if *cityFile != "" {
		cfg.CityFile = *cityFile
	}
	if *edgeFile != "" {
		cfg.EdgeFile = *edgeFile
	}
	if *dbPath != "" {
		cfg.Database = *dbPath
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}
	if !*serve {
		if fs.NArg() != 2 {
			fs.Usage()
			return 2
		}
		cfg.QueryFile, cfg.ReportFile = fs.Arg(0), fs.Arg(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	g, err := loadGraph(ctx, cfg)
	if err != nil {
		log.Error("load graph", "err", err)
		return 1
	}
	st := g.Stats()
	log.Debug("graph loaded", "cities", st.CityCount, "edges", st.EdgeCount, "isolated", st.IsolatedCount)

	if *serve {
		srv, err := server.New(g, server.WithLogger(log))
		if err != nil {
			log.Error("server", "err", err)
			return 1
		}
		if err := srv.ListenAndServe(ctx, cfg.Listen); err != nil {
			log.Error("server", "err", err)
			return 1
		}
		return 0
	}

	if err := writeReport(cfg, g, stdout); err != nil {
		log.Error("report", "err", err)
		return 1
	}

	return 0
}

func loadGraph(ctx context.Context, cfg *config.Config) (*core.Graph, error) {
	if cfg.Database == "" {
		return loader.Files{Cities: cfg.CityFile, Edges: cfg.EdgeFile}.Load(ctx)
	}

	db, err := citydb.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.Load(ctx)
}

func writeReport(cfg *config.Config, g *core.Graph, stdout io.Writer) error {
	in, err := os.Open(cfg.QueryFile)
	if err != nil {
		return err
	}
	q, err := loader.ReadQuery(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.QueryFile, err)
	}

	resp, err := search.Plan(g, search.Request{From: q.From, To: q.To})
	if err != nil {
		return err
	}
	if err := report.WriteFile(cfg.ReportFile, resp); err != nil {
		return err
	}

	return report.WriteText(stdout, resp)
}
