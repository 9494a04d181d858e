// SPDX-License-Identifier: MIT

// Command lvframe reads one or more delimited text or xlsx files, optionally
// joins, slices, transposes and clusters them, and writes the result.
//
//	lvframe -in a.tsv,b.tsv -join rows -rows 1:10 -cols "Alpha:Gamma" \
//	        -cluster rows -linkage average -out out.xlsx
//
// Inputs are read concurrently. Every step is recorded in an undo history and
// logged with a per-run identifier.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvframe/cluster"
	"github.com/katalvlaran/lvframe/config"
	"github.com/katalvlaran/lvframe/frame"
	"github.com/katalvlaran/lvframe/history"
	"github.com/katalvlaran/lvframe/logging"
	"github.com/katalvlaran/lvframe/textio"
	"github.com/katalvlaran/lvframe/xlsx"
)

var errUsage = errors.New("lvframe: usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

type options struct {
	in      []string
	join    string
	rows    string
	cols    string
	t       bool
	cluster string
	linkage string
	sheet   string
	out     string
	config  string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		o  options
		in string
	)
	fs := flag.NewFlagSet("lvframe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&in, "in", "", "comma separated input files (.tsv, .txt, .csv, .xlsx)")
	fs.StringVar(&o.join, "join", "rows", "combine several inputs: rows | cols")
	fs.StringVar(&o.rows, "rows", "", "row selector, e.g. 1:10 or r1:r5 or a,b (empty = all)")
	fs.StringVar(&o.cols, "cols", "", "column selector (empty = all)")
	fs.BoolVar(&o.t, "t", false, "transpose after selection")
	fs.StringVar(&o.cluster, "cluster", "", "reorder by hierarchical clustering: rows | cols")
	fs.StringVar(&o.linkage, "linkage", "average", "average | complete | single")
	fs.StringVar(&o.sheet, "sheet", "", "xlsx sheet to read and write")
	fs.StringVar(&o.out, "out", "-", "output file (.tsv, .txt, .csv, .xlsx) or - for stdout")
	fs.StringVar(&o.config, "config", "", "YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	for _, p := range strings.Split(in, ",") {
		if p = strings.TrimSpace(p); p != "" {
			o.in = append(o.in, p)
		}
	}
	if len(o.in) == 0 {
		return o, fmt.Errorf("%w: -in is required", errUsage)
	}
	switch o.join {
	case "rows", "cols":
	default:
		return o, fmt.Errorf("%w: -join must be rows or cols, got %q", errUsage, o.join)
	}
	switch o.cluster {
	case "", "rows", "cols":
	default:
		return o, fmt.Errorf("%w: -cluster must be rows or cols, got %q", errUsage, o.cluster)
	}

	return o, nil
}

// run is main without the process exit.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(o.config)
	if err != nil {
		return err
	}
	linkage, err := cluster.ParseLinkage(o.linkage)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Logging, stderr)
	ctx = logging.WithRunID(ctx, uuid.NewString())
	hist := history.New(history.WithCapacity(cfg.History.Capacity), history.WithLogger(log))
	log.InfoContext(ctx, "lvframe start", slog.Int("inputs", len(o.in)), slog.String("out", o.out))

	frames, err := loadAll(ctx, cfg, o, log)
	if err != nil {
		return err
	}

	f := frames[0]
	if len(frames) > 1 {
		if o.join == "cols" {
			f, err = frame.JoinCols(frames...)
		} else {
			f, err = frame.JoinRows(frames...)
		}
		if err != nil {
			return fmt.Errorf("lvframe: join: %w", err)
		}
	}
	if err = record(ctx, hist, log, f, "load"); err != nil {
		return err
	}

	if o.rows != "" || o.cols != "" {
		if f, err = f.ILoc(selector(o.rows), selector(o.cols)); err != nil {
			return fmt.Errorf("lvframe: select: %w", err)
		}
		if err = record(ctx, hist, log, f, "select"); err != nil {
			return err
		}
	}
	if o.t {
		f = f.T()
		if err = record(ctx, hist, log, f, "transpose"); err != nil {
			return err
		}
	}
	if o.cluster != "" {
		var dg *cluster.Dendrogram
		if o.cluster == "rows" {
			f, dg, err = cluster.OrderRows(f, linkage)
		} else {
			f, dg, err = cluster.OrderCols(f, linkage)
		}
		if err != nil {
			return fmt.Errorf("lvframe: cluster: %w", err)
		}
		log.DebugContext(ctx, "clustered", slog.String("axis", o.cluster),
			slog.String("linkage", linkage.String()), slog.Int("merges", len(dg.Merges)))
		if err = record(ctx, hist, log, f, "cluster "+o.cluster); err != nil {
			return err
		}
	}

	if err = write(cfg, o, f, stdout); err != nil {
		return err
	}
	log.InfoContext(ctx, "lvframe done", slog.Int("steps", hist.Len()))

	return nil
}

// loadAll reads every input concurrently, keeping the -in order.
func loadAll(ctx context.Context, cfg *config.Config, o options, log *slog.Logger) ([]*frame.Frame, error) {
	frames := make([]*frame.Frame, len(o.in))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range o.in {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := load(cfg, o.sheet, path)
			if err != nil {
				return err
			}
			r, c := f.Shape()
			log.DebugContext(ctx, "loaded", slog.String("path", path), slog.Int("rows", r), slog.Int("cols", c))
			frames[i] = f

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return frames, nil
}

func load(cfg *config.Config, sheet, path string) (*frame.Frame, error) {
	r := cfg.TextReader()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		var opts []xlsx.Option
		if sheet != "" {
			opts = append(opts, xlsx.WithSheet(sheet))
		}
		f, err := xlsx.ReadFile(path, r, opts...)
		if err != nil {
			return nil, fmt.Errorf("lvframe: %s: %w", path, err)
		}
		return f, nil
	case ".csv":
		r = r.Sep(",")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lvframe: %w", err)
	}
	defer fh.Close()
	f, err := r.ReadFrom(fh)
	if err != nil {
		return nil, fmt.Errorf("lvframe: %s: %w", path, err)
	}

	return f, nil
}

func record(ctx context.Context, h *history.History, log *slog.Logger, f *frame.Frame, action string) error {
	st, err := h.Push(f, action)
	if err != nil {
		return fmt.Errorf("lvframe: %s: %w", action, err)
	}
	r, c := f.Shape()
	log.InfoContext(ctx, action, slog.String("step", st.ID.String()), slog.Int("rows", r), slog.Int("cols", c))

	return nil
}

// selector turns a flag value into an ILoc argument: "" selects all, a
// comma list becomes a list of tokens, anything else is a single token.
func selector(s string) any {
	if s == "" {
		return nil
	}
	if !strings.Contains(s, ",") {
		return s
	}

	return strings.Split(s, ",")
}

func write(cfg *config.Config, o options, f *frame.Frame, stdout io.Writer) error {
	ext := strings.ToLower(filepath.Ext(o.out))
	if ext == ".xlsx" {
		opts := []xlsx.Option{xlsx.WithHeader(cfg.Writer.Header), xlsx.WithIndex(cfg.Writer.Index)}
		if o.sheet != "" {
			opts = append(opts, xlsx.WithSheet(o.sheet))
		}
		if err := xlsx.WriteFile(o.out, f, opts...); err != nil {
			return fmt.Errorf("lvframe: write %s: %w", o.out, err)
		}
		return nil
	}

	sep := cfg.Writer.Sep
	if ext == ".csv" {
		sep = ","
	}
	w := textio.NewWriter(
		textio.WithSep(sep),
		textio.WithPrecision(cfg.Writer.Precision),
		textio.WithHeader(cfg.Writer.Header),
		textio.WithIndex(cfg.Writer.Index),
	)
	if o.out == "-" || o.out == "" {
		return w.Write(stdout, f)
	}

	fh, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("lvframe: %w", err)
	}
	if err = w.Write(fh, f); err != nil {
		_ = fh.Close()
		return fmt.Errorf("lvframe: write %s: %w", o.out, err)
	}

	return fh.Close()
}
