package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/viranchils96/simple-text-analysis/config"
	utils "github.com/viranchils96/simple-text-analysis/utils"
)

func main() {
	var cfgPath, paths string
	var top, workers int
	flag.StringVar(&cfgPath, "c", "", "YAML config path")
	flag.StringVar(&paths, "p", "", "comma separated book paths (overrides config, markers are dropped)")
	flag.IntVar(&top, "top", -1, "number of most frequent words to print")
	flag.IntVar(&workers, "workers", 0, "parallel counting workers")
	flag.Parse()

	cfg, err := config.Load(cfgPath, func(cfg *config.Config) {
		if paths != "" {
			cfg.Books = nil
			for _, p := range strings.Split(paths, ",") {
				cfg.Books = append(cfg.Books, config.BookConfig{Path: strings.TrimSpace(p)})
			}
		}
		if top >= 0 {
			cfg.Analysis.Top = top
		}
		if workers > 0 {
			cfg.Analysis.Workers = workers
		}
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(context.Background(), cfg, logger, os.Stdout); err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}
}

func newLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = level
	return zc.Build()
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, w io.Writer) error {
	if len(cfg.Books) == 0 {
		return fmt.Errorf("no books configured, use -p or a config file")
	}
	log := logger.Sugar()

	bookPaths := make([]string, len(cfg.Books))
	for i, b := range cfg.Books {
		bookPaths[i] = b.Path
	}

	start := time.Now()
	books, errCh := utils.StreamBooks(ctx, bookPaths)
	for book := range books {
		log.Infof("loaded %s (%d bytes) in %v", book.Path, len(book.Text), time.Since(start))

		opts := cfg.AnalyzeOptions(cfg.Books[book.ID])
		opts.Logger = logger.With(zap.String("book", book.Path))

		start = time.Now()
		a, err := utils.AnalyzeBook(ctx, book.Text, opts)
		if err != nil {
			return fmt.Errorf("analyzing %s: %w", book.Path, err)
		}
		log.Infof("counted %d tokens (%d distinct) in %v", a.Table.Total(), a.Table.Size(), time.Since(start))

		printReport(w, book.Path, a, cfg.Analysis.Top)
		start = time.Now()
	}
	return <-errCh
}

func printReport(w io.Writer, path string, a *utils.Analysis, top int) {
	fmt.Fprintf(w, "== %s\n", path)
	fmt.Fprintf(w, "distinct words: %d\n", a.Table.Size())
	if mf, ok := a.Table.MostFrequent(); ok {
		fmt.Fprintf(w, "most frequent: %q (%d)\n", mf.Word, mf.Count)
	}
	for _, wc := range a.Table.Top(top) {
		fmt.Fprintf(w, "\t%s\t%d\n", wc.Word, wc.Count)
	}

	names := make([]string, 0, len(a.Reports))
	for name := range a.Reports {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s words:\n", name)
		for _, l := range a.Reports[name] {
			if !l.Found {
				fmt.Fprintf(w, "\t%s\tnot found\n", l.Word)
				continue
			}
			rel, _ := a.Table.Relative(l.Word)
			fmt.Fprintf(w, "\t%s\t%d\t%.4f%%\n", l.Word, l.Count, rel*100)
		}
	}
}
