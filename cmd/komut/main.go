package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kafkasder-portal/neww-sub003/internal/htmltext"
	"github.com/kafkasder-portal/neww-sub003/internal/logging"
	"github.com/kafkasder-portal/neww-sub003/internal/transcript"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/config"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/metrics"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/store"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/store/memstore"
	"github.com/kafkasder-portal/neww-sub003/pkg/komut/store/sqlite"
)

type appConfig struct {
	stoplistPath string
	lexiconPath  string
	intentsPath  string
	dbPath       string
	maxLen       int
	html         bool
}

func main() {
	var (
		stoplistPath = flag.String("stoplist", "", "Extra stopwords YAML (optional)")
		lexiconPath  = flag.String("lexicon", "", "Synonym lexicon YAML (optional)")
		intentsPath  = flag.String("intents", "", "Extra intent rules YAML (optional)")
		dbPath       = flag.String("db", "", "SQLite file for metric events (optional, in-memory if empty)")
		query        = flag.String("query", "", "One-shot command (non-interactive mode)")
		batchPath    = flag.String("batch", "", "JSONL file of commands to interpret")
		stripHTML    = flag.Bool("html", false, "Treat input as HTML and interpret its visible text")
		maxLen       = flag.Int("max-len", 2000, "Maximum command length in runes; longer input is truncated")
		showStats    = flag.Bool("stats", false, "Print the metrics summary before exiting")
		metricsOut   = flag.String("metrics-out", "", "Write Prometheus metrics to this textfile on exit")
		logLevel     = flag.String("log-level", "info", "Log level: debug, info, warn, error")
		logFormat    = flag.String("log-format", "console", "Log format: console or json")
	)
	flag.Parse()

	logger := logging.New(*logLevel, *logFormat)
	defer logger.Sync()

	ctx := context.Background()

	a, cleanup, err := buildApp(ctx, appConfig{
		stoplistPath: *stoplistPath,
		lexiconPath:  *lexiconPath,
		intentsPath:  *intentsPath,
		dbPath:       *dbPath,
		maxLen:       *maxLen,
		html:         *stripHTML,
	}, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}
	defer cleanup()

	switch {
	case *query != "":
		if err := a.handle(ctx, os.Stdout, *query, a.html); err != nil {
			logger.Fatal("interpret failed", zap.Error(err))
		}
	case *batchPath != "":
		if err := a.runBatch(ctx, os.Stdout, *batchPath); err != nil {
			logger.Fatal("batch failed", zap.Error(err))
		}
	default:
		a.interactive(ctx, os.Stdin, os.Stdout)
	}

	if *showStats {
		if err := writeJSON(os.Stdout, a.agg.Snapshot()); err != nil {
			logger.Error("print stats", zap.Error(err))
		}
	}
	if *metricsOut != "" {
		if err := prometheus.WriteToTextfile(*metricsOut, a.registry); err != nil {
			logger.Error("write metrics", zap.String("path", *metricsOut), zap.Error(err))
		}
	}
}

// app ties the interpreter to the metrics aggregator for one CLI session.
type app struct {
	interp   *komut.Interpreter
	agg      *metrics.Aggregator
	registry *prometheus.Registry
	log      *zap.Logger
	maxLen   int
	html     bool

	lastID string // event of the last interpreted command, target of +/- feedback
}

func buildApp(ctx context.Context, cfg appConfig, logger *zap.Logger) (*app, func(), error) {
	loader := config.Loader{
		StoplistPath: cfg.stoplistPath,
		LexiconPath:  cfg.lexiconPath,
		IntentsPath:  cfg.intentsPath,
	}

	components, err := loader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	interp := komut.New(komut.Options{
		Tokenizer: components.Tokenizer,
		Intents:   components.Intents,
	})

	var events store.EventStore
	if cfg.dbPath != "" {
		events, err = sqlite.OpenSQLite(ctx, cfg.dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open store: %w", err)
		}
	} else {
		events = memstore.New()
	}

	registry := prometheus.NewRegistry()
	collectors := metrics.NewCollectors()
	if err := collectors.Register(registry); err != nil {
		events.Close()
		return nil, nil, fmt.Errorf("register metrics: %w", err)
	}

	agg := metrics.New(metrics.Options{
		Store:      events,
		Collectors: collectors,
		Logger:     logger,
	})
	if err := agg.Replay(ctx); err != nil {
		events.Close()
		return nil, nil, fmt.Errorf("replay metrics: %w", err)
	}

	a := &app{
		interp:   interp,
		agg:      agg,
		registry: registry,
		log:      logger,
		maxLen:   cfg.maxLen,
		html:     cfg.html,
	}
	cleanup := func() {
		if err := events.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}
	return a, cleanup, nil
}

// interpret cleans and caps the input, interprets it and records the outcome.
func (a *app) interpret(ctx context.Context, text string, isHTML bool) (komut.Result, store.Event, error) {
	if isHTML {
		text = htmltext.Extract(text)
	}
	text = truncateRunes(text, a.maxLen)

	start := time.Now()
	res := a.interp.Interpret(text)
	elapsed := time.Since(start)

	ev, err := a.agg.Record(ctx, metrics.NewEvent(res, res.Intent.Primary != intent.Unknown, elapsed))
	if err != nil {
		return res, ev, err
	}
	a.lastID = ev.ID
	return res, ev, nil
}

func (a *app) handle(ctx context.Context, w io.Writer, text string, isHTML bool) error {
	res, _, err := a.interpret(ctx, text, isHTML)
	if err != nil {
		return err
	}
	return writeJSON(w, res)
}

// batchLine is one interpreted command of a batch run.
type batchLine struct {
	ID     string       `json:"id"`
	Source string       `json:"source,omitempty"`
	Result komut.Result `json:"result"`
}

func (a *app) runBatch(ctx context.Context, w io.Writer, path string) error {
	cmds, err := transcript.LoadFromJSONL(path, a.log)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	for _, cmd := range cmds {
		res, _, err := a.interpret(ctx, cmd.Text, cmd.HTML || a.html)
		if err != nil {
			return fmt.Errorf("command %s: %w", cmd.ID, err)
		}
		if err := enc.Encode(batchLine{ID: cmd.ID, Source: cmd.Source, Result: res}); err != nil {
			return err
		}
	}
	a.log.Info("batch done", zap.String("file", path), zap.Int("commands", len(cmds)))
	return nil
}

func (a *app) interactive(ctx context.Context, r io.Reader, w io.Writer) {
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "  komut")
	fmt.Fprintln(w, "  Türkçe komut yorumlayıcı")
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bir komut yazın; '+' ya da '-' son yoruma geri bildirim verir (Ctrl+D çıkış).")
	fmt.Fprintln(w)

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "+", "-":
			if err := a.feedback(ctx, line); err != nil {
				fmt.Fprintln(w, "Hata:", err)
			}
			continue
		}

		if err := a.handle(ctx, w, line, a.html); err != nil {
			fmt.Fprintln(w, "Hata:", err)
		}
	}

	fmt.Fprintln(w, "\nGörüşmek üzere!")
}

func (a *app) feedback(ctx context.Context, mark string) error {
	if a.lastID == "" {
		return fmt.Errorf("no command to rate yet")
	}
	fb := store.FeedbackPositive
	if mark == "-" {
		fb = store.FeedbackNegative
	}
	return a.agg.Feedback(ctx, a.lastID, fb)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
