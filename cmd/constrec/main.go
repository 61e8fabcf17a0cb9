// Package main is the entry point for the constrec command.
//
// constrec loads constant table definitions from a YAML file (or the embedded
// samples) and runs finder, lookup and option-list queries against them.
// Defaults are read from CLI flags and a .env file in the working directory.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/maruel/constrec/internal/catalog"
	"github.com/maruel/constrec/internal/samples"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "constrec: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	version := flag.Bool("version", false, "Print version and exit")
	defs := flag.String("defs", "", "Definition file (YAML); the embedded samples when empty")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	list := flag.Bool("list", false, "List tables and exit")
	schema := flag.Bool("schema", false, "Print the JSON Schema of definition files and exit")
	watch := flag.Bool("watch", false, "Rerun the query each time the definition file changes")
	q := query{}
	flag.StringVar(&q.table, "table", "", "Table to query")
	flag.StringVar(&q.find, "find", "all", "Selector: all, first, last, none or an id")
	flag.StringVar(&q.where, "where", "", "Condition column=value, used with -find first")
	flag.StringVar(&q.findBy, "find-by", "", "Dynamic finder find_by_<column>=value")
	flag.StringVar(&q.lookup, "lookup", "", "Print the second column of the row whose first column is this key")
	flag.BoolVar(&q.count, "count", false, "Print the number of rows")
	flag.BoolVar(&q.json, "json", false, "Print records as JSON lines")
	flag.BoolVar(&q.options, "options", false, "Print the option list")
	flag.StringVar(&q.display, "display", "", "Option label column")
	flag.StringVar(&q.value, "value", "", "Option value column (default id)")
	flag.BoolVar(&q.includeNull, "include-null", false, "Prepend the no-selection option")
	flag.StringVar(&q.nullText, "null-text", "", "Label of the no-selection option")
	flag.StringVar(&q.nullValue, "null-value", "", "Value of the no-selection option; null for none")
	flag.Parse()
	if len(flag.Args()) > 0 {
		return fmt.Errorf("unknown arguments: %v", flag.Args())
	}

	if *version {
		printVersion()
		return nil
	}
	if *schema {
		b, err := catalog.JSONSchema()
		if err != nil {
			return err
		}
		_, err = fmt.Printf("%s\n", b)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	ll := &slog.LevelVar{}
	ll.Set(slog.LevelWarn)
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000", // Like time.TimeOnly plus milliseconds.
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			val := a.Value.Any()
			skip := false
			switch t := val.(type) {
			case string:
				skip = t == ""
			case time.Time:
				skip = t.IsZero()
			case nil:
				skip = true
			}
			if skip {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	env, err := loadDotEnv(".env")
	if err != nil {
		return err
	}
	// Override with .env file values if not explicitly set via flags
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	if !set["defs"] {
		if v := env["CONSTREC_DEFS"]; v != "" {
			*defs = v
		}
	}
	if !set["log-level"] {
		if v := env["LOG_LEVEL"]; v != "" {
			*logLevel = v
		}
	}
	switch *logLevel {
	case "debug":
		ll.Set(slog.LevelDebug)
	case "info":
		ll.Set(slog.LevelInfo)
	case "warn":
	case "error":
		ll.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level: %q", *logLevel)
	}

	var c *catalog.Catalog
	if *defs == "" {
		if *watch {
			return errors.New("-watch requires -defs")
		}
		c, err = samples.Load(logger)
	} else {
		c, err = catalog.Load(*defs, logger)
	}
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "Definitions loaded", "path", *defs, "tables", c.Len(), "generation", c.Generation().String())

	if *list {
		return listTables(os.Stdout, c)
	}
	if err := q.run(os.Stdout, c); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	store := catalog.NewStore(c)
	store.OnReload = func(c *catalog.Catalog) {
		fmt.Println()
		if err := q.run(os.Stdout, c); err != nil {
			slog.ErrorContext(ctx, "Query failed", "err", err)
		}
	}
	if err := store.Watch(ctx, *defs, logger); err != nil {
		return fmt.Errorf("failed to watch definitions: %w", err)
	}
	slog.InfoContext(ctx, "Watching definitions", "path", *defs)
	<-ctx.Done()
	return ctx.Err()
}

func printVersion() {
	fmt.Println(buildVersion())
}

// buildVersion describes the binary on one line, e.g.
// "constrec dev go1.25.5 rev 1a2b3c4 (modified)".
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "constrec unknown"
	}
	v := info.Main.Version
	if v == "" || v == "(devel)" {
		v = "dev"
	}
	parts := []string{"constrec", v, info.GoVersion}
	for _, kv := range info.Settings {
		switch {
		case kv.Key == "vcs.revision":
			parts = append(parts, "rev", kv.Value)
		case kv.Key == "vcs.modified" && kv.Value == "true":
			parts = append(parts, "(modified)")
		}
	}
	return strings.Join(parts, " ")
}

// loadDotEnv reads KEY=value lines from path. Blank lines, # comments and
// lines without = are skipped. Double-quoted values use Go string syntax. A
// missing file is not an error.
func loadDotEnv(path string) (map[string]string, error) {
	env := map[string]string{}
	f, err := os.Open(path) //nolint:gosec // G304: fixed name in the working directory
	if errors.Is(err, fs.ErrNotExist) {
		return env, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for n := 1; s.Scan(); n++ {
		key, val, ok := strings.Cut(s.Text(), "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" || key[0] == '#' {
			continue
		}
		val = strings.TrimSpace(val)
		if val != "" && val[0] == '"' {
			if val, err = strconv.Unquote(val); err != nil {
				return nil, fmt.Errorf("%s:%d: %s: %w", path, n, key, err)
			}
		}
		env[key] = val
	}
	return env, s.Err()
}
