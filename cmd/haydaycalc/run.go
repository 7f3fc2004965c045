package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ChicagoDave/haydaycalc/internal/config"
	"github.com/ChicagoDave/haydaycalc/internal/logging"
	"github.com/ChicagoDave/haydaycalc/internal/server"
	"github.com/ChicagoDave/haydaycalc/internal/tui"
	"github.com/ChicagoDave/haydaycalc/internal/watch"
	"github.com/ChicagoDave/haydaycalc/pkg/catalog"
	"github.com/ChicagoDave/haydaycalc/pkg/cost"
	"github.com/ChicagoDave/haydaycalc/pkg/planner"
	"github.com/ChicagoDave/haydaycalc/pkg/validation"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath  string
	catalogPath string
	verbose     bool

	cfg     *config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.catalogPath != "" {
		cfg.Catalog = a.catalogPath
	}
	a.cfg = cfg

	a.logger, err = logging.New(cfg.Log, a.verbose)
	if err != nil {
		return err
	}

	// validate loads its own catalog so it can report on broken files.
	if cmd.Name() == "validate" {
		return nil
	}
	a.catalog, err = catalog.LoadOrDefault(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	if cfg.Catalog != "" {
		if err := validation.ValidateCatalog(a.catalog).Err(); err != nil {
			return fmt.Errorf("invalid catalog %s: %w", cfg.Catalog, err)
		}
	}
	a.logger.Debug("catalog loaded",
		zap.String("path", cfg.Catalog),
		zap.Int("kinds", len(a.catalog.Kinds())))
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) runCost(w io.Writer, name, currentArg, targetArg string) error {
	current, err := strconv.Atoi(currentArg)
	if err != nil {
		return fmt.Errorf("current slots: %w", err)
	}
	target, err := strconv.Atoi(targetArg)
	if err != nil {
		return fmt.Errorf("target slots: %w", err)
	}

	kind, ok := a.catalog.Lookup(name)
	if !ok {
		if a.catalog.IsExcluded(name) {
			return fmt.Errorf("%s is excluded from planning", name)
		}
		return fmt.Errorf("unknown kind %q", name)
	}

	c := cost.New(a.catalog).KindCost(kind, current, target)
	printCost(w, kind, current, target, c)
	return nil
}

func (a *app) runPlan(w io.Writer, reduction *int, sets []string, asJSON, all bool) error {
	edits := make([]edit, 0, len(sets))
	for _, s := range sets {
		e, err := parseEdit(s)
		if err != nil {
			return err
		}
		edits = append(edits, e)
	}

	p := planner.New(a.catalog)
	if reduction != nil {
		p.SetReduction(*reduction)
	}
	for _, e := range edits {
		if err := e.apply(p, a.catalog); err != nil {
			return err
		}
	}

	plan := p.Snapshot()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	printPlan(w, plan, all)
	return nil
}

func (a *app) runValidate(w io.Writer, path string) error {
	if path == "" {
		path = a.cfg.Catalog
	}
	c, err := catalog.LoadOrDefault(path)
	if err != nil {
		return err
	}

	report := validation.ValidateCatalog(c)
	printValidationReport(w, report)
	if err := report.Err(); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

func (a *app) runServe(ctx context.Context, watchCatalog bool) error {
	if watchCatalog && a.cfg.Catalog == "" {
		return errors.New("--watch needs a catalog file (--catalog or HAYDAY_CATALOG)")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(a.catalog, a.cfg.Server.Addr(), a.logger)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Start(ctx) })
	if watchCatalog {
		w := watch.NewCatalogWatcher(a.cfg.Catalog, a.logger, srv.SetCatalog)
		g.Go(func() error { return w.Run(ctx) })
	}
	return g.Wait()
}

func (a *app) runTUI(w io.Writer) error {
	plan, err := tui.Run(a.catalog)
	if err != nil {
		return err
	}
	printTotals(w, plan.Totals)
	return nil
}
