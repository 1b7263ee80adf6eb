// Package app wires configuration, the policy registry, the entity catalog
// and the configured sinks into one runnable notifier.
package app

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"notifier/internal/catalog"
	"notifier/internal/common/fsutil"
	"notifier/internal/config"
	"notifier/internal/httpapi"
	"notifier/internal/policy"
	"notifier/internal/sink"
	"notifier/internal/tracking"
	"notifier/pkg/types"
)

// RecorderSink is the sink name under which every App registers its recorder.
const RecorderSink = "recorder"

// historySize bounds the notifications kept for GET /notifications.
const historySize = 1000

// Options carries the process-level collaborators of an App.
type Options struct {
	Logger zerolog.Logger
	// Out receives console sink output. Defaults to os.Stdout.
	Out io.Writer
}

// App is a configured notifier.
type App struct {
	cfg      config.Config
	reg      *policy.Registry
	cat      *catalog.Catalog
	recorder *sink.Recorder
	observer tracking.Observer
	log      zerolog.Logger
	ready    atomic.Bool
}

// LoadPolicy returns the policy table named by path, or the built-in table
// when path is empty. A directory is read with policy.LoadDir.
func LoadPolicy(path string) ([]policy.Entry, error) {
	switch {
	case path == "":
		return policy.Default(), nil
	case fsutil.IsDir(path):
		return policy.LoadDir(path)
	}
	return policy.Load(path)
}

// New validates cfg, builds the policy registry and resolves the configured
// sinks. The App's recorder is always part of the resulting observer so that
// stats reflect every delivered notification.
func New(cfg config.Config, opts Options) (*App, error) {
	cfg = cfg.Defaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	entries, err := LoadPolicy(cfg.PolicyFile)
	if err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}
	reg, err := catalog.NewRegistry(entries)
	if err != nil {
		return nil, err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	a := &App{
		cfg:      cfg,
		reg:      reg,
		cat:      catalog.New(reg),
		recorder: sink.NewBoundedRecorder(historySize),
		log:      opts.Logger,
	}
	tracking.SetLogger(opts.Logger)
	httpapi.SetLogger(opts.Logger)
	sink.Register("log", sink.NewLog(opts.Logger))
	sink.Register("console", sink.NewConsole(out))
	sink.Register(RecorderSink, a.recorder)

	a.observer, err = sink.Build(append(lo.Without(cfg.Sinks, RecorderSink), RecorderSink)...)
	if err != nil {
		return nil, err
	}
	a.log.Debug().Strs("sinks", cfg.Sinks).Str("policy", lo.Ternary(cfg.PolicyFile == "", "built-in", cfg.PolicyFile)).Int("types", len(reg.Types())).Msg("notifier configured")
	return a, nil
}

func (a *App) Config() config.Config        { return a.cfg }
func (a *App) Registry() *policy.Registry   { return a.reg }
func (a *App) Catalog() *catalog.Catalog    { return a.cat }
func (a *App) Observer() tracking.Observer  { return a.observer }
func (a *App) Recorder() *sink.Recorder     { return a.recorder }
func (a *App) Policy() types.PolicyResponse { return a.reg.View() }
func (a *App) Stats() types.StatsResponse   { return a.recorder.Stats() }
func (a *App) Ready() bool                  { return a.ready.Load() }
func (a *App) SetReady(v bool)              { a.ready.Store(v) }

// Recent returns the newest limit notifications, oldest first.
func (a *App) Recent(limit int) []types.Notification {
	return lo.Map(a.recorder.Recent(limit), func(c sink.Call, _ int) types.Notification { return c.View() })
}

var _ httpapi.Service = (*App)(nil)
