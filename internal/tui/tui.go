package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/skill-eval/internal/evalinfo"
	"github.com/baaaaaaaka/skill-eval/internal/pick"
)

const (
	DefaultRunTitle      = "Select a run"
	DefaultScenarioTitle = "Select scenarios"
)

// ErrNotInteractive is returned when a selector needs a screen but the
// caller reported that no terminal is attached.
var ErrNotInteractive = errors.New("interactive selection requires a terminal")

var newScreen = tcell.NewScreen

type Options struct {
	Title string
	// Interactive reports whether a terminal is attached. It is consulted
	// only when a screen is actually needed. Nil means interactive.
	Interactive func() bool
	// OnSummaryError receives the problems the summarizer recovered from.
	OnSummaryError func(error)
}

// RunResult is the outcome of SelectRun. Path is empty when nothing was
// chosen; Cancelled tells an aborted session apart from an empty input.
type RunResult struct {
	Path      string
	Cancelled bool
}

// MultiResult is the outcome of SelectScenarios. A cancelled session
// always has nil Paths.
type MultiResult struct {
	Paths     []string
	Cancelled bool
}

type uiEvent struct {
	when time.Time
	kind string
}

func (e *uiEvent) When() time.Time { return e.when }

// SelectRun lets the user pick one run directory. Empty input returns an
// empty result and a single candidate is returned without a screen.
func SelectRun(ctx context.Context, paths []string, opts Options) (RunResult, error) {
	if len(paths) == 0 {
		return RunResult{}, nil
	}
	if len(paths) == 1 {
		return RunResult{Path: paths[0]}, nil
	}
	if !opts.interactive() {
		return RunResult{}, ErrNotInteractive
	}

	runs, err := evalinfo.SummarizeRuns(paths)
	opts.reportSummaryError(err)
	items := toItems(runs)
	if err := pick.CheckUnique(items); err != nil {
		return RunResult{}, err
	}

	s := newSession(modeSingle, opts.titleOr(DefaultRunTitle), items)
	if err := runSession(ctx, s); err != nil {
		return RunResult{Cancelled: true}, err
	}
	path, ok := s.singleResult()
	if !ok {
		return RunResult{Cancelled: true}, nil
	}
	return RunResult{Path: path}, nil
}

// SelectScenarios lets the user pick any number of scenario directories.
// Paths come back in list order regardless of the order they were picked.
func SelectScenarios(ctx context.Context, paths []string, opts Options) (MultiResult, error) {
	if len(paths) == 0 {
		return MultiResult{}, nil
	}
	if !opts.interactive() {
		return MultiResult{}, ErrNotInteractive
	}

	scenarios, err := evalinfo.SummarizeScenarios(paths)
	opts.reportSummaryError(err)
	items := toItems(scenarios)
	if err := pick.CheckUnique(items); err != nil {
		return MultiResult{}, err
	}

	s := newSession(modeMulti, opts.titleOr(DefaultScenarioTitle), items)
	if err := runSession(ctx, s); err != nil {
		return MultiResult{Cancelled: true}, err
	}
	if s.state != stateConfirmed {
		return MultiResult{Cancelled: true}, nil
	}
	return MultiResult{Paths: s.multiResult()}, nil
}

func runSession(ctx context.Context, s *session) error {
	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			screen.PostEvent(&uiEvent{when: time.Now(), kind: "quit"})
		case <-done:
		}
	}()

	for s.state == stateActive {
		lay := draw(screen, s)
		switch ev := screen.PollEvent().(type) {
		case nil:
			s.cancel()
		case *uiEvent:
			if ev.kind == "quit" {
				s.cancel()
				return ctx.Err()
			}
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			handleKey(s, ev, max(1, lay.list.h-2))
		case *tcell.EventMouse:
			handleMouse(s, ev, lay)
		}
	}
	return nil
}

func toItems[T pick.Item](xs []T) []pick.Item {
	items := make([]pick.Item, 0, len(xs))
	for _, x := range xs {
		items = append(items, x)
	}
	return items
}

func (o Options) interactive() bool {
	return o.Interactive == nil || o.Interactive()
}

func (o Options) titleOr(def string) string {
	if o.Title != "" {
		return o.Title
	}
	return def
}

func (o Options) reportSummaryError(err error) {
	if err != nil && o.OnSummaryError != nil {
		o.OnSummaryError(err)
	}
}
