package netcheck

import (
	"context"
	"log/slog"
	"time"
)

// Watcher polls a Checker and fires a callback on every online/offline
// transition. It is a control loop reacting to connectivity changes,
// not a timer that blindly triggers syncs.
type Watcher struct {
	checker  Checker
	logger   *slog.Logger
	onChange func(online bool)
	interval time.Duration
}

// NewWatcher creates a connectivity watcher.
// onChange is invoked from the watcher goroutine on each transition,
// including the very first probe.
func NewWatcher(checker Checker, interval time.Duration, onChange func(online bool), logger *slog.Logger) *Watcher {
	return &Watcher{
		checker:  checker,
		interval: interval,
		onChange: onChange,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, probing connectivity on every tick.
// Predecessor state starts as unknown, so the first probe always fires
// the callback.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	known := false
	var last bool

	probe := func() {
		online := w.checker.Online(ctx)
		if known && online == last {
			return
		}
		known = true
		last = online
		w.logger.Info("connectivity changed", "online", online)
		w.onChange(online)
	}

	probe()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probe()
		}
	}
}
