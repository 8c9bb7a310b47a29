package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // attribute key the tag filters look at

// filteringHandler wraps a base slog.Handler and drops records rejected by
// the tag/package/file lists of the Config.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

// Enabled defers to the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle applies the filters before passing the record on.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil || !h.cfg.filtering() {
		return h.base.Handle(ctx, r)
	}

	pkg, file := sourceOf(r)
	if !allowed(strings.ToLower(pkg), h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet, pkg != "") {
		return nil
	}
	if !allowed(strings.ToLower(file), h.cfg.enabledFilesSet, h.cfg.disabledFilesSet, file != "") {
		return nil
	}

	tag, hasTag := "", false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag, hasTag = strings.ToLower(a.Value.String()), true
			return false
		}
		return true
	})
	if hasTag {
		if !allowed(tag, h.cfg.enabledTagsSet, h.cfg.disabledTagsSet, true) {
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Untagged records are dropped once a tag allow-list exists.
		return nil
	}

	return h.base.Handle(ctx, r)
}

// allowed checks key against the deny set first, then the allow set.
// Records with no known key only fail when neither set is consulted.
func allowed(key string, enabled, disabled map[string]struct{}, known bool) bool {
	if !known {
		return true
	}
	if _, found := disabled[key]; found {
		return false
	}
	if enabled != nil {
		_, found := enabled[key]
		return found
	}
	return true
}

// sourceOf resolves the package directory and file name of the record's caller.
func sourceOf(r slog.Record) (pkg, file string) {
	if r.PC == 0 {
		return "", ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", ""
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.cfg)
}
