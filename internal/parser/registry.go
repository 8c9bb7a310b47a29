package parser

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

type entry struct {
	grammar Grammar
	build   Builder
}

// Registry maps keywords to their grammar and command builder. Plugins and
// the session add keywords through Register.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a keyword. Keywords are case-insensitive and may only be
// registered once.
func (r *Registry) Register(g Grammar, build Builder) error {
	if err := g.validate(); err != nil {
		return err
	}
	if build == nil {
		return fmt.Errorf("%s: nil builder", g.Keyword)
	}
	g.Keyword = strings.ToLower(g.Keyword)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[g.Keyword]; exists {
		return fmt.Errorf("keyword %q already registered", g.Keyword)
	}
	r.entries[g.Keyword] = entry{grammar: g, build: build}
	logger.DebugTagf("parser", "registered keyword %q", g.Keyword)
	return nil
}

// Unregister removes a keyword. It reports whether it was present.
func (r *Registry) Unregister(keyword string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	keyword = strings.ToLower(keyword)
	_, ok := r.entries[keyword]
	delete(r.entries, keyword)
	return ok
}

func (r *Registry) lookup(keyword string) (entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[strings.ToLower(keyword)]
	return e, ok
}

// Grammar returns the grammar registered for keyword.
func (r *Registry) Grammar(keyword string) (Grammar, bool) {
	e, ok := r.lookup(keyword)
	return e.grammar, ok
}

// Keywords lists the registered keywords in sorted order.
func (r *Registry) Keywords() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Help returns the usage and summary of one keyword.
func (r *Registry) Help(keyword string) (string, bool) {
	g, ok := r.Grammar(keyword)
	if !ok {
		return "", false
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s\n", g.Usage())
	if g.Summary != "" {
		fmt.Fprintf(&b, "  %s\n", g.Summary)
	}
	return b.String(), true
}

// HelpText lists every keyword with its usage.
func (r *Registry) HelpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, k := range r.Keywords() {
		g, _ := r.Grammar(k)
		fmt.Fprintf(&b, "  %-60s %s\n", g.Usage(), g.Summary)
	}
	return b.String()
}
