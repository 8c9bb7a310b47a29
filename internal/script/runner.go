package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/EdgarSahakyann/Power-point--project/internal/command"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

const (
	// DefaultTimeout bounds one script run.
	DefaultTimeout = 5 * time.Second
	// MaxDepth bounds scripts running scripts through deck.exec("run ...").
	MaxDepth = 8
)

var (
	ErrTooDeep = errors.New("script: nesting too deep")
)

// LineParser turns a command line into a bound command.
type LineParser interface {
	Parse(line string) (command.Command, error)
}

// Runner executes Lua scripts against a deck.
type Runner struct {
	parser  LineParser
	env     *command.Env
	timeout time.Duration
	depth   int
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout overrides DefaultTimeout. Non-positive values disable it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// NewRunner creates a runner that parses deck.exec lines with p.
func NewRunner(p LineParser, env *command.Env, opts ...Option) *Runner {
	r := &Runner{parser: p, env: env, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunFile reads and runs the script at path.
func (r *Runner) RunFile(ctx context.Context, path string) (*command.Macro, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return r.Run(ctx, path, string(code))
}

// Run executes code and returns the undoable commands it ran as an
// already-executed macro. On error every recorded command is undone.
func (r *Runner) Run(ctx context.Context, name, code string) (*command.Macro, error) {
	if r.depth >= MaxDepth {
		return nil, fmt.Errorf("%w: %s", ErrTooDeep, name)
	}
	r.depth++
	defer func() { r.depth-- }()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	L := newSandbox()
	defer L.Close()
	L.SetContext(ctx)

	rec := &recording{}
	r.install(L, rec)

	logger.DebugTagf("script", "Running %s", name)
	if err := doString(L, code); err != nil {
		rec.rollback()
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	logger.DebugTagf("script", "%s ran %d undoable command(s)", name, len(rec.done))
	return command.NewRecordedMacro("run "+name, rec.done...), nil
}

func doString(L *lua.LState, code string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("lua panic: %v", rec)
		}
	}()
	return L.DoString(code)
}

// newSandbox opens only the safe standard libraries.
func newSandbox() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}

// recording collects the undoable commands a run has executed.
type recording struct {
	done []command.Command
}

func (rec *recording) rollback() {
	for i := len(rec.done) - 1; i >= 0; i-- {
		if err := rec.done[i].Undo(); err != nil {
			logger.Errorf("script: rollback of %q: %v", rec.done[i].Description(), err)
		}
	}
	rec.done = nil
}

func (r *Runner) install(L *lua.LState, rec *recording) {
	store := r.env.Store
	api := L.NewTable()
	L.SetFuncs(api, map[string]lua.LGFunction{
		"exec": func(L *lua.LState) int {
			line := strings.TrimSpace(L.CheckString(1))
			if err := r.exec(line, rec); err != nil {
				L.RaiseError("%s", err.Error())
			}
			return 0
		},
		"slide_count": func(L *lua.LState) int {
			L.Push(lua.LNumber(store.Len()))
			return 1
		},
		"has_slide": func(L *lua.LState) int {
			_, ok := store.Get(L.CheckInt(1))
			L.Push(lua.LBool(ok))
			return 1
		},
		"slide_ids": func(L *lua.LState) int {
			ids := L.NewTable()
			for _, s := range store.All() {
				ids.Append(lua.LNumber(s.ID()))
			}
			L.Push(ids)
			return 1
		},
		"next_id": func(L *lua.LState) int {
			L.Push(lua.LNumber(r.env.Slides.NextID()))
			return 1
		},
	})
	L.SetGlobal("deck", api)

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		parts := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(r.env.Out, strings.Join(parts, "\t"))
		return 0
	}))
}

func (r *Runner) exec(line string, rec *recording) error {
	cmd, err := r.parser.Parse(line)
	if err != nil {
		return err
	}
	if err := command.CheckNestable(cmd); err != nil {
		return err
	}
	if err := cmd.Execute(); err != nil {
		return err
	}
	if cmd.Undoable() {
		rec.done = append(rec.done, cmd)
	}
	return nil
}
