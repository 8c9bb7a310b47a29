package command

import (
	"fmt"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// CreateSlide appends a new slide. The slide built on first execution is
// kept across undo so that a redo restores the same id and later commands
// in the redo stack still address it.
type CreateSlide struct {
	env                   *Env
	title, content, theme string
	created               *deck.Slide
	executed              bool
}

// NewCreateSlide creates the command.
func NewCreateSlide(env *Env, title, content, theme string) *CreateSlide {
	return &CreateSlide{env: env, title: title, content: content, theme: theme}
}

func (c *CreateSlide) Execute() error {
	if c.executed {
		return nil
	}
	if c.created == nil {
		c.created = c.env.Slides.New(c.title, c.content, c.theme)
	}
	if err := c.env.Store.Add(c.created); err != nil {
		c.env.swallow("create", err)
		return nil
	}
	c.executed = true
	logger.DebugTagf("command", "created slide %d", c.created.ID())
	c.env.printf("Created slide with ID: %d", c.created.ID())
	return nil
}

func (c *CreateSlide) Undo() error {
	if !c.executed {
		return nil
	}
	c.env.Store.RemoveByID(c.created.ID())
	c.executed = false
	c.env.printf("Undo: removed slide with ID: %d", c.created.ID())
	return nil
}

func (c *CreateSlide) Undoable() bool { return true }

func (c *CreateSlide) Description() string {
	return fmt.Sprintf("create slide %q", c.title)
}

// CreatedID returns the id of the created slide, or 0 before execution.
func (c *CreateSlide) CreatedID() int {
	if c.created == nil {
		return 0
	}
	return c.created.ID()
}

// DeleteSlide removes a slide. Execute snapshots the slide's structural
// encoding and position; undo rebuilds it with its original id at its
// original position.
type DeleteSlide struct {
	env      *Env
	id       int
	snapshot deck.SlideEncoding
	position int
	executed bool
}

// NewDeleteSlide creates the command.
func NewDeleteSlide(env *Env, id int) *DeleteSlide {
	return &DeleteSlide{env: env, id: id}
}

func (c *DeleteSlide) Execute() error {
	if c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.id)
	if !ok {
		return nil
	}
	c.snapshot = slide.Encode()
	c.position = c.env.Store.IndexOf(c.id)
	c.env.Store.RemoveByID(c.id)
	c.executed = true
	logger.DebugTagf("command", "deleted slide %d at position %d", c.id, c.position)
	c.env.printf("Deleted slide %d", c.id)
	return nil
}

func (c *DeleteSlide) Undo() error {
	if !c.executed {
		return nil
	}
	restored, err := c.env.Slides.FromEncoding(c.snapshot)
	if err != nil {
		c.env.swallow("undo delete", err)
		return nil
	}
	pos := c.position
	if pos > c.env.Store.Len() {
		pos = c.env.Store.Len()
	}
	if err := c.env.Store.Insert(pos, restored); err != nil {
		c.env.swallow("undo delete", err)
		return nil
	}
	c.executed = false
	c.env.printf("Undo: restored deleted slide %d", c.id)
	return nil
}

func (c *DeleteSlide) Undoable() bool { return true }

func (c *DeleteSlide) Description() string {
	return fmt.Sprintf("delete slide %d", c.id)
}

// DuplicateSlide appends a copy of a slide with a fresh id. Shapes are
// cloned through the shape factory.
type DuplicateSlide struct {
	env      *Env
	sourceID int
	created  *deck.Slide
	executed bool
}

// NewDuplicateSlide creates the command.
func NewDuplicateSlide(env *Env, sourceID int) *DuplicateSlide {
	return &DuplicateSlide{env: env, sourceID: sourceID}
}

func (c *DuplicateSlide) Execute() error {
	if c.executed {
		return nil
	}
	if c.created == nil {
		src, ok := c.env.slide(c.sourceID)
		if !ok {
			return nil
		}
		dup, err := c.env.Slides.Duplicate(src)
		if err != nil {
			c.env.swallow("duplicate", err)
			return nil
		}
		c.created = dup
	}
	if err := c.env.Store.Add(c.created); err != nil {
		c.env.swallow("duplicate", err)
		return nil
	}
	c.executed = true
	c.env.printf("Duplicated slide %d as %d", c.sourceID, c.created.ID())
	return nil
}

func (c *DuplicateSlide) Undo() error {
	if !c.executed {
		return nil
	}
	c.env.Store.RemoveByID(c.created.ID())
	c.executed = false
	c.env.printf("Undo: removed duplicated slide %d", c.created.ID())
	return nil
}

func (c *DuplicateSlide) Undoable() bool { return true }

func (c *DuplicateSlide) Description() string {
	return fmt.Sprintf("duplicate slide %d", c.sourceID)
}

// RenameSlide changes a slide's title.
type RenameSlide struct {
	env      *Env
	id       int
	newTitle string
	oldTitle string
	executed bool
}

// NewRenameSlide creates the command.
func NewRenameSlide(env *Env, id int, title string) *RenameSlide {
	return &RenameSlide{env: env, id: id, newTitle: title}
}

func (c *RenameSlide) Execute() error {
	if c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.id)
	if !ok {
		return nil
	}
	c.oldTitle = slide.Title()
	slide.SetTitle(c.newTitle)
	c.executed = true
	c.env.printf("Renamed slide %d from '%s' to '%s'", c.id, c.oldTitle, c.newTitle)
	return nil
}

func (c *RenameSlide) Undo() error {
	if !c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.id)
	if !ok {
		return nil
	}
	slide.SetTitle(c.oldTitle)
	c.executed = false
	c.env.printf("Undo: renamed slide %d back to '%s'", c.id, c.oldTitle)
	return nil
}

func (c *RenameSlide) Undoable() bool { return true }

func (c *RenameSlide) Description() string {
	return fmt.Sprintf("rename slide %d to %q", c.id, c.newTitle)
}

// MoveSlide relocates the slide at one position to another.
type MoveSlide struct {
	env      *Env
	from, to int
	executed bool
}

// NewMoveSlide creates the command. Positions are 0-based.
func NewMoveSlide(env *Env, from, to int) *MoveSlide {
	return &MoveSlide{env: env, from: from, to: to}
}

func (c *MoveSlide) Execute() error {
	if c.executed {
		return nil
	}
	if err := c.env.Store.Move(c.from, c.to); err != nil {
		c.env.swallow("move", err)
		return nil
	}
	c.executed = true
	c.env.printf("Moved slide from %d to %d", c.from, c.to)
	return nil
}

func (c *MoveSlide) Undo() error {
	if !c.executed {
		return nil
	}
	if err := c.env.Store.Move(c.to, c.from); err != nil {
		c.env.swallow("undo move", err)
		return nil
	}
	c.executed = false
	c.env.printf("Undo: moved slide back from %d to %d", c.to, c.from)
	return nil
}

func (c *MoveSlide) Undoable() bool { return true }

func (c *MoveSlide) Description() string {
	return fmt.Sprintf("move slide %d -> %d", c.from, c.to)
}

// ReorderSlide moves a slide one position up or down. At the edge of the
// deck it is a controlled no-op and stays unexecuted.
type ReorderSlide struct {
	env      *Env
	id       int
	up       bool
	oldPos   int
	newPos   int
	executed bool
}

// NewReorderSlide creates the command.
func NewReorderSlide(env *Env, id int, up bool) *ReorderSlide {
	return &ReorderSlide{env: env, id: id, up: up}
}

func (c *ReorderSlide) Execute() error {
	if c.executed {
		return nil
	}
	pos := c.env.Store.IndexOf(c.id)
	if pos < 0 {
		logger.Warnf("command: reorder: %v: %d", deck.ErrSlideNotFound, c.id)
		c.env.printf("Slide not found: %d", c.id)
		return nil
	}
	target := pos + 1
	if c.up {
		target = pos - 1
	}
	if target < 0 || target >= c.env.Store.Len() {
		logger.DebugTagf("command", "reorder of slide %d at edge ignored", c.id)
		c.env.printf("Slide %d is already at the %s", c.id, edgeName(c.up))
		return nil
	}
	if err := c.env.Store.Move(pos, target); err != nil {
		c.env.swallow("reorder", err)
		return nil
	}
	c.oldPos, c.newPos = pos, target
	c.executed = true
	c.env.printf("Moved slide %d from index %d to %d", c.id, pos, target)
	return nil
}

func (c *ReorderSlide) Undo() error {
	if !c.executed {
		return nil
	}
	if err := c.env.Store.Move(c.newPos, c.oldPos); err != nil {
		c.env.swallow("undo reorder", err)
		return nil
	}
	c.executed = false
	c.env.printf("Undo: moved slide %d back to index %d", c.id, c.oldPos)
	return nil
}

// Executed reports whether the last Execute actually moved the slide.
func (c *ReorderSlide) Executed() bool { return c.executed }

func (c *ReorderSlide) Undoable() bool { return true }

func (c *ReorderSlide) Description() string {
	dir := "down"
	if c.up {
		dir = "up"
	}
	return fmt.Sprintf("reorder slide %d %s", c.id, dir)
}

func edgeName(up bool) string {
	if up {
		return "top"
	}
	return "bottom"
}

// ClearSlide removes every text run and shape from a slide. Shapes are
// snapshotted as clones so the restored slide never aliases a live shape.
type ClearSlide struct {
	env      *Env
	id       int
	texts    []deck.Text
	shapes   []deck.Shape
	executed bool
}

// NewClearSlide creates the command.
func NewClearSlide(env *Env, id int) *ClearSlide {
	return &ClearSlide{env: env, id: id}
}

func (c *ClearSlide) Execute() error {
	if c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.id)
	if !ok {
		return nil
	}
	clones := make([]deck.Shape, 0, slide.ShapeCount())
	for _, s := range slide.Shapes() {
		clone, err := c.env.Shapes().Clone(s)
		if err != nil {
			c.env.swallow("clear", err)
			return nil
		}
		clones = append(clones, clone)
	}
	c.texts = slide.ClearTexts()
	slide.ClearShapes()
	c.shapes = clones
	c.executed = true
	c.env.printf("Cleared slide %d", c.id)
	return nil
}

func (c *ClearSlide) Undo() error {
	if !c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.id)
	if !ok {
		return nil
	}
	for _, t := range c.texts {
		slide.AddText(t)
	}
	for _, s := range c.shapes {
		slide.AddShape(s)
	}
	c.texts, c.shapes = nil, nil
	c.executed = false
	c.env.printf("Undo: restored slide %d", c.id)
	return nil
}

func (c *ClearSlide) Undoable() bool { return true }

func (c *ClearSlide) Description() string {
	return fmt.Sprintf("clear slide %d", c.id)
}
