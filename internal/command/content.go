package command

import (
	"fmt"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// AddText appends a text run to a slide.
type AddText struct {
	env      *Env
	slideID  int
	text     deck.Text
	index    int
	executed bool
}

// NewAddText creates the command.
func NewAddText(env *Env, slideID int, text deck.Text) *AddText {
	return &AddText{env: env, slideID: slideID, text: text, index: -1}
}

func (c *AddText) Execute() error {
	if c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil
	}
	c.index = slide.AddText(c.text)
	c.executed = true
	logger.DebugTagf("command", "added text to slide %d at %d", c.slideID, c.index)
	c.env.printf("Added text to slide %d at index %d", c.slideID, c.index)
	return nil
}

func (c *AddText) Undo() error {
	if !c.executed {
		return nil
	}
	c.executed = false
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil
	}
	if _, err := slide.TakeText(c.index); err != nil {
		c.env.swallow("undo addtext", err)
		return nil
	}
	c.env.printf("Undo: removed text at index %d from slide %d", c.index, c.slideID)
	return nil
}

func (c *AddText) Undoable() bool { return true }

func (c *AddText) Description() string {
	return fmt.Sprintf("add text %q to slide %d", c.text.Content, c.slideID)
}

// AddShape appends a shape built by the shape factory. The shape taken back
// by undo is kept, so redo restores the very same shape.
type AddShape struct {
	env      *Env
	slideID  int
	kind     string
	scale    float64
	shape    deck.Shape
	index    int
	executed bool
}

// NewAddShape creates the command.
func NewAddShape(env *Env, slideID int, kind string, scale float64) *AddShape {
	return &AddShape{env: env, slideID: slideID, kind: kind, scale: scale, index: -1}
}

func (c *AddShape) Execute() error {
	if c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil
	}
	if c.shape == nil {
		shape, err := c.env.Shapes().Create(c.kind, c.scale)
		if err != nil {
			c.env.swallow("addshape", err)
			return nil
		}
		c.shape = shape
	}
	c.index = slide.AddShape(c.shape)
	c.executed = true
	logger.DebugTagf("command", "added %s to slide %d at %d", c.shape.Kind(), c.slideID, c.index)
	c.env.printf("Added shape %s to slide %d at index %d", c.shape.Kind(), c.slideID, c.index)
	return nil
}

func (c *AddShape) Undo() error {
	if !c.executed {
		return nil
	}
	c.executed = false
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil
	}
	shape, err := slide.TakeShape(c.index)
	if err != nil {
		c.env.swallow("undo addshape", err)
		return nil
	}
	c.shape = shape
	c.env.printf("Undo: removed shape at index %d from slide %d", c.index, c.slideID)
	return nil
}

func (c *AddShape) Undoable() bool { return true }

func (c *AddShape) Description() string {
	return fmt.Sprintf("add %s(%g) to slide %d", c.kind, c.scale, c.slideID)
}

// RemoveText takes a text run out of a slide and reinserts it on undo.
type RemoveText struct {
	env      *Env
	slideID  int
	index    int
	removed  deck.Text
	executed bool
}

// NewRemoveText creates the command.
func NewRemoveText(env *Env, slideID, index int) *RemoveText {
	return &RemoveText{env: env, slideID: slideID, index: index}
}

func (c *RemoveText) Execute() error {
	if c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil
	}
	t, err := slide.TakeText(c.index)
	if err != nil {
		c.env.swallow("removetext", err)
		return nil
	}
	c.removed = t
	c.executed = true
	c.env.printf("Removed text at index %d from slide %d", c.index, c.slideID)
	return nil
}

func (c *RemoveText) Undo() error {
	if !c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil
	}
	if err := slide.InsertText(c.index, c.removed); err != nil {
		c.env.swallow("undo removetext", err)
		return nil
	}
	c.executed = false
	c.env.printf("Undo: reinserted text at index %d on slide %d", c.index, c.slideID)
	return nil
}

func (c *RemoveText) Undoable() bool { return true }

func (c *RemoveText) Description() string {
	return fmt.Sprintf("remove text %d from slide %d", c.index, c.slideID)
}

// RemoveShape takes a shape out of a slide, holding ownership until undo
// hands it back.
type RemoveShape struct {
	env      *Env
	slideID  int
	index    int
	removed  deck.Shape
	executed bool
}

// NewRemoveShape creates the command.
func NewRemoveShape(env *Env, slideID, index int) *RemoveShape {
	return &RemoveShape{env: env, slideID: slideID, index: index}
}

func (c *RemoveShape) Execute() error {
	if c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil
	}
	shape, err := slide.TakeShape(c.index)
	if err != nil {
		c.env.swallow("removeshape", err)
		return nil
	}
	c.removed = shape
	c.executed = true
	c.env.printf("Removed shape at index %d from slide %d", c.index, c.slideID)
	return nil
}

func (c *RemoveShape) Undo() error {
	if !c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil
	}
	if err := slide.InsertShape(c.index, c.removed); err != nil {
		c.env.swallow("undo removeshape", err)
		return nil
	}
	c.removed = nil
	c.executed = false
	c.env.printf("Undo: reinserted shape at index %d on slide %d", c.index, c.slideID)
	return nil
}

func (c *RemoveShape) Undoable() bool { return true }

func (c *RemoveShape) Description() string {
	return fmt.Sprintf("remove shape %d from slide %d", c.index, c.slideID)
}

// TextEdit maps the current value of a text run to its new value.
type TextEdit func(old deck.Text) deck.Text

// MergeText returns an edit overwriting only the fields set in changes.
func MergeText(changes deck.Text) TextEdit {
	return func(old deck.Text) deck.Text { return old.Merge(changes) }
}

// ModifyText rewrites a text run. The whole previous value is snapshotted
// and restored verbatim on undo.
type ModifyText struct {
	env      *Env
	slideID  int
	index    int
	edit     TextEdit
	old      deck.Text
	executed bool
}

// NewModifyText creates the command.
func NewModifyText(env *Env, slideID, index int, edit TextEdit) *ModifyText {
	return &ModifyText{env: env, slideID: slideID, index: index, edit: edit}
}

func (c *ModifyText) Execute() error {
	if c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil
	}
	old, err := slide.TextAt(c.index)
	if err != nil {
		c.env.swallow("modtext", err)
		return nil
	}
	if err := slide.ReplaceText(c.index, c.edit(old)); err != nil {
		c.env.swallow("modtext", err)
		return nil
	}
	c.old = old
	c.executed = true
	c.env.printf("Modified text at index %d on slide %d", c.index, c.slideID)
	return nil
}

func (c *ModifyText) Undo() error {
	if !c.executed {
		return nil
	}
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil
	}
	if err := slide.ReplaceText(c.index, c.old); err != nil {
		c.env.swallow("undo modtext", err)
		return nil
	}
	c.executed = false
	c.env.printf("Undo: restored text at index %d on slide %d", c.index, c.slideID)
	return nil
}

func (c *ModifyText) Undoable() bool { return true }

func (c *ModifyText) Description() string {
	return fmt.Sprintf("modify text %d on slide %d", c.index, c.slideID)
}

// ShapeEdit is a forward transformation of a shape together with its
// inverse.
type ShapeEdit struct {
	Forward func(deck.Shape)
	Inverse func(deck.Shape)
}

// ShapePlan builds the edit for a shape's current state. It runs at execute
// time so the inverse can capture the value being replaced.
type ShapePlan func(current deck.Shape) ShapeEdit

// ScaleTo returns a plan setting a shape's scale.
func ScaleTo(scale float64) ShapePlan {
	return func(current deck.Shape) ShapeEdit {
		old := current.Scale()
		return ShapeEdit{
			Forward: func(s deck.Shape) { s.SetScale(scale) },
			Inverse: func(s deck.Shape) { s.SetScale(old) },
		}
	}
}

// ModifyShape applies a planned transformation to a shape in place.
type ModifyShape struct {
	env      *Env
	slideID  int
	index    int
	plan     ShapePlan
	desc     string
	edit     ShapeEdit
	executed bool
}

// NewModifyShape creates the command. desc names the transformation.
func NewModifyShape(env *Env, slideID, index int, plan ShapePlan, desc string) *ModifyShape {
	return &ModifyShape{env: env, slideID: slideID, index: index, plan: plan, desc: desc}
}

func (c *ModifyShape) Execute() error {
	if c.executed {
		return nil
	}
	shape, ok := c.target("modify shape")
	if !ok {
		return nil
	}
	c.edit = c.plan(shape)
	c.edit.Forward(shape)
	c.executed = true
	c.env.printf("Modified shape at index %d on slide %d", c.index, c.slideID)
	return nil
}

func (c *ModifyShape) Undo() error {
	if !c.executed {
		return nil
	}
	shape, ok := c.target("undo modify shape")
	if !ok {
		return nil
	}
	c.edit.Inverse(shape)
	c.executed = false
	c.env.printf("Undo: reverted shape at index %d on slide %d", c.index, c.slideID)
	return nil
}

func (c *ModifyShape) target(op string) (deck.Shape, bool) {
	slide, ok := c.env.slide(c.slideID)
	if !ok {
		return nil, false
	}
	shape, err := slide.ShapeAt(c.index)
	if err != nil {
		c.env.swallow(op, err)
		return nil, false
	}
	return shape, true
}

func (c *ModifyShape) Undoable() bool { return true }

func (c *ModifyShape) Description() string {
	return fmt.Sprintf("%s shape %d on slide %d", c.desc, c.index, c.slideID)
}
