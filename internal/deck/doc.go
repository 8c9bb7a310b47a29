// Package deck holds the slide deck data model: slides, their text runs and
// shapes, the factories that create them, and the Store that orders them.
//
// Every structural mutation of a deck is expected to go through a command
// (see package command) so that it has a recorded inverse. The types here
// only enforce structural invariants:
//
//   - slide ids are handed out by a SlideFactory and never reused,
//   - the Store keeps its positional order and its id index consistent,
//   - a Shape value belongs to exactly one slide at a time; TakeShape moves
//     it out and InsertShape moves it back in.
//
// Structural encodings (SlideEncoding, ShapeEncoding) are format-agnostic
// snapshots used for persistence, cloning and undo.
package deck
