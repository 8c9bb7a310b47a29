// Package script runs Lua deck scripts.
//
// A script drives the editor through a `deck` table:
//
//	deck.exec(line)      -- parse and run one command line
//	deck.slide_count()   -- number of slides
//	deck.has_slide(id)   -- whether a slide id exists
//	deck.slide_ids()     -- ids in deck order
//	deck.next_id()       -- id the next created slide receives
//
// Every undoable command a script runs is recorded, and the whole run
// becomes one history entry: undo reverts all of it, redo replays the
// recorded commands without running the script again. If the script
// fails, the commands it already ran are undone.
//
// Scripts run in a sandbox with only the base, table, string and math
// libraries; dofile, loadfile, load and loadstring are removed.
package script
