// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Deck events
	TypeDeckModified // A command changed the deck (execute, undo or redo)
	TypeDeckLoaded   // A deck file replaced the store contents
	TypeDeckSaved    // The deck was written to disk

	// History events
	TypeHistoryChanged // The undo or redo stack changed

	// Session lifecycle
	TypeSessionReady // Fired once the REPL is about to read its first line
	TypeSessionQuit  // Fired just before the REPL returns

	TypeThemeChanged // Fired when the preview theme is changed
)

var typeNames = map[Type]string{
	TypeUnknown:        "unknown",
	TypeDeckModified:   "deck-modified",
	TypeDeckLoaded:     "deck-loaded",
	TypeDeckSaved:      "deck-saved",
	TypeHistoryChanged: "history-changed",
	TypeSessionReady:   "session-ready",
	TypeSessionQuit:    "session-quit",
	TypeThemeChanged:   "theme-changed",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// Action says how a command reached the deck.
type Action int

const (
	ActionExecute Action = iota
	ActionUndo
	ActionRedo
)

func (a Action) String() string {
	switch a {
	case ActionUndo:
		return "undo"
	case ActionRedo:
		return "redo"
	default:
		return "execute"
	}
}

// DeckModifiedData describes the command that changed the deck.
type DeckModifiedData struct {
	Description string
	Action      Action
	SlideCount  int
}

// DeckLoadedData carries the file a deck was read from.
type DeckLoadedData struct {
	FilePath   string
	SlideCount int
}

// DeckSavedData carries the file a deck was written to.
type DeckSavedData struct {
	FilePath string
}

// HistoryChangedData reports the stack depths after a change.
type HistoryChangedData struct {
	UndoCount int
	RedoCount int
}

// ThemeChangedData carries the newly active theme name.
type ThemeChangedData struct {
	Name string
}
