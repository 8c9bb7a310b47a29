package persist

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EdgarSahakyann/Power-point--project/internal/deck"
	"github.com/EdgarSahakyann/Power-point--project/internal/logger"
)

// Files saves and loads decks on the local file system. The codec is chosen
// from the file extension. A Files value tracks the id of the document it
// last loaded or saved so that repeated saves keep the same id.
type Files struct {
	mu    sync.Mutex
	docID uuid.UUID
	now   func() time.Time
}

// NewFiles creates a store for a new document with a random id.
func NewFiles() *Files {
	return &Files{docID: uuid.New(), now: time.Now}
}

// DocumentID returns the id of the current document.
func (f *Files) DocumentID() uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.docID
}

// Save writes the deck to path. The file is written to a temporary sibling
// first and renamed into place.
func (f *Files) Save(store *deck.Store, path string) error {
	codec, err := CodecFor(path)
	if err != nil {
		return err
	}
	doc := Document{
		ID:      f.DocumentID().String(),
		Version: FormatVersion,
		SavedAt: f.now().UTC().Truncate(time.Second),
		Slides:  store.Encode(),
	}
	data, err := codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", codec.Name(), err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return err
	}
	logger.Infof("persist: saved %d slides to %s (%s)", len(doc.Slides), path, codec.Name())
	return nil
}

// Load replaces the deck's contents with the document at path. The deck is
// only touched once the whole document has decoded and validated.
func (f *Files) Load(store *deck.Store, slides *deck.SlideFactory, path string) error {
	codec, err := CodecFor(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := codec.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", codec.Name(), err)
	}
	if doc.Version > FormatVersion {
		return fmt.Errorf("document version %d is newer than supported version %d", doc.Version, FormatVersion)
	}

	staged := deck.NewStore()
	for i, enc := range doc.Slides {
		s, err := slides.FromEncoding(enc)
		if err != nil {
			return fmt.Errorf("slide %d: %w", i, err)
		}
		if err := staged.Add(s); err != nil {
			return fmt.Errorf("slide %d: %w", i, err)
		}
	}

	store.Clear()
	for _, s := range staged.All() {
		if err := store.Add(s); err != nil {
			return err
		}
	}

	f.mu.Lock()
	if id, err := uuid.Parse(doc.ID); err == nil {
		f.docID = id
	} else {
		f.docID = uuid.New()
	}
	f.mu.Unlock()

	logger.Infof("persist: loaded %d slides from %s (%s)", len(doc.Slides), path, codec.Name())
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
