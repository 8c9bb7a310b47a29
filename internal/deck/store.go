package deck

import (
	"fmt"
	"sync"
)

// Store is the ordered collection of slides. Position order is display
// order; the id index is kept in step with it on every mutation.
type Store struct {
	mu     sync.RWMutex
	slides []*Slide
	byID   map[int]*Slide
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[int]*Slide)}
}

// Add appends a slide at the end of the positional order.
func (s *Store) Add(slide *Slide) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(len(s.slides), slide)
}

// Insert places a slide at position pos (0 <= pos <= Len).
func (s *Store) Insert(pos int, slide *Slide) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(pos, slide)
}

func (s *Store) insertLocked(pos int, slide *Slide) error {
	if slide == nil {
		return fmt.Errorf("%w: nil slide", ErrInvalidEncoding)
	}
	if _, exists := s.byID[slide.ID()]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, slide.ID())
	}
	if pos < 0 || pos > len(s.slides) {
		return fmt.Errorf("%w: position %d (size %d)", ErrIndexOutOfRange, pos, len(s.slides))
	}
	s.slides = append(s.slides, nil)
	copy(s.slides[pos+1:], s.slides[pos:])
	s.slides[pos] = slide
	s.byID[slide.ID()] = slide
	return nil
}

// Get returns the slide with the given id.
func (s *Store) Get(id int) (*Slide, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slide, ok := s.byID[id]
	return slide, ok
}

// IndexOf returns the position of the slide with the given id, or -1.
func (s *Store) IndexOf(id int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfLocked(id)
}

func (s *Store) indexOfLocked(id int) int {
	for i, slide := range s.slides {
		if slide.ID() == id {
			return i
		}
	}
	return -1
}

// At returns the slide at position pos.
func (s *Store) At(pos int) (*Slide, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pos < 0 || pos >= len(s.slides) {
		return nil, false
	}
	return s.slides[pos], true
}

// RemoveByID removes the slide with the given id. Removing an absent id is a
// no-op and reports false. Remaining slides close the gap.
func (s *Store) RemoveByID(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pos := s.indexOfLocked(id)
	if pos < 0 {
		return false
	}
	s.slides = append(s.slides[:pos], s.slides[pos+1:]...)
	delete(s.byID, id)
	return true
}

// Move relocates the slide at position from to position to.
func (s *Store) Move(from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.slides)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: move %d -> %d (size %d)", ErrIndexOutOfRange, from, to, n)
	}
	if from == to {
		return nil
	}
	slide := s.slides[from]
	s.slides = append(s.slides[:from], s.slides[from+1:]...)
	s.slides = append(s.slides, nil)
	copy(s.slides[to+1:], s.slides[to:])
	s.slides[to] = slide
	return nil
}

// Clear removes every slide.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slides = nil
	s.byID = make(map[int]*Slide)
}

// Len returns the number of slides.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slides)
}

// All returns the slides in positional order.
func (s *Store) All() []*Slide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Slide, len(s.slides))
	copy(out, s.slides)
	return out
}

// Encode returns the structural snapshot of every slide in order.
func (s *Store) Encode() []SlideEncoding {
	slides := s.All()
	out := make([]SlideEncoding, 0, len(slides))
	for _, slide := range slides {
		out = append(out, slide.Encode())
	}
	return out
}
