package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(s *Store) []int {
	var out []int
	for _, slide := range s.All() {
		out = append(out, slide.ID())
	}
	return out
}

func newFilledStore(t *testing.T, n int) (*Store, *SlideFactory) {
	t.Helper()
	f := NewSlideFactory(nil)
	s := NewStore()
	for i := 0; i < n; i++ {
		require.NoError(t, s.Add(f.New("t", "c", "light")))
	}
	return s, f
}

func TestStore_AddAndGet(t *testing.T) {
	s, _ := newFilledStore(t, 3)

	assert.Equal(t, []int{1, 2, 3}, ids(s))
	slide, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, 2, slide.ID())

	_, ok = s.Get(42)
	assert.False(t, ok)
}

func TestStore_AddDuplicateID(t *testing.T) {
	s, _ := newFilledStore(t, 1)
	dup := newSlide(1, "x", "", "")

	err := s.Add(dup)
	assert.True(t, errors.Is(err, ErrDuplicateID))
	assert.Equal(t, 1, s.Len())
}

func TestStore_RemoveByIDIsIdempotent(t *testing.T) {
	s, _ := newFilledStore(t, 3)

	assert.True(t, s.RemoveByID(2))
	assert.Equal(t, []int{1, 3}, ids(s))

	assert.False(t, s.RemoveByID(2))
	assert.False(t, s.RemoveByID(99))
	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(2)
	assert.False(t, ok)
}

func TestStore_IDsNeverReused(t *testing.T) {
	s, f := newFilledStore(t, 2)
	s.RemoveByID(2)

	next := f.New("new", "", "")
	assert.Equal(t, 3, next.ID())
}

func TestStore_Move(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []int
		wantErr  bool
	}{
		{"forward", 0, 2, []int{2, 3, 1, 4}, false},
		{"backward", 3, 1, []int{1, 4, 2, 3}, false},
		{"same", 1, 1, []int{1, 2, 3, 4}, false},
		{"from out of range", 4, 0, []int{1, 2, 3, 4}, true},
		{"negative to", 0, -1, []int{1, 2, 3, 4}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newFilledStore(t, 4)
			err := s.Move(tt.from, tt.to)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrIndexOutOfRange))
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, ids(s))
			// Lookup by id still agrees with the positional order.
			for pos, id := range ids(s) {
				assert.Equal(t, pos, s.IndexOf(id))
				slide, ok := s.Get(id)
				require.True(t, ok)
				assert.Equal(t, id, slide.ID())
			}
		})
	}
}

func TestStore_InsertAndClear(t *testing.T) {
	s, f := newFilledStore(t, 2)
	require.NoError(t, s.Insert(1, f.New("mid", "", "")))
	assert.Equal(t, []int{1, 3, 2}, ids(s))

	assert.Error(t, s.Insert(9, f.New("far", "", "")))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	_, ok := s.Get(1)
	assert.False(t, ok)
}
