package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSystem(t *testing.T, available bool, read func() (string, error), write func(string) error) {
	t.Helper()
	oldRead, oldWrite, oldAvail := systemReadAll, systemWriteAll, systemAvailable
	systemReadAll, systemWriteAll = read, write
	systemAvailable = func() bool { return available }
	t.Cleanup(func() {
		systemReadAll, systemWriteAll, systemAvailable = oldRead, oldWrite, oldAvail
	})
}

func TestInternalClipboard(t *testing.T) {
	m := NewManager(false)
	assert.False(t, m.System())

	require.NoError(t, m.WriteAll("slide"))
	got, err := m.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "slide", got)
}

func TestSystemClipboard(t *testing.T) {
	var system string
	stubSystem(t, true,
		func() (string, error) { return system, nil },
		func(s string) error { system = s; return nil },
	)
	m := NewManager(true)
	assert.True(t, m.System())

	require.NoError(t, m.WriteAll("from editor"))
	assert.Equal(t, "from editor", system)

	system = "from another app"
	got, err := m.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "from another app", got)
}

func TestSystemFailureFallsBack(t *testing.T) {
	stubSystem(t, true,
		func() (string, error) { return "", errors.New("no display") },
		func(string) error { return errors.New("no display") },
	)
	m := NewManager(true)

	require.NoError(t, m.WriteAll("kept"))
	got, err := m.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
}

func TestUnsupportedPlatform(t *testing.T) {
	stubSystem(t, false, nil, nil)
	m := NewManager(true)
	assert.False(t, m.System())
}
