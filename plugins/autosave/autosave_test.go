package autosave

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgarSahakyann/Power-point--project/internal/event"
	"github.com/EdgarSahakyann/Power-point--project/internal/plugin/plugintest"
)

func newAPI(cfg map[string]interface{}) *plugintest.API {
	api := plugintest.New()
	api.Config["autosave"] = cfg
	return api
}

func modify(api *plugintest.API, n int) {
	for i := 0; i < n; i++ {
		api.DispatchEvent(event.TypeDeckModified, event.DeckModifiedData{Description: "create"})
	}
}

func TestDisabledByDefault(t *testing.T) {
	api := newAPI(nil)
	p := New()
	require.NoError(t, p.Initialize(api))

	modify(api, 10)
	require.NoError(t, p.Shutdown())
	assert.Empty(t, api.Saved)
	assert.Equal(t, 0, api.Events.HandlerCount(event.TypeDeckModified))
}

func TestSavesEveryN(t *testing.T) {
	api := newAPI(map[string]interface{}{"enabled": true, "path": "deck.auto.json", "every": 3})
	p := New()
	require.NoError(t, p.Initialize(api))

	modify(api, 7)
	assert.Equal(t, []string{"deck.auto.json", "deck.auto.json"}, api.Saved)
	assert.Equal(t, 2, p.Saves())

	require.NoError(t, p.Shutdown())
	assert.Len(t, api.Saved, 3, "shutdown flushes the pending modification")
}

func TestExplicitSaveResetsCounter(t *testing.T) {
	api := newAPI(map[string]interface{}{"enabled": true, "every": 2})
	p := New()
	require.NoError(t, p.Initialize(api))

	modify(api, 1)
	api.DispatchEvent(event.TypeDeckSaved, event.DeckSavedData{FilePath: "mine.json"})
	modify(api, 1)
	assert.Empty(t, api.Saved)

	require.NoError(t, p.Shutdown())
	assert.Equal(t, []string{defaultPath}, api.Saved)
}

func TestInvalidConfigFallsBack(t *testing.T) {
	api := newAPI(map[string]interface{}{"enabled": true, "path": 42, "every": -1})
	p := New()
	require.NoError(t, p.Initialize(api))
	assert.Equal(t, defaultPath, p.path)
	assert.Equal(t, defaultEvery, p.every)
}

func TestFailedSaveKeepsPending(t *testing.T) {
	api := newAPI(map[string]interface{}{"enabled": true, "every": 1})
	api.SaveErr = errors.New("read-only file system")
	p := New()
	require.NoError(t, p.Initialize(api))

	modify(api, 2)
	assert.Equal(t, 0, p.Saves())

	api.SaveErr = nil
	require.NoError(t, p.Shutdown())
	assert.Len(t, api.Saved, 1)
}
