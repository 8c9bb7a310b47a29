package logger

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "warn"}, &buf)
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "logger_test.go")
}

func TestTagFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"History"}}, &buf)
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })

	DebugTagf("history", "dropped")
	DebugTagf("parser", "kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "tag=parser")
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"command"}}, &buf)
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })

	Infof("untagged")
	InfoTagf("command", "tagged")

	out := buf.String()
	assert.NotContains(t, out, "untagged")
	assert.Contains(t, out, "tagged")
}

func TestDisabledFiles(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledFiles: []string{"logger_test.go"}}, &buf)
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })

	Errorf("from the test file")
	assert.NotContains(t, buf.String(), "from the test file")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{"debug", true, "DEBUG"},
		{"WARNING", true, "WARN"},
		{"err", true, "ERROR"},
		{"", true, "INFO"},
		{"loud", false, "INFO"},
	}
	for _, tt := range tests {
		level, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, level.String(), tt.in)
	}
}
