package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel("verbose"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("logfmt"))
}

func TestNew_JSONIncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "petclinic", Writer: &buf})

	l.With(map[string]any{"component": "pets"}).Info("pet created", map[string]any{"id": 1, "": "skip"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "pet created", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "petclinic", entry["app"])
	assert.Equal(t, "pets", entry["component"])
	assert.EqualValues(t, 1, entry["id"])
	_, hasEmpty := entry[""]
	assert.False(t, hasEmpty)
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Writer: &buf})

	l.Info("hidden", nil)
	l.Debug("hidden", nil)
	assert.Empty(t, buf.String())

	l.Warn("corrupt payload", map[string]any{"key": "petclinic_pets_v1"})
	assert.True(t, strings.Contains(buf.String(), "corrupt payload"))
	assert.True(t, strings.Contains(buf.String(), "key=petclinic_pets_v1"))
}

func TestNop_DiscardsEverything(t *testing.T) {
	l := OrNop(nil)
	l.Error("nothing", map[string]any{"a": 1})
	assert.NotNil(t, l.With(map[string]any{"x": 1}))
}
