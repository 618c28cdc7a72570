package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintVersionText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintVersion(&buf, false))
	assert.Contains(t, buf.String(), "kyanite v"+Version)
	assert.Contains(t, buf.String(), "Go Version:")
}

func TestPrintVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintVersion(&buf, true))

	var info VersionInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Platform)
}
