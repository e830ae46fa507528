package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "snipcomp ")
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "snipcomp version unknown", versionString(nil, false))
	assert.Equal(t, "snipcomp version unknown", versionString(&debug.BuildInfo{}, true))

	info := &debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Version: "v0.3.0"}}
	assert.Equal(t, "snipcomp v0.3.0 (go1.25.1)", versionString(info, true))
}
