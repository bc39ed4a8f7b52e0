package version

import (
	"bytes"
	"testing"

	"github.com/bokysan/sixbit/internal/version"
	"github.com/stretchr/testify/require"
)

func Test_Execute(t *testing.T) {
	defer func(tag, branch string) {
		version.GitTag, version.GitBranch = tag, branch
	}(version.GitTag, version.GitBranch)
	version.GitTag = "v9.9.9"
	version.GitBranch = ""

	buf := &bytes.Buffer{}
	cmd := &Command{Out: buf}
	require.NoError(t, cmd.Execute(nil))

	out := buf.String()
	require.Contains(t, out, "SIXBIT")
	require.Contains(t, out, "v9.9.9")
	require.Contains(t, out, "Go version")
	require.NotContains(t, out, "Git branch")
	require.Equal(t, "Version details", cmd.String())
}
