package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relcheck/internal/ir"
	"github.com/roach88/relcheck/internal/loader"
)

const (
	chainRelation    = "{a, b, c}\n{(a, b), (b, c)}\n"
	identityRelation = "{a, b}\n{(a, a), (b, b)}\n"
)

// writeFile writes content to dir/name and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs cmd with args and returns stdout and stderr.
func execute(cmd *cobra.Command, stdin string, args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// emptyConfig writes a config file with no overrides so root command tests
// never pick up a relcheck.yaml from the working tree.
func emptyConfig(t *testing.T) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "relcheck.yaml", "format: text\n")
}

// mustParse parses a two-line relation.
func mustParse(t *testing.T, text string) ir.Relation {
	t.Helper()
	rel, err := loader.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return rel
}
