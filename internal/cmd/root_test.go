package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvmgen/cli/internal/output"
	"github.com/jvmgen/cli/internal/testutil"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("JVMGEN_CONFIG", "")

	var buf bytes.Buffer
	output.SetOutput(&buf)
	t.Cleanup(func() { output.SetOutput(nil) })

	c := NewRootCmd()
	c.SetArgs(args)
	c.SetOut(&bytes.Buffer{})
	c.SetErr(&bytes.Buffer{})

	err := c.Execute()
	return buf.String(), err
}

func TestNewRootCmd(t *testing.T) {
	c := NewRootCmd()

	assert.Equal(t, "jvmgen", c.Use)
	for _, flag := range []string{"config", "workspace", "verbose", "timestamps"} {
		assert.NotNil(t, c.PersistentFlags().Lookup(flag), flag)
	}

	for _, name := range []string{"generate", "g", "config", "versions", "version"} {
		sub, _, err := c.Find([]string{name})
		require.NoError(t, err, name)
		assert.NotEqual(t, c, sub, name)
	}
}

func TestRootGenerateWithConfigFile(t *testing.T) {
	dir := testutil.MavenWorkspace(t)
	configFile := testutil.WriteFile(t, t.TempDir(), "config.yaml",
		"defaults:\n  groupId: io.shop\n  projectVersion: 2.1.0\nformat:\n  xmlIndent: 4\n")

	out, err := execute(t, "--config", configFile, "-w", dir, "generate", "application", "cart")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated")

	pom := testutil.ReadFile(t, dir, "nx-maven/cart/pom.xml")
	assert.Contains(t, pom, "<groupId>io.shop</groupId>")
	assert.Contains(t, pom, "<version>2.1.0</version>")
	assert.Contains(t, pom, "\n    <modelVersion>")
}

func TestRootFlagOverridesConfig(t *testing.T) {
	dir := testutil.MavenWorkspace(t)
	configFile := testutil.WriteFile(t, t.TempDir(), "config.yaml", "defaults:\n  groupId: io.shop\n")

	_, err := execute(t, "--config", configFile, "-w", dir, "g", "app", "cart", "--group-id", "com.flag")
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, dir, "nx-maven/cart/pom.xml"), "<groupId>com.flag</groupId>")
}

func TestRootInvalidConfigFileIsIgnored(t *testing.T) {
	configFile := testutil.WriteFile(t, t.TempDir(), "config.yaml", "defaults: [unclosed\n")

	out, err := execute(t, "--config", configFile, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "jvmgen version")
}
