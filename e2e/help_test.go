//go:build e2e && unix

package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	for _, want := range []string{"Usage", "list", "export", "contact", "--config"} {
		require.Contains(t, output, want)
	}
}

func TestHelpToggle(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	feed := NewFeedServer(t)
	_, err := tf.CreateTestWorkspace(feed.URL)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys(KeyHelp))
	require.True(t, tf.SeePlain("view in pager"), "Full help should list every binding")
	require.True(t, tf.SeePlain("light/dark"))
}
