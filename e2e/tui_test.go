//go:build e2e && unix

package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCatalogLoads(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	feed := NewFeedServer(t)
	_, err := tf.CreateTestWorkspace(feed.URL)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("Showing 3 of 3 tools"), "All tools should be visible")

	for _, name := range []string{"Copilot", "Scribe", "Pixel", "Pair programmer in your editor"} {
		require.True(t, tf.SeePlain(name), "Should show %s", name)
	}
	require.Equal(t, 1, feed.Requests(), "Catalog is fetched once at startup")
}

func TestFailurePanelAndRetry(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	feed := NewFeedServer(t)
	feed.Respond(http.StatusInternalServerError, "unavailable")
	_, err := tf.CreateTestWorkspace(feed.URL)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("Error Loading Tools"), "Failure panel should replace the list")
	require.True(t, tf.SeePlain("Failed to load AI tools. Please try again later."))
	require.True(t, tf.SeePlain("Try Again"))

	feed.Respond(http.StatusOK, defaultCatalog)
	require.NoError(t, tf.SendKeys(KeyRetry))

	require.True(t, tf.OutputContainsPlain("Showing 3 of 3 tools", 5*time.Second), "Retry should load the catalog")
	require.Equal(t, 2, feed.Requests())
}

func TestEmptyFeedShowsFailure(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	feed := NewFeedServer(t)
	feed.Respond(http.StatusOK, `[]`)
	_, err := tf.CreateTestWorkspace(feed.URL)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("Error Loading Tools"), "An empty catalog is a failed load")
}
