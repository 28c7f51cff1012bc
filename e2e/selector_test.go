//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartupShowsEmptySelection(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should show countrypick title")
	require.True(t, tf.SeePlain("No country selected"), "Should start without a selection")
	require.True(t, tf.SeePlain("250 countries"), "Should report the embedded list")
}

func TestTypeNavigateAndCommit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should show countrypick title")
	require.True(t, tf.SeePlain("250 countries"), "List should load")

	require.NoError(t, tf.Type("fr"))
	require.True(t, tf.SeePlain("French Guiana"), "Should suggest names containing the query")

	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("▸"), "Highlight should preview the entry")

	require.NoError(t, tf.SendEnter())
	require.True(t, tf.SeePlain("✓"), "Enter should commit")

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(5*time.Second), "App should exit on ctrl+c")

	out, err := tf.RunCLI("selection")
	require.NoError(t, err, out)
	require.Equal(t, "FR: France", strings.TrimSpace(out))
}

func TestRestoresSelectionOnStart(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateWorkspace()
	require.NoError(t, err)

	out, err := tf.RunCLI("selection", "set", "de")
	require.NoError(t, err, out)

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should show countrypick title")
	require.True(t, tf.SeePlain("DE: Germany"), "Should restore the stored selection")
}

func TestEscapeCancelsPreview(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should show countrypick title")
	require.True(t, tf.SeePlain("250 countries"), "List should load")

	require.NoError(t, tf.Type("ger"))
	require.NoError(t, tf.Down())
	require.True(t, tf.SeePlain("DE: Germany"), "Should preview Germany")

	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyEsc))
	require.True(t, tf.SeePlain("No country selected"), "Esc should drop the preview")

	out, err := tf.RunCLI("selection")
	require.NoError(t, err, out)
	require.Equal(t, "No country selected", strings.TrimSpace(out))
}

func TestMouseClickCommits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should show countrypick title")
	require.True(t, tf.SeePlain("250 countries"), "List should load")

	// Label row sits under the two-line title
	require.NoError(t, tf.Click(2, 2))
	require.True(t, tf.SeePlain("Albania"), "Label click should open the panel")

	// Rows start under the input: Afghanistan, Åland Islands, Albania
	require.NoError(t, tf.Click(4, 6))
	require.True(t, tf.SeePlain("AL: Albania"), "Row click should commit")
}

func TestCLIListAndSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateWorkspace()
	require.NoError(t, err)

	out, err := tf.RunCLI("search", "de")
	require.NoError(t, err, out)
	require.True(t, strings.HasPrefix(out, "DE\tDEU\tGermany"), out)

	out, err = tf.RunCLI("list")
	require.NoError(t, err, out)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 250)
}
