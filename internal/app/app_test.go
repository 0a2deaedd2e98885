package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexamibco/tudu/internal/app"
)

func TestNewStartsWithEmptyList(t *testing.T) {
	a, err := app.New(&app.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, 0, a.Tasks.Len())
}

func TestSecondInstanceFailsToLock(t *testing.T) {
	dir := t.TempDir()

	first, err := app.New(&app.Config{DataDir: dir})
	require.NoError(t, err)
	defer first.Close()

	_, err = app.New(&app.Config{DataDir: dir})
	assert.Error(t, err)
}

func TestLockReleasedOnClose(t *testing.T) {
	dir := t.TempDir()

	first, err := app.New(&app.Config{DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := app.New(&app.Config{DataDir: dir})
	require.NoError(t, err)
	defer second.Close()
}
