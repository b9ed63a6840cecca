package uistate

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	rawslog "log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmu-sei/cite.go/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(rawslog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)
	return NewService(storage, testLogger()), dir
}

func TestEveryMutationRewritesTheWholeBlob(t *testing.T) {
	svc, dir := newTestService(t)

	require.NoError(t, svc.SetTheme("dark"))
	require.NoError(t, svc.SetEvaluation("e1"))
	require.NoError(t, svc.SetItemExpanded("item-1"))
	require.NoError(t, svc.SetMoveNumber("e1", 3))
	require.NoError(t, svc.SetSection("e1", "scoresheet"))
	require.NoError(t, svc.SetSubmissionType("e1", "team"))
	require.NoError(t, svc.SetTeam("e1", "t1"))

	// A fresh service over the same directory sees everything.
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)
	reloaded := NewService(storage, testLogger())

	assert.Equal(t, "dark", reloaded.Theme())
	assert.Equal(t, "e1", reloaded.Evaluation())
	assert.True(t, reloaded.IsItemExpanded("item-1"))
	assert.Equal(t, 3, reloaded.MoveNumber("e1"))
	assert.Equal(t, "scoresheet", reloaded.Section("e1"))
	assert.Equal(t, "team", reloaded.SubmissionType("e1"))
	assert.Equal(t, "t1", reloaded.Team("e1"))
}

func TestClearingTheEvaluationPersistsTheBlankSentinel(t *testing.T) {
	svc, dir := newTestService(t)

	require.NoError(t, svc.SetEvaluation("e1"))
	require.NoError(t, svc.SetEvaluation(""))
	assert.Equal(t, "", svc.Evaluation())

	raw, err := os.ReadFile(filepath.Join(dir, Key+".json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"selectedEvaluation":"blank"`)
}

func TestCollapseRemovesOnlyTheNamedItem(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.SetItemExpanded("a"))
	require.NoError(t, svc.SetItemExpanded("b"))
	require.NoError(t, svc.SetItemExpanded("a")) // idempotent
	require.NoError(t, svc.SetItemCollapsed("a"))

	assert.False(t, svc.IsItemExpanded("a"))
	assert.True(t, svc.IsItemExpanded("b"))
	require.NoError(t, svc.SetItemCollapsed("missing")) // no-op
}

func TestUnreadableBlobYieldsZeroState(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	require.NoError(t, err)
	require.NoError(t, storage.Write(Key, []byte("{not json")))

	svc := NewService(storage, testLogger())
	assert.Equal(t, "", svc.Theme())
	assert.Equal(t, "", svc.Evaluation())
	assert.Equal(t, 0, svc.MoveNumber("e1"))
}

func TestMissingBlobYieldsZeroState(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, "", svc.Theme())
	assert.False(t, svc.IsItemExpanded("anything"))
}
