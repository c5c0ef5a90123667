package ioevent

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpseq/dafsa-privacy/event"
)

func TestReadCSVGroupsByCase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.csv")
	content := "CaseID,Activity,Timestamp\n" +
		"1,A,2024-01-01T00:00:00Z\n" +
		"2,A,2024-01-01T00:05:00Z\n" +
		"1,B,2024-01-01T00:02:00Z\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cases, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "1", cases[0].CaseID)
	assert.Len(t, cases[0].Events, 2)
	assert.Equal(t, "2", cases[1].CaseID)
	assert.Len(t, cases[1].Events, 1)
}

func TestReadCSVRejectsBadHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.csv")
	require.NoError(t, os.WriteFile(path, []byte("A,B,C\n1,2,3\n"), 0o644))

	_, err := ReadCSV(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, event.ErrSchemaError)
}

func TestReadCSVRejectsBadTimestamp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.csv")
	content := "CaseID,Activity,Timestamp\n1,A,not-a-time\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadCSV(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, event.ErrSchemaError)
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV("/nonexistent/path/log.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, event.ErrIOError)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")
	rows := []event.OutputRow{
		{CaseID: "tok-1", Activity: "A", Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, WriteCSV(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Case ID,Activity,Timestamp")
	assert.Contains(t, string(data), "tok-1,A,2024-01-01T00:00:00Z")
}
