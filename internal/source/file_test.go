package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFileSourceFetch(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "employees.csv",
		"external_id,first_name,last_name,email,hourly_rate,active\n"+
			"E-1001,Ada,Lovelace,ada@example.com,25.50,true\n"+
			"E-1002,Grace,Hopper,,30,false\n")

	rows, err := NewFileSource(dir).Fetch(context.Background(), KindEmployees)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "E-1001", rows[0]["external_id"])
	assert.Equal(t, "25.50", rows[0]["hourly_rate"])
	assert.Equal(t, "", rows[1]["email"])
	assert.Equal(t, "E-1002", rows[1]["external_id"], "input order is preserved")
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(t.TempDir()).Fetch(context.Background(), KindShifts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "shifts.csv")
}

func TestFileSourceHeaderOnly(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "shifts.csv", "external_id,employee_external_id,start_at,end_at,break_minutes\n")

	rows, err := NewFileSource(dir).Fetch(context.Background(), KindShifts)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFileSourceEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "employees.csv", "")

	rows, err := NewFileSource(dir).Fetch(context.Background(), KindEmployees)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
