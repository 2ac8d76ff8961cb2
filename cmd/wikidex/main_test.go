package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	main "github.com/wikidex/wikidex/cmd/wikidex"
	"github.com/wikidex/wikidex/fs"
)

func testContext() context.Context {
	return context.Background()
}

const testDump = "INSERT INTO `page` VALUES (1,0,'Getting_Started',0)," +
	"(2,0,'FAQ',0),(3,1,'Talk_Page',0);\n" +
	"INSERT INTO `revision` VALUES (10,1),(20,2);\n" +
	"INSERT INTO `text` VALUES (10,'Welcome to the community wiki.')," +
	"(20,'Questions and answers live here.');\n"

func TestRun_Parse(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	dumpPath := filepath.Join(tmpDir, "dump.sql")
	outPath := filepath.Join(tmpDir, "wiki.json")
	require.NoError(t, os.WriteFile(dumpPath, []byte(testDump), 0644))

	m := main.NewMain()
	m.DBPath = filepath.Join(tmpDir, "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{
		"parse", dumpPath,
		"--base-url", "https://example.com/wiki",
		"-o", outPath,
	}, stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "Stored 2 records")

	recs, err := fs.ReadRecords(outPath)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Getting_Started", recs[0].Title)
	assert.Equal(t, "https://example.com/wiki/Getting_Started", recs[0].URL)
	assert.Equal(t, "Welcome to the community wiki.", recs[0].Content)
}

func TestRun_ParseThenList(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	dumpPath := filepath.Join(tmpDir, "dump.sql")
	require.NoError(t, os.WriteFile(dumpPath, []byte(testDump), 0644))

	dbPath := filepath.Join(tmpDir, "test.db")

	m := main.NewMain()
	m.DBPath = dbPath
	require.NoError(t, m.Run(testContext(), []string{
		"parse", dumpPath, "--base-url", "https://example.com/wiki",
	}, &bytes.Buffer{}, &bytes.Buffer{}))

	m2 := main.NewMain()
	m2.DBPath = dbPath
	stdout := &bytes.Buffer{}
	require.NoError(t, m2.Run(testContext(), []string{"list"}, stdout, &bytes.Buffer{}))

	assert.Contains(t, stdout.String(), "FAQ")
	assert.Contains(t, stdout.String(), "Getting_Started")
}

func TestRun_ParseMissingDump(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	err := m.Run(testContext(), []string{
		"parse", filepath.Join(t.TempDir(), "absent.sql"),
	}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()
			m.DBPath = filepath.Join(t.TempDir(), "test.db")

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(testContext(), tt.args, stdout, stderr)

			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "Usage: wikidex")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(testContext(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: wikidex")
}

func TestRun_HelpWithoutCreatingDB(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "should-not-exist.db")

	m := main.NewMain()
	m.DBPath = dbPath

	err := m.Run(testContext(), []string{"--help"}, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "database file should not be created for --help")
}
