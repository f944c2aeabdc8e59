package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmdFlags(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "in")
	output := filepath.Join(root, "out.xlsx")
	require.NoError(t, os.MkdirAll(input, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(input, "a.json"), []byte(`{"k": {"confidence": 0.2}}`), 0644))

	out, err := execute(t, "-i", input, "-o", output, "--sheet", "Data", "--missing", "")
	require.NoError(t, err)
	assert.Contains(t, out, "Processing: a.json")
	assert.Contains(t, out, "Excel updated successfully!")

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Data", "A2")
	require.NoError(t, err)
	assert.Equal(t, ",0.2", v)
	assert.FileExists(t, filepath.Join(input, "processed", "a.json"))
}

func TestRootCmdEnvironment(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "docs")
	output := filepath.Join(root, "env.xlsx")
	require.NoError(t, os.MkdirAll(input, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(input, "a.json"), []byte(`{"k": {"value": 1}}`), 0644))

	t.Setenv("JSONSHEET_INPUT_DIR", input)
	t.Setenv("JSONSHEET_OUTPUT_FILE", output)
	t.Setenv("JSONSHEET_ARCHIVE_DIR", "done")

	_, err := execute(t)
	require.NoError(t, err)
	assert.FileExists(t, output)
	assert.FileExists(t, filepath.Join(input, "done", "a.json"))
}

func TestRootCmdConfigFile(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "cfg-in")
	output := filepath.Join(root, "cfg.xlsx")
	config := filepath.Join(root, "jsonsheet.yaml")
	require.NoError(t, os.WriteFile(config, []byte("input_dir: "+input+"\noutput_file: "+output+"\n"), 0644))

	out, err := execute(t, "--config", config)
	require.NoError(t, err)
	assert.Contains(t, out, "Input folder not found.")
	assert.NoFileExists(t, output)
}

func TestRootCmdStrictOutput(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "in")
	output := filepath.Join(root, "out.xlsx")
	require.NoError(t, os.MkdirAll(input, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(input, "a.json"), []byte(`{"k": {"value": 1}}`), 0644))
	require.NoError(t, os.WriteFile(output, []byte("garbage"), 0644))

	_, err := execute(t, "-i", input, "-o", output, "--strict-output")
	require.Error(t, err)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "garbage", string(got))
}

func TestRootCmdRejectsArgs(t *testing.T) {
	_, err := execute(t, "unexpected")
	assert.Error(t, err)
}

func TestRootCmdFailOnEmpty(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "in")
	output := filepath.Join(root, "out.xlsx")
	require.NoError(t, os.MkdirAll(input, 0755))

	_, err := execute(t, "-i", input, "-o", output)
	require.NoError(t, err)

	_, err = execute(t, "-i", input, "-o", output, "--fail-on-empty")
	assert.ErrorIs(t, err, jsonsheet.ErrNoRows)

	_, err = execute(t, "-i", filepath.Join(root, "missing"), "-o", output, "--fail-on-empty")
	assert.ErrorIs(t, err, jsonsheet.ErrInputNotFound)
}

func TestRootCmdRejectsArchiveEqualToInput(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "in")
	require.NoError(t, os.MkdirAll(input, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(input, "a.json"), []byte(`{"k": {"value": 1}}`), 0644))

	_, err := execute(t, "-i", input, "-o", filepath.Join(root, "out.xlsx"), "--archive-dir", ".")
	assert.ErrorIs(t, err, jsonsheet.ErrArchiveIsInput)
	assert.FileExists(t, filepath.Join(input, "a.json"))
}
