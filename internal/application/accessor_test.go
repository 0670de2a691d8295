package application

import (
	"testing"

	"github.com/go-git/go-billy/v5/util"
	"github.com/iwat/webfile/internal/domain"
	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessor_WriteThenRead(t *testing.T) {
	app, _ := createTestApp(t)

	for _, content := range []string{"hello", "", "line 1\nline 2\n", "Привет, мир ✓"} {
		writer, err := app.Open("roundtrip.txt", domain.ModeWrite)
		require.NoError(t, err)
		ok, err := writer.Write(content)
		require.NoError(t, err)
		assert.True(t, ok)

		reader, err := app.Open("roundtrip.txt", domain.ModeRead)
		require.NoError(t, err)
		got, err := reader.Read()
		require.NoError(t, err)
		assert.Equal(t, content, got)
	}
}

func TestAccessor_WriteTruncates(t *testing.T) {
	app, fs := createTestApp(t)
	require.NoError(t, util.WriteFile(fs, "notes.txt", []byte("a much longer original"), 0644))

	writer, err := app.Open("notes.txt", domain.ModeWrite)
	require.NoError(t, err)
	_, err = writer.Write("short")
	require.NoError(t, err)

	data, err := util.ReadFile(fs, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestAccessor_Append(t *testing.T) {
	app, _ := createTestApp(t)

	for _, part := range []string{"first", " second"} {
		appender, err := app.Open("log.txt", domain.ModeAppend)
		require.NoError(t, err)
		_, err = appender.Write(part)
		require.NoError(t, err)
	}

	reader, err := app.Open("log.txt", domain.ModeRead)
	require.NoError(t, err)
	got, err := reader.Read()
	require.NoError(t, err)
	assert.Equal(t, "first second", got)
}

func TestAccessor_ReadMissing(t *testing.T) {
	app, _ := createTestApp(t)

	reader, err := app.Open("missing.txt", domain.ModeRead)
	require.NoError(t, err)
	_, err = reader.Read()
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestAccessor_ReadInvalidUTF8(t *testing.T) {
	app, fs := createTestApp(t)
	require.NoError(t, util.WriteFile(fs, "binary.dat", []byte{0xff, 0xfe, 0x00}, 0644))

	reader, err := app.Open("binary.dat", domain.ModeRead)
	require.NoError(t, err)
	_, err = reader.Read()
	require.Error(t, err)
	assert.Equal(t, domain.CodeIOFailure, errors.GetCode(err))
}

func TestAccessor_PermissionDenied(t *testing.T) {
	app, fs := createTestApp(t)
	app.fs = deniedFS{fs}

	reader, err := app.Open("secret.txt", domain.ModeRead)
	require.NoError(t, err)
	_, err = reader.Read()
	assert.Equal(t, errors.CodeForbidden, errors.GetCode(err))

	writer, err := app.Open("secret.txt", domain.ModeWrite)
	require.NoError(t, err)
	ok, err := writer.Write("x")
	assert.False(t, ok)
	assert.Equal(t, errors.CodeForbidden, errors.GetCode(err))
}

func TestAccessor_WrongMode(t *testing.T) {
	app, fs := createTestApp(t)
	require.NoError(t, util.WriteFile(fs, "notes.txt", []byte("keep"), 0644))

	writer, err := app.Open("notes.txt", domain.ModeWrite)
	require.NoError(t, err)
	_, err = writer.Read()
	assert.ErrorIs(t, err, domain.ErrWrongMode)

	reader, err := app.Open("notes.txt", domain.ModeRead)
	require.NoError(t, err)
	ok, err := reader.Write("overwrite")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrWrongMode)

	remote, err := app.Open("http://example.com", domain.ModeURL)
	require.NoError(t, err)
	_, err = remote.Read()
	assert.ErrorIs(t, err, domain.ErrWrongMode)
	_, err = remote.Write("x")
	assert.ErrorIs(t, err, domain.ErrWrongMode)

	data, err := util.ReadFile(fs, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestAccessor_WriteMissingDirectory(t *testing.T) {
	app, fs := createTestApp(t)

	writer, err := app.Open("nodir/sub/x.txt", domain.ModeWrite)
	require.NoError(t, err)
	ok, err := writer.Write("abc")
	assert.False(t, ok)
	require.Error(t, err)
	assert.Equal(t, domain.CodeIOFailure, errors.GetCode(err))
	_, statErr := fs.Stat("nodir")
	assert.Error(t, statErr, "no directory is created")

	require.NoError(t, fs.MkdirAll("docs", 0755))
	writer, err = app.Open("docs/x.txt", domain.ModeAppend)
	require.NoError(t, err)
	ok, err = writer.Write("abc")
	require.NoError(t, err)
	assert.True(t, ok)
}
