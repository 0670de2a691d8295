package application

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/iwat/webfile/internal/domain"
)

// Accessor is one file or URL bound to a fixed mode. It holds no open handle between calls
// and is not safe for concurrent use.
type Accessor struct {
	location string
	mode     domain.Mode
	app      *App
	logger   *slog.Logger
}

func (a *Accessor) Location() string {
	return a.location
}

func (a *Accessor) Mode() domain.Mode {
	return a.mode
}

func (a *Accessor) String() string {
	return fmt.Sprintf("Accessor(location=%q, mode=%s)", a.location, a.mode)
}

// Read returns the whole content of the file. Only available in read mode.
func (a *Accessor) Read() (string, error) {
	if !a.mode.Readable() {
		return "", domain.WrongMode("read", a.mode, domain.ModeRead)
	}

	f, err := a.app.fs.Open(a.location)
	if err != nil {
		return "", domain.FileError(err, "read", a.location)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", domain.FileError(err, "read", a.location)
	}
	if !utf8.Valid(data) {
		return "", domain.IOFailure(nil, "file '%s' is not valid UTF-8 text", a.location)
	}
	a.logger.Debug("read file", "bytes", len(data))
	return string(data), nil
}

// Write stores content, truncating the file in write mode and appending in append mode.
func (a *Accessor) Write(content string) (ok bool, err error) {
	if !a.mode.Writable() {
		return false, domain.WrongMode("write", a.mode, domain.ModeWrite, domain.ModeAppend)
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if a.mode == domain.ModeAppend {
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}
	if dir := filepath.Dir(a.location); dir != "." && dir != string(filepath.Separator) {
		if _, err := a.app.fs.Stat(dir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return false, domain.IOFailure(err, "failed to write file '%s': directory '%s' does not exist", a.location, dir)
			}
			return false, domain.FileError(err, "write", a.location)
		}
	}
	f, err := a.app.fs.OpenFile(a.location, flag, 0644)
	if err != nil {
		return false, domain.FileError(err, "write", a.location)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			ok, err = false, domain.IOFailure(cerr, "failed to close file '%s'", a.location)
		}
	}()

	if _, err := io.WriteString(f, content); err != nil {
		return false, domain.FileError(err, "write", a.location)
	}
	a.logger.Debug("wrote file", "bytes", len(content))
	return true, nil
}
