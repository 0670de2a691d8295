package domain

import (
	"fmt"
	"strings"
)

// Mode is the fixed role of an accessor. It decides which operations are legal.
type Mode int

const (
	ModeRead Mode = iota + 1
	ModeWrite
	ModeAppend
	ModeURL
)

var knownModes = []Mode{ModeRead, ModeWrite, ModeAppend, ModeURL}

// ParseMode parses a mode name, ignoring case and surrounding spaces
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range knownModes {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, ConfigError("invalid mode '%s', valid modes: %s", s, KnownModes())
}

// KnownModes returns a comma separated list of mode names
func KnownModes() string {
	names := make([]string, len(knownModes))
	for i, m := range knownModes {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeAppend:
		return "append"
	case ModeURL:
		return "url"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the declared modes
func (m Mode) Valid() bool {
	switch m {
	case ModeRead, ModeWrite, ModeAppend, ModeURL:
		return true
	}
	return false
}

func (m Mode) Readable() bool {
	switch m {
	case ModeRead:
		return true
	case ModeWrite, ModeAppend, ModeURL:
		return false
	}
	return false
}

func (m Mode) Writable() bool {
	switch m {
	case ModeWrite, ModeAppend:
		return true
	case ModeRead, ModeURL:
		return false
	}
	return false
}

func (m Mode) Remote() bool {
	switch m {
	case ModeURL:
		return true
	case ModeRead, ModeWrite, ModeAppend:
		return false
	}
	return false
}

// Set implements pflag.Value
func (m *Mode) Set(s string) error {
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Type implements pflag.Value
func (m *Mode) Type() string {
	return "mode"
}
