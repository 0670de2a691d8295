package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iwat/webfile/internal/application"
	"github.com/iwat/webfile/internal/domain"
	"github.com/iwat/webfile/internal/infrastructure/tui"
)

// Prompter reads one answer per prompt
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// fileModes maps the file menu choices to accessor modes
var fileModes = map[string]domain.Mode{
	"1": domain.ModeRead,
	"2": domain.ModeWrite,
	"3": domain.ModeAppend,
}

// Menu is the interactive console loop. Failed operations are reported and the loop goes on;
// only input errors end it.
type Menu struct {
	app      *application.App
	prompter Prompter
	out      io.Writer
}

func NewMenu(app *application.App, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		app:      app,
		prompter: tui.NewLinePrompter(in, out),
		out:      out,
	}
}

// Run shows the main menu until the user exits or the input ends
func (m *Menu) Run(ctx context.Context) error {
	m.println(tui.Banner("FILE AND URL TOOL", "=", 50))

	for ctx.Err() == nil {
		m.println("\n" + tui.Banner("MAIN MENU", "=", 50))
		m.println("1. Work with a file (read/write)")
		m.println("2. Work with a URL")
		m.println("3. Exit")
		m.println(tui.Rule("=", 50))

		choice, err := m.prompter.Prompt("\nChoose an action (1-3): ")
		if err != nil {
			return endOfInput(err)
		}
		switch choice {
		case "1":
			err = m.fileOperations()
		case "2":
			err = m.urlOperations(ctx)
		case "3":
			m.println("\nGoodbye!")
			return nil
		default:
			m.println("\n" + tui.Failure("Error: enter a number from 1 to 3"))
		}
		if err != nil {
			return endOfInput(err)
		}

		if _, err := m.prompter.Prompt("\nPress Enter to continue..."); err != nil {
			return endOfInput(err)
		}
	}
	return nil
}

func (m *Menu) fileOperations() error {
	m.println("\n" + tui.Banner("FILE OPERATIONS", "-", 30))

	path, err := m.prompter.Prompt("Enter file path: ")
	if err != nil {
		return err
	}

	m.println("\nChoose a mode:")
	m.println("1. Read file")
	m.println("2. Write to file (overwrite)")
	m.println("3. Append to file")
	choice, err := m.prompter.Prompt("Enter mode number (1-3): ")
	if err != nil {
		return err
	}
	mode, ok := fileModes[choice]
	if !ok {
		m.println(tui.Failure("Error: invalid mode choice"))
		return nil
	}

	accessor, err := m.app.Open(path, mode)
	if err != nil {
		m.printError(err)
		return nil
	}

	if mode == domain.ModeRead {
		content, err := accessor.Read()
		if err != nil {
			m.printError(err)
			return nil
		}
		m.println(fmt.Sprintf("\nContents of file '%s':", path))
		m.println(tui.Rule("=", 40))
		m.println(content)
		m.println(tui.Rule("=", 40))
		return nil
	}

	action, done := "write", "written to"
	if mode == domain.ModeAppend {
		action, done = "append", "appended to"
	}
	lines, err := m.readLines(action)
	if err != nil {
		return err
	}
	if _, err := accessor.Write(strings.Join(lines, "\n")); err != nil {
		m.printError(err)
		return nil
	}
	m.println("\n" + tui.Success(fmt.Sprintf("Content successfully %s file '%s'", done, path)))
	return nil
}

// readLines collects lines until an empty one, END, or the end of input
func (m *Menu) readLines(action string) ([]string, error) {
	m.println(fmt.Sprintf("\nEnter the content to %s:", action))
	m.println("(Finish with an empty line or 'END' on its own line)")
	m.println(tui.Rule("-", 40))

	var lines []string
	for n := 1; ; n++ {
		line, err := m.prompter.Prompt(fmt.Sprintf("Line %d: ", n))
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		if line == "" || strings.EqualFold(line, "END") {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

func (m *Menu) urlOperations(ctx context.Context) error {
	m.println("\n" + tui.Banner("URL OPERATIONS", "-", 30))

	url, err := m.prompter.Prompt("Enter URL (for example, https://example.com): ")
	if err != nil {
		return err
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	accessor, err := m.app.Open(url, domain.ModeURL)
	if err != nil {
		m.printRemoteError(err)
		return nil
	}

	m.println("\nChoose an operation:")
	m.println("1. Read page content")
	m.println("2. Count links on the page")
	m.println("3. Save page content to a file")
	op, err := m.prompter.Prompt("Enter operation number (1-3): ")
	if err != nil {
		return err
	}

	switch op {
	case "1":
		content, err := accessor.FetchRemote(ctx)
		if err != nil {
			m.printRemoteError(err)
			return nil
		}
		m.println(fmt.Sprintf("\nContents of page '%s':", url))
		m.println(tui.Rule("=", 60))
		m.println(Preview(content, m.app.Config().PreviewLimit))
		m.println(tui.Rule("=", 60))
		m.println(fmt.Sprintf("Total size: %d characters", len([]rune(content))))
	case "2":
		count := accessor.CountLinks(ctx)
		m.println("\n" + tui.Success(fmt.Sprintf("Found %d URLs on page '%s'", count, url)))
	case "3":
		dest, err := m.prompter.Prompt("Enter path to save the file: ")
		if err != nil {
			return err
		}
		if dest == "" {
			dest = DefaultSavePath(url, m.app.Config().SaveSuffix)
		}
		if _, err := accessor.SaveRemoteToFile(ctx, dest); err != nil {
			m.printRemoteError(err)
			return nil
		}
		m.println("\n" + tui.Success(fmt.Sprintf("Content successfully saved to file '%s'", dest)))
	default:
		m.println("\n" + tui.Failure("Error: invalid operation choice"))
	}
	return nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printError(err error) {
	m.println("\n" + tui.Failure("Error: "+err.Error()))
}

func (m *Menu) printRemoteError(err error) {
	m.printError(err)
	m.println("Possible causes:")
	m.println("- No internet connection")
	m.println("- The URL is unavailable or does not exist")
	m.println("- Access to the URL was denied")
}

// Preview returns the first limit characters of content, marking a cut with "..."
func Preview(content string, limit int) string {
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	return string(runes[:limit]) + "..."
}

// DefaultSavePath names the file a page is saved to when no path is given,
// e.g. https://example.com/a/b becomes example.com_content.html
func DefaultSavePath(url, suffix string) string {
	parts := strings.Split(url, "//")
	host, _, _ := strings.Cut(parts[len(parts)-1], "/")
	return host + suffix
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
