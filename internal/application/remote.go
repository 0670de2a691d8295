package application

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/iwat/webfile/internal/domain"
)

// FetchRemote downloads the page and decodes it with the first charset that fits.
// Only available in url mode.
func (a *Accessor) FetchRemote(ctx context.Context) (string, error) {
	if !a.mode.Remote() {
		return "", domain.WrongMode("fetchRemote", a.mode, domain.ModeURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.location, nil)
	if err != nil {
		return "", domain.NetworkError(err, a.location, false)
	}
	req.Header.Set("User-Agent", a.app.config.UserAgent)

	resp, err := a.app.client.Do(req)
	if err != nil {
		return "", domain.NetworkError(err, a.location, isTimeout(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", domain.NewHTTPError(a.location, resp.StatusCode, reason(resp))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NetworkError(err, a.location, isTimeout(err))
	}

	text, charset := domain.DecodeText(raw)
	a.logger.Debug("fetched remote", "status", resp.StatusCode, "bytes", len(raw), "charset", charset)
	return text, nil
}

// Links returns the distinct absolute links of the page, sorted.
func (a *Accessor) Links(ctx context.Context) ([]string, error) {
	if !a.mode.Remote() {
		return nil, domain.WrongMode("countLinks", a.mode, domain.ModeURL)
	}
	html, err := a.FetchRemote(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ExtractLinks(html), nil
}

// CountLinks returns the number of distinct links on the page. Any failure is logged and
// reported as zero; use Links to tell the two apart.
func (a *Accessor) CountLinks(ctx context.Context) int {
	links, err := a.Links(ctx)
	if err != nil {
		a.logger.Warn("could not count URLs", "error", err)
		return 0
	}
	return len(links)
}

// SaveRemoteToFile fetches the page and writes it to dest, replacing any existing content.
func (a *Accessor) SaveRemoteToFile(ctx context.Context, dest string) (bool, error) {
	if !a.mode.Remote() {
		return false, domain.WrongMode("saveRemoteToFile", a.mode, domain.ModeURL)
	}

	content, err := a.FetchRemote(ctx)
	if err != nil {
		return false, domain.IOFailure(err, "failed to save URL content to file '%s'", dest)
	}
	writer, err := a.app.Open(dest, domain.ModeWrite)
	if err != nil {
		return false, domain.IOFailure(err, "failed to save URL content to file '%s'", dest)
	}
	ok, err := writer.Write(content)
	if err != nil {
		return false, domain.IOFailure(err, "failed to save URL content to file '%s'", dest)
	}
	a.logger.Info("saved URL content", "dest", dest, "chars", len([]rune(content)))
	return ok, nil
}

func reason(resp *http.Response) string {
	// Status looks like "404 Not Found"
	if _, text, found := strings.Cut(resp.Status, " "); found {
		return text
	}
	return ""
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
