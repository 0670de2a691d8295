package domain

import (
	"regexp"
	"sort"
	"strings"
)

// LinkPatterns is consulted in order by ExtractLinks. Patterns with a capture group
// contribute the group, the others their whole match.
var LinkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)href=["'](https?://[^"']+)["']`),
	regexp.MustCompile(`(?i)src=["'](https?://[^"']+)["']`),
	regexp.MustCompile(`(?i)url\(["']?(https?://[^"')]+)["']?\)`),
	// bare links
	regexp.MustCompile(`(?i)https?://[^\s<>"']+`),
}

// ExtractLinks returns the sorted set of absolute http(s) links found in html.
func ExtractLinks(html string) []string {
	seen := make(map[string]struct{})
	for _, re := range LinkPatterns {
		for _, m := range re.FindAllStringSubmatch(html, -1) {
			link := trimUnbalanced(m[0])
			if len(m) > 1 {
				link = m[1]
			}
			seen[link] = struct{}{}
		}
	}

	links := make([]string, 0, len(seen))
	for link := range seen {
		links = append(links, link)
	}
	sort.Strings(links)
	return links
}

// trimUnbalanced drops closing parentheses that a bare link picked up from its
// surroundings, as in url(http://a.com/x.png). Balanced pairs are part of the link.
func trimUnbalanced(link string) string {
	for strings.HasSuffix(link, ")") && strings.Count(link, ")") > strings.Count(link, "(") {
		link = link[:len(link)-1]
	}
	return link
}
