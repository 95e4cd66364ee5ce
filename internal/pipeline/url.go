package pipeline

import "strings"

const (
	shortLinkPrefix = "https://youtu.be/"
	watchURLPrefix  = "https://www.youtube.com/watch?v="
)

// NormalizeVideoURL canonicalizes YouTube URLs into the standard watch form.
// Shortened youtu.be links are rewritten to youtube.com/watch URLs with the
// query string stripped; any other input is returned trimmed. Pure function,
// idempotent.
func NormalizeVideoURL(url string) string {
	url = strings.TrimSpace(url)
	if strings.HasPrefix(url, shortLinkPrefix) {
		rest := strings.TrimPrefix(url, shortLinkPrefix)
		if i := strings.Index(rest, "?"); i >= 0 {
			rest = rest[:i]
		}
		return watchURLPrefix + rest
	}
	return url
}

// IsSupportedVideoURL reports whether the URL points at a recognized video
// host. The check is a case-insensitive substring match; anything failing it
// must be rejected before any network or compute resource is allocated.
func IsSupportedVideoURL(url string) bool {
	u := strings.ToLower(url)
	return strings.Contains(u, "youtube.com/") || strings.Contains(u, "youtu.be/")
}
