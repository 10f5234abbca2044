package youtube

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrExtraction is wrapped by every ExtractionError.
var ErrExtraction = errors.New("video id extraction failed")

// Extraction failure reasons.
const (
	ReasonEmpty           = "empty input"
	ReasonMalformed       = "malformed url"
	ReasonUnsupportedHost = "unsupported host"
	ReasonMissingID       = "missing video id"
	ReasonInvalidID       = "invalid video id"
)

// ExtractionError describes why a video ID could not be taken from a URL.
type ExtractionError struct {
	URL    string
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: %s: %q", ErrExtraction, e.Reason, e.URL)
}

func (e *ExtractionError) Unwrap() error {
	return ErrExtraction
}

var videoIDRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var youtubeHosts = map[string]bool{
	"youtube.com":              true,
	"www.youtube.com":          true,
	"m.youtube.com":            true,
	"music.youtube.com":        true,
	"youtube-nocookie.com":     true,
	"www.youtube-nocookie.com": true,
}

// pathPrefixes are the youtube.com path forms that carry the ID as the next segment.
var pathPrefixes = []string{"/embed/", "/shorts/", "/live/", "/v/", "/e/"}

// ExtractVideoID pulls the video ID out of a watch, short, embed, live or
// youtu.be link. A missing scheme is tolerated.
func ExtractVideoID(rawURL string) (string, error) {
	s := strings.TrimSpace(rawURL)
	if s == "" {
		return "", &ExtractionError{URL: rawURL, Reason: ReasonEmpty}
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", &ExtractionError{URL: rawURL, Reason: ReasonMalformed}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &ExtractionError{URL: rawURL, Reason: ReasonMalformed}
	}

	host := strings.ToLower(u.Hostname())
	var id string
	switch {
	case host == "youtu.be" || host == "www.youtu.be":
		id = firstSegment(u.Path)
	case youtubeHosts[host]:
		id = idFromYouTubePath(u)
	default:
		return "", &ExtractionError{URL: rawURL, Reason: ReasonUnsupportedHost}
	}

	if id == "" {
		return "", &ExtractionError{URL: rawURL, Reason: ReasonMissingID}
	}
	if !videoIDRE.MatchString(id) {
		return "", &ExtractionError{URL: rawURL, Reason: ReasonInvalidID}
	}
	return id, nil
}

func idFromYouTubePath(u *url.URL) string {
	if u.Path == "/watch" || u.Path == "/watch/" {
		return u.Query().Get("v")
	}
	for _, prefix := range pathPrefixes {
		if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
			return firstSegment(rest)
		}
	}
	return ""
}

// firstSegment returns the first non-empty path segment.
func firstSegment(p string) string {
	p = strings.TrimPrefix(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

// Normalized is a successfully normalized link.
type Normalized struct {
	URL     string
	VideoID string
}

// Normalize extracts the video ID from rawURL and builds its canonical watch URL.
// Failures are *ExtractionError.
func Normalize(rawURL string) (Normalized, error) {
	id, err := ExtractVideoID(rawURL)
	if err != nil {
		return Normalized{}, err
	}
	return Normalized{URL: WatchURL(id, nil), VideoID: id}, nil
}

// NormalizeURL is the nil-pair form of Normalize: both results are nil when
// no video ID can be extracted.
func NormalizeURL(rawURL string) (canonical, id *string) {
	n, err := Normalize(rawURL)
	if err != nil {
		return nil, nil
	}
	return &n.URL, &n.VideoID
}
