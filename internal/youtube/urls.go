// Package youtube builds canonical YouTube URLs and extracts video IDs from links.
package youtube

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	watchBase     = "https://www.youtube.com/watch?v="
	thumbnailBase = "https://img.youtube.com/vi/"
)

// Quality is a thumbnail resolution as named by img.youtube.com.
type Quality string

// Thumbnail qualities, lowest to highest resolution.
const (
	QualityDefault  Quality = "default"
	QualityMedium   Quality = "mqdefault"
	QualityHigh     Quality = "hqdefault"
	QualityStandard Quality = "sddefault"
	QualityMaxRes   Quality = "maxresdefault"
)

// ErrUnknownQuality is returned by ParseQuality for names outside the enum.
var ErrUnknownQuality = errors.New("unknown thumbnail quality")

// ErrInvalidStartTime indicates a start time that is neither a non-negative
// integer nor a string.
var ErrInvalidStartTime = errors.New("invalid start time")

// Qualities returns every supported quality in ascending resolution order.
func Qualities() []Quality {
	return []Quality{QualityDefault, QualityMedium, QualityHigh, QualityStandard, QualityMaxRes}
}

// ParseQuality validates a quality name. Empty means QualityMaxRes.
func ParseQuality(s string) (Quality, error) {
	if s == "" {
		return QualityMaxRes, nil
	}
	for _, q := range Qualities() {
		if string(q) == s {
			return q, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuality, s)
}

// StartTime is either a number of seconds or a raw duration string like "1h2m3s".
// A nil *StartTime means no start time was given.
type StartTime struct {
	seconds int
	raw     string
	isRaw   bool
}

// Seconds returns a start time of n seconds.
func Seconds(n int) *StartTime {
	return &StartTime{seconds: n}
}

// Timestamp returns a start time passed through verbatim.
func Timestamp(raw string) *StartTime {
	return &StartTime{raw: raw, isRaw: true}
}

// ParseStartTime treats an all-digit string as seconds and anything else as a
// verbatim timestamp.
func ParseStartTime(s string) *StartTime {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && !strings.HasPrefix(s, "+") {
		return Seconds(n)
	}
	return Timestamp(s)
}

// IsSeconds reports whether the start time holds an integer second count.
func (s StartTime) IsSeconds() bool {
	return !s.isRaw
}

// Param renders the value of the t= query parameter.
func (s StartTime) Param() string {
	if s.isRaw {
		return s.raw
	}
	return strconv.Itoa(s.seconds) + "s"
}

// UnmarshalJSON accepts a non-negative JSON integer or a JSON string.
func (s *StartTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
		}
		*s = StartTime{raw: raw, isRaw: true}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: must be an integer or a string", ErrInvalidStartTime)
	}
	secs, err := strconv.Atoi(n.String())
	if err != nil {
		return fmt.Errorf("%w: %s is not an integer", ErrInvalidStartTime, n)
	}
	if secs < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidStartTime, secs)
	}
	*s = StartTime{seconds: secs}
	return nil
}

// MarshalJSON writes seconds as a number and timestamps as a string.
func (s StartTime) MarshalJSON() ([]byte, error) {
	if s.isRaw {
		return json.Marshal(s.raw)
	}
	return json.Marshal(s.seconds)
}

// WatchURL returns the canonical watch URL, with a t= parameter when start is set.
// Seconds(0) still appends "&t=0s".
func WatchURL(id string, start *StartTime) string {
	u := watchBase + id
	if start == nil {
		return u
	}
	return u + "&t=" + start.Param()
}

// ThumbnailURL returns the thumbnail image URL for id. The id is not validated.
func ThumbnailURL(id string, q Quality) string {
	if q == "" {
		q = QualityMaxRes
	}
	return thumbnailBase + id + "/" + string(q) + ".jpg"
}
