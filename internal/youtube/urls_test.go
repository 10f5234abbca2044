package youtube

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchURL(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		start *StartTime
		want  string
	}{
		{"no start time", "abc123", nil, "https://www.youtube.com/watch?v=abc123"},
		{"integer seconds", "abc123", Seconds(90), "https://www.youtube.com/watch?v=abc123&t=90s"},
		{"zero seconds is not absent", "abc123", Seconds(0), "https://www.youtube.com/watch?v=abc123&t=0s"},
		{"duration string verbatim", "abc123", Timestamp("1h2m3s"), "https://www.youtube.com/watch?v=abc123&t=1h2m3s"},
		{"string is not validated", "abc123", Timestamp("soon"), "https://www.youtube.com/watch?v=abc123&t=soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WatchURL(tt.id, tt.start))
		})
	}
}

func TestWatchURL_StartTimeParam(t *testing.T) {
	assert.NotContains(t, WatchURL("abc123", nil), "&t=")
	assert.Equal(t, 1, strings.Count(WatchURL("abc123", Seconds(0)), "&t=0s"))
}

func TestThumbnailURL(t *testing.T) {
	t.Run("defaults to maxresdefault", func(t *testing.T) {
		assert.Equal(t, "https://img.youtube.com/vi/abc123/maxresdefault.jpg", ThumbnailURL("abc123", ""))
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, ThumbnailURL("abc123", QualityHigh), ThumbnailURL("abc123", QualityHigh))
	})

	for _, q := range Qualities() {
		t.Run(string(q), func(t *testing.T) {
			want := "https://img.youtube.com/vi/dQw4w9WgXcQ/" + string(q) + ".jpg"
			assert.Equal(t, want, ThumbnailURL("dQw4w9WgXcQ", q))
		})
	}
}

func TestParseQuality(t *testing.T) {
	q, err := ParseQuality("")
	require.NoError(t, err)
	assert.Equal(t, QualityMaxRes, q)

	q, err = ParseQuality("hqdefault")
	require.NoError(t, err)
	assert.Equal(t, QualityHigh, q)

	_, err = ParseQuality("ultra")
	assert.ErrorIs(t, err, ErrUnknownQuality)
}

func TestStartTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantParam string
		wantSecs  bool
		wantErr   bool
	}{
		{"integer", `90`, "90s", true, false},
		{"zero", `0`, "0s", true, false},
		{"string", `"1h2m3s"`, "1h2m3s", false, false},
		{"numeric string stays raw", `"90"`, "90", false, false},
		{"negative", `-5`, "", false, true},
		{"fractional", `1.5`, "", false, true},
		{"boolean", `true`, "", false, true},
		{"object", `{}`, "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st StartTime
			err := json.Unmarshal([]byte(tt.input), &st)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStartTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantParam, st.Param())
			assert.Equal(t, tt.wantSecs, st.IsSeconds())
		})
	}
}

func TestStartTime_AbsentVersusZero(t *testing.T) {
	var in struct {
		Start *StartTime `json:"start_time,omitempty"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &in))
	assert.Nil(t, in.Start)

	require.NoError(t, json.Unmarshal([]byte(`{"start_time": 0}`), &in))
	require.NotNil(t, in.Start)
	assert.Equal(t, "0s", in.Start.Param())
}

func TestStartTime_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Seconds(42))
	require.NoError(t, err)
	assert.JSONEq(t, `42`, string(data))

	data, err = json.Marshal(Timestamp("2m"))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m"`, string(data))
}

func TestParseStartTime(t *testing.T) {
	assert.True(t, ParseStartTime("90").IsSeconds())
	assert.Equal(t, "90s", ParseStartTime("90").Param())
	assert.False(t, ParseStartTime("1m30s").IsSeconds())
	assert.Equal(t, "1m30s", ParseStartTime("1m30s").Param())
	assert.False(t, ParseStartTime("-3").IsSeconds())
}
