package promotion

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Instant is a validity bound normalised from whatever the store hands back:
// ISO strings, date-only strings or {seconds, nanoseconds} timestamps.
// The zero value is invalid, and an invalid bound never matches.
type Instant struct {
	t     time.Time
	valid bool
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func InstantOf(t time.Time) Instant {
	if t.IsZero() {
		return Instant{}
	}
	return Instant{t: t, valid: true}
}

func InstantFromPtr(t *time.Time) Instant {
	if t == nil {
		return Instant{}
	}
	return InstantOf(*t)
}

func InstantFromTimestamp(seconds int64, nanos int64) Instant {
	return InstantOf(time.Unix(seconds, nanos).UTC())
}

// ParseInstant never fails; unparsable input yields an invalid Instant.
func ParseInstant(s string) Instant {
	s = strings.TrimSpace(s)
	if s == "" {
		return Instant{}
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return InstantOf(t)
		}
	}
	return Instant{}
}

func (i Instant) IsValid() bool { return i.valid }

func (i Instant) Time() (time.Time, bool) { return i.t, i.valid }

// Ptr returns nil for an invalid instant.
func (i Instant) Ptr() *time.Time {
	if !i.valid {
		return nil
	}
	t := i.t
	return &t
}

func (i Instant) Equal(o Instant) bool {
	if i.valid != o.valid {
		return false
	}
	return !i.valid || i.t.Equal(o.t)
}

func (i Instant) String() string {
	if !i.valid {
		return "invalid"
	}
	return i.t.Format(time.RFC3339Nano)
}

type timestampJSON struct {
	Seconds      *int64 `json:"seconds"`
	Nanoseconds  int64  `json:"nanoseconds"`
	LSeconds     *int64 `json:"_seconds"`
	LNanoseconds int64  `json:"_nanoseconds"`
}

func (i Instant) MarshalJSON() ([]byte, error) {
	if !i.valid {
		return []byte("null"), nil
	}
	return json.Marshal(i.t.Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts a string, a timestamp object or null. Malformed
// values decode to an invalid Instant instead of failing the whole document.
func (i *Instant) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*i = Instant{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*i = ParseInstant(s)
	case '{':
		var ts timestampJSON
		if err := json.Unmarshal(data, &ts); err != nil {
			return nil
		}
		switch {
		case ts.Seconds != nil:
			*i = InstantFromTimestamp(*ts.Seconds, ts.Nanoseconds)
		case ts.LSeconds != nil:
			*i = InstantFromTimestamp(*ts.LSeconds, ts.LNanoseconds)
		}
	}
	return nil
}
