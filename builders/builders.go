package builders

import (
	"time"

	"github.com/google/uuid"

	finder "github.com/Mohiuddin655-PUB/object-finder"
)

// UUID builds uuid.UUID values from uuid.UUID, canonical (and other
// uuid.Parse-accepted) strings, or 16-byte slices.
func UUID() finder.Builder[uuid.UUID] {
	return func(v any) (uuid.UUID, bool) {
		switch u := v.(type) {
		case uuid.UUID:
			return u, true
		case string:
			id, err := uuid.Parse(u)
			if err != nil {
				return uuid.Nil, false
			}
			return id, true
		case []byte:
			id, err := uuid.FromBytes(u)
			if err != nil {
				return uuid.Nil, false
			}
			return id, true
		}
		return uuid.Nil, false
	}
}

// Time builds time.Time values from time.Time, strings in the given
// layouts (RFC 3339 when none are supplied), or numeric Unix seconds.
func Time(layouts ...string) finder.Builder[time.Time] {
	if len(layouts) == 0 {
		layouts = []string{time.RFC3339}
	}
	return func(v any) (time.Time, bool) {
		switch ts := v.(type) {
		case time.Time:
			return ts, true
		case string:
			for _, layout := range layouts {
				if parsed, err := time.Parse(layout, ts); err == nil {
					return parsed, true
				}
			}
			return time.Time{}, false
		}
		if sec, ok := finder.Coerce[int64](v); ok {
			return time.Unix(sec, 0).UTC(), true
		}
		return time.Time{}, false
	}
}

// Duration builds time.Duration values from time.Duration, duration
// strings like "5m" or "1h30m", strings of integer seconds, or numeric
// seconds.
func Duration() finder.Builder[time.Duration] {
	return func(v any) (time.Duration, bool) {
		switch d := v.(type) {
		case time.Duration:
			return d, true
		case string:
			if parsed, err := time.ParseDuration(d); err == nil {
				return parsed, true
			}
			if sec, ok := finder.Coerce[int64](d); ok {
				return time.Duration(sec) * time.Second, true
			}
			return 0, false
		}
		if sec, ok := finder.Coerce[int64](v); ok {
			return time.Duration(sec) * time.Second, true
		}
		return 0, false
	}
}
