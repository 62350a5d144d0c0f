package store

import (
	"fmt"
	"time"
)

// timeLayout is how timestamps are written to TEXT columns. It keeps
// millisecond precision so a record read back equals the one returned on
// write.
const timeLayout = "2006-01-02T15:04:05.000Z"

// now returns the current UTC time at storage precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// timestamp scans a TEXT timestamp column into t.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*ts.t = x.UTC()
		return nil
	case string:
		return ts.parse(x)
	case []byte:
		return ts.parse(string(x))
	}
	return fmt.Errorf("scan timestamp: unsupported value %T", v)
}

func (ts timestamp) parse(s string) error {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return fmt.Errorf("scan timestamp: %w", err)
	}
	*ts.t = parsed
	return nil
}

// nullTimestamp scans a nullable TEXT timestamp column into *t.
type nullTimestamp struct {
	t **time.Time
}

func (ts nullTimestamp) Scan(v any) error {
	if v == nil {
		*ts.t = nil
		return nil
	}
	var t time.Time
	if err := (timestamp{&t}).Scan(v); err != nil {
		return err
	}
	*ts.t = &t
	return nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}
