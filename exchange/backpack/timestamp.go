package backpack

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

//
// Timestamp is an instant in milliseconds since the Unix epoch. Different endpoints send the same
// kind of field as a JSON integer, a numeric string, or an ISO-8601 string (with or without a zone,
// which then means UTC); all of them decode into a Timestamp.
//
type Timestamp int64

//
// ParseTimestamp parses the textual forms a Timestamp may take.
//
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Timestamp(ms), nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp(t.UnixMilli()), nil
		}
	}

	return 0, fmt.Errorf("unrecognized timestamp %q", s)
}

func (o Timestamp) Time() time.Time {
	return time.UnixMilli(int64(o)).UTC()
}

func (o Timestamp) String() string {
	return o.Time().Format(time.RFC3339Nano)
}

func (o Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(o), 10)), nil
}

func (o *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	//
	// Bare JSON numbers.
	//
	if len(b) > 0 && b[0] != '"' {
		if ms, err := strconv.ParseInt(string(b), 10, 64); err == nil {
			*o = Timestamp(ms)
			return nil
		}

		f, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("unrecognized timestamp %s", b)
		}

		*o = Timestamp(int64(f))

		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	ts, err := ParseTimestamp(s)
	if err != nil {
		return err
	}

	*o = ts

	return nil
}

//
// FlexInt64 is an integer the exchange sometimes sends as a JSON string.
//
type FlexInt64 int64

func (o FlexInt64) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(o), 10)), nil
}

func (o *FlexInt64) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}

	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", b)
	}

	*o = FlexInt64(v)

	return nil
}
