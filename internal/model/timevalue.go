package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// TimeValue is a start or end reading that arrives either as text or as a
// number of decimal hours. The zero value means the field was not supplied.
type TimeValue struct {
	text    string
	hours   float64
	numeric bool
	present bool
}

// Clock returns a TimeValue holding the raw text s, e.g. "08:00" or "7.5".
func Clock(s string) TimeValue {
	return TimeValue{text: s, present: true}
}

// Hours returns a TimeValue holding h decimal hours.
func Hours(h float64) TimeValue {
	return TimeValue{hours: h, numeric: true, present: true}
}

// IsZero reports whether the value was not supplied at all.
func (v TimeValue) IsZero() bool { return !v.present }

// Number returns the decimal hours and true if v was given as a number.
func (v TimeValue) Number() (float64, bool) { return v.hours, v.numeric }

// Text returns the raw text of a string value.
func (v TimeValue) Text() string { return v.text }

func (v TimeValue) String() string {
	switch {
	case !v.present:
		return ""
	case v.numeric:
		return strconv.FormatFloat(v.hours, 'f', -1, 64)
	default:
		return v.text
	}
}

func (v TimeValue) MarshalJSON() ([]byte, error) {
	switch {
	case !v.present:
		return []byte("null"), nil
	case v.numeric:
		return json.Marshal(v.hours)
	default:
		return json.Marshal(v.text)
	}
}

func (v *TimeValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = TimeValue{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Clock(s)
		return nil
	}
	var h float64
	if err := json.Unmarshal(data, &h); err != nil {
		return fmt.Errorf("time value must be a string or a number, got %s", data)
	}
	*v = Hours(h)
	return nil
}
