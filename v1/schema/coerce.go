package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

const (
	// DateLayout is the wire layout of KindDate values.
	DateLayout = "2006-01-02"
	// DateTimeLayout is the wire layout of KindDateTime values.
	DateTimeLayout = time.RFC3339Nano
)

// Blank reports whether v carries no value for t: nil, or an empty string
// for any non-text kind. Blank values are replaced by the element default
// without being treated as coercion failures.
func (t Type) Blank(v any) bool {
	if v == nil {
		return true
	}
	if t.Kind == KindString || t.Kind == KindSymbol {
		return false
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// Coerce converts v to the Go representation of t. A nil v yields the zero
// value. Record types are returned unchanged.
func (t Type) Coerce(v any) (any, error) {
	if v == nil {
		return t.Zero(), nil
	}
	if n, ok := v.(json.Number); ok && t.Kind != KindDate && t.Kind != KindDateTime {
		// JSON numbers keep their literal digits until the target kind is known.
		v = n.String()
	}
	switch t.Kind {
	case KindString:
		return cast.ToStringE(v)
	case KindSymbol:
		s, err := cast.ToStringE(v)
		return strings.TrimSpace(s), err
	case KindInteger:
		return toInt64(v)
	case KindFloat:
		if s, ok := v.(string); ok {
			return strconv.ParseFloat(strings.TrimSpace(s), 64)
		}
		return cast.ToFloat64E(v)
	case KindBoolean:
		return toBool(v)
	case KindDate:
		tm, err := cast.ToTimeInDefaultLocationE(v, time.UTC)
		if err != nil {
			return nil, err
		}
		y, m, d := tm.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	case KindDateTime:
		tm, err := cast.ToTimeInDefaultLocationE(v, time.UTC)
		if err != nil {
			return nil, err
		}
		return tm.UTC(), nil
	case KindRecord:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// Text renders a coerced scalar value as wire text. Zero dates render as the
// empty string.
func (t Type) Text(v any) string {
	switch t.Kind {
	case KindDate, KindDateTime:
		tm, ok := v.(time.Time)
		if !ok || tm.IsZero() {
			return ""
		}
		if t.Kind == KindDate {
			return tm.Format(DateLayout)
		}
		return tm.UTC().Format(DateTimeLayout)
	case KindFloat:
		if f, ok := v.(float64); ok {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	return cast.ToString(v)
}

// toInt64 parses decimal strings strictly so that ILS identifiers with
// leading zeros are not read as octal. Fractional or out of range values are
// rejected rather than truncated.
func toInt64(v any) (int64, error) {
	switch f := v.(type) {
	case string:
		return parseInt64(f)
	case float64:
		return floatToInt64(f, v)
	case float32:
		return floatToInt64(float64(f), v)
	}
	return cast.ToInt64E(v)
}

func parseInt64(s string) (int64, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("unable to cast %q to int64: out of range", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to cast %q to int64", s)
	}
	return floatToInt64(f, s)
}

// floatToInt64 accepts only integral values that fit in an int64.
func floatToInt64(f float64, orig any) (int64, error) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("unable to cast %#v to int64", orig)
	}
	return int64(f), nil
}

func toBool(v any) (bool, error) {
	s, ok := v.(string)
	if !ok {
		return cast.ToBoolE(v)
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "y", "yes", "on":
		return true, nil
	case "false", "f", "0", "n", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("unable to cast %q to bool", s)
}
