package tshock

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// tokenKey is the query parameter carrying the authentication token on every request.
const tokenKey = "token"

// Params are the query parameters of a request.
//
// Values must be scalars: string, bool, any integer kind, fmt.Stringer or a pointer to string, bool or int.
// A nil pointer means the parameter is absent and its key is omitted from the query string.
// Booleans are always encoded as "true" or "false".
type Params map[string]any

// String returns a pointer to v, for optional string parameters.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to v, for optional boolean parameters.
func Bool(v bool) *bool {
	return &v
}

// Int returns a pointer to v, for optional integer parameters.
func Int(v int) *int {
	return &v
}

// encode builds the query string values of p.
// The token is added last so it cannot be overridden by a caller supplied "token" key.
func (p Params) encode(token string) (url.Values, error) {
	query := url.Values{}
	for k, v := range p {
		if k == tokenKey {
			continue
		}

		s, ok, err := scalar(v)
		if err != nil {
			return nil, errors.Wrapf(err, "could not encode parameter %q", k)
		}
		if !ok {
			continue // absent
		}
		query.Set(k, s)
	}

	query.Set(tokenKey, token)
	return query, nil
}

// scalar returns the textual form of v.
// The boolean is false when v is an absent optional value.
func scalar(v any) (string, bool, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return "", false, nil // absent, including pointers to Stringer values
	}

	switch v := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case *string:
		return *v, true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	case *bool:
		return strconv.FormatBool(*v), true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case *int:
		return strconv.Itoa(*v), true, nil
	case int8:
		return strconv.FormatInt(int64(v), 10), true, nil
	case int16:
		return strconv.FormatInt(int64(v), 10), true, nil
	case int32:
		return strconv.FormatInt(int64(v), 10), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint64:
		return strconv.FormatUint(v, 10), true, nil
	case fmt.Stringer:
		return v.String(), true, nil
	default:
		return "", false, errors.Errorf("unsupported value type %T", v)
	}
}
