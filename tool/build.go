package tool

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrUnknownTool     = errors.New("tool: unknown tool")
	ErrMissingArgument = errors.New("tool: missing required argument")
	ErrInvalidArgument = errors.New("tool: invalid argument")
)

type wireValue struct {
	name  string
	value any
}

// Build turns caller arguments into the upstream request. Parameters are
// visited in declaration order, which is also the query string order.
func (d Descriptor) Build(args map[string]any) (Request, error) {
	values := make([]wireValue, 0, len(d.Params))

	for _, param := range d.Params {
		raw, present := args[param.Name]
		if raw == nil {
			present = false
		}

		if !present {
			if param.Required {
				return Request{}, fmt.Errorf("%w: %s", ErrMissingArgument, param.Name) //nolint:exhaustruct
			}

			if param.Default == nil {
				continue
			}

			raw = param.Default
		}

		value, err := coerce(param.Kind, raw)
		if err != nil {
			return Request{}, fmt.Errorf("%w: %s: %w", ErrInvalidArgument, param.Name, err) //nolint:exhaustruct
		}

		if param.OmitEmpty && isEmpty(value) {
			continue
		}

		values = append(values, wireValue{name: param.wireName(), value: value})
	}

	req := Request{Method: d.Method, Target: d.Path, Body: nil}

	switch d.Placement {
	case Body:
		req.Body = make(map[string]any, len(values))
		for _, v := range values {
			req.Body[v.name] = v.value
		}
	case Query:
		req.Target = d.Path + "?" + encodeQuery(values, d.Encoding)
	case QueryIfAny:
		if len(values) > 0 {
			req.Target = d.Path + "?" + encodeQuery(values, d.Encoding)
		}
	case None:
	}

	return req, nil
}

func coerce(kind Kind, raw any) (any, error) {
	switch kind {
	case String:
		return coerceString(raw)
	case Integer:
		return coerceInteger(raw)
	case Boolean:
		return coerceBoolean(raw)
	case StringList:
		return coerceStringList(raw)
	case ObjectList:
		return coerceObjectList(raw)
	default:
		return nil, fmt.Errorf("unsupported kind %d", kind) //nolint:err113
	}
}

func coerceString(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return nil, typeError(String, raw)
	}
}

func coerceInteger(raw any) (any, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("expected a whole number, got %v", v) //nolint:err113
		}

		if v < math.MinInt64 || v >= math.MaxInt64 {
			return nil, fmt.Errorf("%v does not fit in a 64-bit integer", v) //nolint:err113
		}

		return int64(v), nil
	case json.Number:
		return v.Int64()
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	default:
		return nil, typeError(Integer, raw)
	}
}

func coerceBoolean(raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	default:
		return nil, typeError(Boolean, raw)
	}
}

func coerceStringList(raw any) (any, error) {
	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, typeError(StringList, raw)
			}

			out = append(out, s)
		}

		return out, nil
	default:
		return nil, typeError(StringList, raw)
	}
}

func coerceObjectList(raw any) (any, error) {
	switch v := raw.(type) {
	case []map[string]any:
		return v, nil
	case []any:
		out := make([]map[string]any, 0, len(v))

		for _, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, typeError(ObjectList, raw)
			}

			out = append(out, m)
		}

		return out, nil
	default:
		return nil, typeError(ObjectList, raw)
	}
}

func typeError(kind Kind, raw any) error {
	return fmt.Errorf("expected %s, got %T", kind, raw) //nolint:err113
}

func isEmpty(value any) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case int64:
		return v == 0
	case bool:
		return !v
	case []string:
		return len(v) == 0
	case []map[string]any:
		return len(v) == 0
	default:
		return value == nil
	}
}

func encodeQuery(values []wireValue, encoding Encoding) string {
	pairs := make([]string, 0, len(values))

	for _, v := range values {
		text := formatQueryValue(v.value)
		if encoding == Quote {
			text = quote(text)
		}

		pairs = append(pairs, v.name+"="+text)
	}

	return strings.Join(pairs, "&")
}

func formatQueryValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		if v {
			return "True"
		}

		return "False"
	default:
		return fmt.Sprint(v)
	}
}

const upperHex = "0123456789ABCDEF"

// quote percent-encodes every byte outside A-Z a-z 0-9 "_.-~/", so a space
// becomes %20 rather than "+".
func quote(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for i := range len(s) {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)

			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}

	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '.', c == '-', c == '~':
		return true
	default:
		return false
	}
}
