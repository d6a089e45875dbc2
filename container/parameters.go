package container

import (
	"fmt"
	"strconv"
	"strings"
)

// resolver expands %name% placeholders against a parameter set.
type resolver struct {
	parameters map[string]any
	resolved   map[string]any
	resolving  map[string]struct{}
}

func newResolver(parameters map[string]any) *resolver {
	return &resolver{
		parameters: parameters,
		resolved:   make(map[string]any, len(parameters)),
		resolving:  make(map[string]struct{}),
	}
}

// ResolveValue expands placeholders in value using the current parameters.
// Strings, []any, and map[string]any are walked recursively; other values
// are returned unchanged.
func (b *Builder) ResolveValue(value any) (any, error) {
	return newResolver(b.parameters).value(value)
}

func (r *resolver) parameter(name string) (any, error) {
	if value, ok := r.resolved[name]; ok {
		return value, nil
	}

	raw, ok := r.parameters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParameterNotFound, name)
	}

	if _, busy := r.resolving[name]; busy {
		return nil, fmt.Errorf("%w: %q", ErrCircularParameter, name)
	}

	r.resolving[name] = struct{}{}
	defer delete(r.resolving, name)

	value, err := r.value(raw)
	if err != nil {
		return nil, err
	}

	r.resolved[name] = value

	return value, nil
}

func (r *resolver) value(value any) (any, error) {
	switch typed := value.(type) {
	case string:
		return r.string(typed)
	case []any:
		out := make([]any, len(typed))

		for i, item := range typed {
			resolved, err := r.value(item)
			if err != nil {
				return nil, err
			}

			out[i] = resolved
		}

		return out, nil
	case map[string]any:
		out := make(map[string]any, len(typed))

		for key, item := range typed {
			resolved, err := r.value(item)
			if err != nil {
				return nil, err
			}

			out[key] = resolved
		}

		return out, nil
	default:
		return value, nil
	}
}

func (r *resolver) string(value string) (any, error) {
	if name, ok := wholePlaceholder(value); ok {
		return r.parameter(name)
	}

	if !strings.Contains(value, "%") {
		return value, nil
	}

	var out strings.Builder

	for idx := 0; idx < len(value); {
		if value[idx] != '%' {
			out.WriteByte(value[idx])
			idx++

			continue
		}

		if idx+1 < len(value) && value[idx+1] == '%' {
			out.WriteByte('%')

			idx += 2

			continue
		}

		end := strings.IndexByte(value[idx+1:], '%')
		if end < 0 || !validName(value[idx+1:idx+1+end]) {
			out.WriteByte('%')
			idx++

			continue
		}

		name := value[idx+1 : idx+1+end]

		resolved, err := r.parameter(name)
		if err != nil {
			return nil, err
		}

		text, ok := scalarText(resolved)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidParameter, name, value)
		}

		out.WriteString(text)

		idx += end + 2
	}

	return out.String(), nil
}

func wholePlaceholder(value string) (string, bool) {
	if len(value) < 3 || value[0] != '%' || value[len(value)-1] != '%' {
		return "", false
	}

	name := value[1 : len(value)-1]
	if strings.Contains(name, "%") || !validName(name) {
		return "", false
	}

	return name, true
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t\r\n")
}

func scalarText(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case bool:
		return strconv.FormatBool(typed), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case uint64:
		return strconv.FormatUint(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case nil:
		return "", true
	default:
		return "", false
	}
}
