// Package template evaluates computed-binding expressions. Expressions are
// Go text/template programs run against an explicitly provided environment
// map and nothing else: no widget state, no process environment, no I/O.
package template

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"
)

// Evaluate renders the expression against the given environment and coerces
// the result: JSON-looking output is decoded, then numbers, then booleans,
// otherwise the raw string is returned.
func Evaluate(expression string, environment map[string]any) (any, error) {
	if environment == nil {
		environment = map[string]any{}
	}

	tmpl, err := template.
		New("computed").
		Funcs(template.FuncMap{
			"now": func() string {
				return time.Now().UTC().Format(time.RFC3339)
			},
			"rand": func(max int) int {
				if max <= 0 {
					return 0
				}

				num := make([]byte, 1)
				if _, err := rand.Read(num); err != nil {
					return 0
				}

				return int(num[0]) % max
			},
		}).
		Option("missingkey=error").
		Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to parse expression %q: %w", expression, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, environment); err != nil {
		return nil, fmt.Errorf("failed to evaluate expression %q: %w", expression, err)
	}

	return coerce(strings.TrimSpace(buf.String())), nil
}

func coerce(result string) any {
	if (strings.HasPrefix(result, "{") && strings.HasSuffix(result, "}")) ||
		(strings.HasPrefix(result, "[") && strings.HasSuffix(result, "]")) {
		var decoded any
		if err := json.Unmarshal([]byte(result), &decoded); err == nil {
			return decoded
		}
	}

	if num, err := strconv.ParseFloat(result, 64); err == nil {
		return num
	}

	if b, err := strconv.ParseBool(result); err == nil {
		return b
	}

	return result
}
