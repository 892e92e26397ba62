package config

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Int parses an operator-supplied numeric value from text.
// Empty or unparseable input yields nil, which the config endpoint
// omits from its response.
func Int(value string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &n
}

// listStrategies are tried in order against a textual option list.
// The first one that yields a non-empty result wins.
var listStrategies = []func(string) []int{
	parseJSONList,
	parseCommaList,
}

// IntList parses a page-size option list. It accepts a native list
// (a YAML array in the config file), a JSON-array-formatted string,
// or a comma-separated string with optional surrounding brackets.
// Anything else yields nil.
func IntList(value any) []int {
	switch v := value.(type) {
	case []int:
		if len(v) == 0 {
			return nil
		}
		return v
	case []any:
		return fromNativeList(v)
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		for _, parse := range listStrategies {
			if result := parse(v); len(result) > 0 {
				return result
			}
		}
		return nil
	default:
		return nil
	}
}

func fromNativeList(values []any) []int {
	var result []int
	for _, v := range values {
		switch n := v.(type) {
		case int:
			result = append(result, n)
		case int64:
			result = append(result, int(n))
		case float64:
			result = append(result, int(n))
		case string:
			if parsed := Int(n); parsed != nil {
				result = append(result, *parsed)
			}
		}
	}
	return result
}

func parseJSONList(value string) []int {
	var result []int
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return nil
	}
	return result
}

func parseCommaList(value string) []int {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "[")
	cleaned = strings.TrimSuffix(cleaned, "]")
	if strings.TrimSpace(cleaned) == "" {
		return nil
	}

	var result []int
	for _, part := range strings.Split(cleaned, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		result = append(result, n)
	}
	return result
}
