package reflector

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ParseGenericType parses a type written the way it is in Java source, such as
// `java.util.Map<String, List<Integer>>`, `int[]` or `? extends Number`.
// Wildcard bounds are accepted but not kept
func ParseGenericType(text string) (GenericType, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty type", ErrGenericType)
	}
	if text == "?" || strings.HasPrefix(text, "? extends ") || strings.HasPrefix(text, "? super ") {
		return Wildcard(), nil
	}

	start := strings.Index(text, "<")
	if start == -1 {
		if strings.ContainsAny(text, ">, ") {
			return nil, fmt.Errorf("%w: malformed type %q", ErrGenericType, text)
		}
		return Named(text), nil
	}

	end := strings.LastIndex(text, ">")
	if end < start {
		return nil, fmt.Errorf("%w: unbalanced angle brackets in %q", ErrGenericType, text)
	}
	if suffix := strings.TrimSpace(text[end+1:]); suffix != "" {
		if strings.Trim(suffix, "[] ") != "" {
			return nil, fmt.Errorf("%w: unexpected %q after type arguments in %q", ErrGenericType, suffix, text)
		}
		component, err := ParseGenericType(text[:end+1])
		if err != nil {
			return nil, err
		}
		for i := 0; i < strings.Count(suffix, "[]"); i++ {
			component = ArrayOf(component)
		}
		return component, nil
	}

	argTexts := splitTypeArguments(text[start+1 : end])
	if argTexts == nil {
		return nil, fmt.Errorf("%w: malformed type arguments in %q", ErrGenericType, text)
	}
	args := make([]GenericType, len(argTexts))
	for i, argText := range argTexts {
		arg, err := ParseGenericType(argText)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return Named(strings.TrimSpace(text[:start]), args...), nil
}

// splitTypeArguments splits a type argument list on its top-level commas.
// It returns nil when the angle brackets are unbalanced
func splitTypeArguments(argsStr string) []string {
	var result []string
	var current strings.Builder
	depth := 0

	for _, ch := range argsStr {
		switch ch {
		case '<':
			depth++
			current.WriteRune(ch)
		case '>':
			depth--
			if depth < 0 {
				log.WithField("typeStr", argsStr).Warn("Unbalanced angle brackets in type string: too many '>'")
				return nil
			}
			current.WriteRune(ch)
		case ',':
			if depth == 0 {
				trimmed := strings.TrimSpace(current.String())
				if trimmed == "" {
					return nil
				}
				result = append(result, trimmed)
				current.Reset()
			} else {
				current.WriteRune(ch)
			}
		default:
			current.WriteRune(ch)
		}
	}

	if depth != 0 {
		log.WithField("typeStr", argsStr).Warn("Unbalanced angle brackets in type string: unclosed '<'")
		return nil
	}

	trimmed := strings.TrimSpace(current.String())
	if trimmed == "" {
		return nil
	}
	return append(result, trimmed)
}
