package cssom

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/boxpaint/dom/style"
)

// ErrUnsupportedSelector is returned for selectors which are valid CSS but
// use features beyond simple compound selectors (combinators, attributes,
// pseudo-classes).
var ErrUnsupportedSelector = errors.New("unsupported selector")

// ParseSelector reads a simple compound selector of the form
// tag#id.class1.class2, where every part is optional. "*" is the universal
// selector.
func ParseSelector(s string) (style.Selector, error) {
	s = strings.TrimSpace(s)
	csel, err := cascadia.Parse(s)
	if err != nil {
		return style.Selector{}, fmt.Errorf("invalid selector %q: %w", s, err)
	}
	var tag, id string
	var classes []string
	rest := s
	if strings.HasPrefix(rest, "*") {
		rest = rest[1:]
	} else {
		tag, rest = ident(rest)
		tag = strings.ToLower(tag)
	}
	for rest != "" {
		var name string
		switch rest[0] {
		case '#':
			if id != "" {
				return style.Selector{}, fmt.Errorf("%w: more than one id in %q", ErrUnsupportedSelector, s)
			}
			id, rest = ident(rest[1:])
			name = id
		case '.':
			name, rest = ident(rest[1:])
			classes = append(classes, name)
		default:
			return style.Selector{}, fmt.Errorf("%w: %q", ErrUnsupportedSelector, s)
		}
		if name == "" {
			return style.Selector{}, fmt.Errorf("invalid selector %q", s)
		}
	}
	// cascadia counts every selector feature; a mismatch means we dropped one
	counted := style.Specificity{0, len(classes), 0}
	if id != "" {
		counted[0] = 1
	}
	if tag != "" {
		counted[2] = 1
	}
	if have := style.Specificity(csel.Specificity()); have != counted {
		return style.Selector{}, fmt.Errorf("%w: %q has specificity %v", ErrUnsupportedSelector, s, have)
	}
	return style.NewSelector(tag, id, classes...), nil
}

// ParseSelectorGroup reads a comma separated list of selectors.
func ParseSelectorGroup(s string) ([]style.Selector, error) {
	parts := strings.Split(s, ",")
	sels := make([]style.Selector, 0, len(parts))
	for _, part := range parts {
		sel, err := ParseSelector(part)
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	return sels, nil
}

// ParseDeclaration reads a declaration of the form `name: value;`. The
// trailing semicolon is optional, a trailing "!important" is dropped.
func ParseDeclaration(s string) (style.Declaration, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ";")
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return style.Declaration{}, fmt.Errorf("invalid declaration %q: missing colon", s)
	}
	name := strings.ToLower(strings.TrimSpace(s[:colon]))
	if name == "" {
		return style.Declaration{}, fmt.Errorf("invalid declaration %q: missing name", s)
	}
	value := strings.TrimSpace(s[colon+1:])
	value = strings.TrimSpace(strings.TrimSuffix(value, "!important"))
	return style.Declare(name, ParseValue(value)), nil
}

// ident splits off a leading CSS identifier.
func ident(s string) (string, string) {
	i := 0
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		if !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' ||
			r >= 'A' && r <= 'Z' || r >= utf8.RuneSelf) {
			break
		}
		i += w
	}
	return s[:i], s[i:]
}
