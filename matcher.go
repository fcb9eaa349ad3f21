package renamer

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher decides whether a basename matches a MatchRule and computes the
// substituted name. Patterns are compiled once, at construction.
type Matcher struct {
	rule MatchRule
	rx   *regexp.Regexp
	repl string
}

// NewMatcher validates and compiles the rule. An invalid regex pattern is a
// fatal configuration error and must abort before any traversal starts.
func NewMatcher(rule MatchRule) (*Matcher, error) {
	m := &Matcher{rule: rule}
	switch {
	case rule.Regex:
		pat := rule.Pattern
		if !rule.CaseSensitive {
			pat = "(?i)" + pat
		}
		rx, err := regexp.Compile(pat)
		if err != nil {
			return nil, &ConfigError{Reason: fmt.Sprintf("invalid regex pattern %q", rule.Pattern), Err: err}
		}
		m.rx = rx
		m.repl = translateBackrefs(rule.Replacement)
	case !rule.CaseSensitive:
		// Literal case-insensitive matching reuses the regex engine with a
		// quoted pattern so every occurrence is replaced regardless of case.
		m.rx = regexp.MustCompile("(?i)" + regexp.QuoteMeta(rule.Pattern))
	}
	return m, nil
}

// Match reports whether name contains (literal) or matches (regex) the rule.
func (m *Matcher) Match(name string) bool {
	if m.rule.Pattern == "" {
		return false
	}
	if m.rx != nil {
		return m.rx.MatchString(name)
	}
	return strings.Contains(name, m.rule.Pattern)
}

// Rewrite returns the substituted name and whether the rule matched. All
// occurrences within the basename are replaced. A matched name may come back
// unchanged when the replacement equals the matched text.
func (m *Matcher) Rewrite(name string) (string, bool) {
	if !m.Match(name) {
		return name, false
	}
	switch {
	case m.rule.Regex:
		return m.rx.ReplaceAllString(name, m.repl), true
	case m.rx != nil:
		return m.rx.ReplaceAllLiteralString(name, m.rule.Replacement), true
	default:
		return strings.ReplaceAll(name, m.rule.Pattern, m.rule.Replacement), true
	}
}

// translateBackrefs converts \1-style group references to Go's ${1} form.
// A plain $ is made literal, \$ stays a literal $, and \\ yields a single
// backslash, so only backslash-digit sequences are special in replacements.
func translateBackrefs(repl string) string {
	var b strings.Builder
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		switch {
		case c == '$':
			b.WriteString("$$")
		case c == '\\' && i+1 < len(repl):
			next := repl[i+1]
			if next >= '0' && next <= '9' {
				j := i + 1
				for j < len(repl) && repl[j] >= '0' && repl[j] <= '9' {
					j++
				}
				b.WriteString("${")
				b.WriteString(repl[i+1 : j])
				b.WriteString("}")
				i = j - 1
			} else if next == '$' {
				b.WriteString("$$")
				i++
			} else {
				b.WriteByte(next)
				i++
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
