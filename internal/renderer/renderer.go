// Package renderer produces the derived, human-facing views of a template:
// the placeholder format string and a markdown summary for display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/framecraft/promptdeck/internal/models"
)

// TokenLookup resolves a token id to its definition.
type TokenLookup func(id string) (models.Token, bool)

// FormatString derives the placeholder preview of a template, e.g.
// "{shotSize} of {subject} in {setting}". It mirrors slot order and literal
// text but is informational only; assembly never reads it.
func FormatString(tmpl models.Template, lookup TokenLookup) string {
	var b strings.Builder
	for _, slot := range tmpl.Slots {
		token, ok := lookup(slot.TokenID)
		if !ok {
			continue
		}
		prefix := slot.Prefix
		if slot.ConditionalPrefix != "" {
			prefix = slot.ConditionalPrefix
		}
		placeholder := token.Placeholder
		if placeholder == "" {
			placeholder = "{" + token.Name + "}"
		}
		b.WriteString(prefix)
		b.WriteString(placeholder)
		b.WriteString(slot.Suffix)
	}
	return strings.TrimSpace(b.String())
}

// MarkdownSummary renders a template as markdown for glamour display in
// the TUI preview pane and the CLI show command.
func MarkdownSummary(tmpl models.Template, lookup TokenLookup) string {
	var b strings.Builder

	b.WriteString("# " + tmpl.Name + "\n\n")
	if tmpl.ModuleID != "" {
		b.WriteString(fmt.Sprintf("Module: `%s`\n\n", tmpl.ModuleID))
	}
	if format := FormatString(tmpl, lookup); format != "" {
		b.WriteString(fmt.Sprintf("Format: `%s`\n\n", format))
	}

	if len(tmpl.Slots) > 0 {
		b.WriteString("| # | Token | Rule | Prefix | Suffix |\n")
		b.WriteString("|---|-------|------|--------|--------|\n")
		for i, slot := range tmpl.Slots {
			name := slot.TokenID
			rule := "?"
			if token, ok := lookup(slot.TokenID); ok {
				name = token.Label
				rule = string(token.Rule)
			}
			prefix := slot.Prefix
			if slot.ConditionalPrefix != "" {
				prefix = slot.ConditionalPrefix + "?"
			}
			b.WriteString(fmt.Sprintf("| %d | %s | %s | `%s` | `%s` |\n",
				i+1, name, rule, prefix, slot.Suffix))
		}
		b.WriteString("\n")
	}

	if len(tmpl.BannedTerms) > 0 {
		b.WriteString("Banned terms: " + strings.Join(tmpl.BannedTerms, ", ") + "\n")
	}

	return b.String()
}
