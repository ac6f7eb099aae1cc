package telegram

import (
	"strings"

	"github.com/sangpham2710/rekbot/internal/embed"
)

const timestampLayout = "02 Jan 2006 15:04 MST"

// MarkdownV2 special characters that need escaping
const markdownV2SpecialChars = `_*[]()~` + "`" + `>#+-=|{}.!\`

// escapeMarkdownV2 escapes special characters for Telegram MarkdownV2
func escapeMarkdownV2(text string) string {
	var result strings.Builder
	for _, r := range text {
		if strings.ContainsRune(markdownV2SpecialChars, r) {
			result.WriteRune('\\')
		}
		result.WriteRune(r)
	}
	return result.String()
}

func bold(text string) string {
	return "*" + escapeMarkdownV2(text) + "*"
}

func italic(text string) string {
	return "_" + escapeMarkdownV2(text) + "_"
}

// RenderEnvelope formats an envelope as a Telegram MarkdownV2 message.
// Inline fields share one line with their name; other fields put the value
// on the lines below the name.
func RenderEnvelope(env embed.Envelope) string {
	var b strings.Builder

	b.WriteString(bold(env.Title))
	if env.Description != "" {
		b.WriteString("\n")
		b.WriteString(italic(env.Description))
	}

	if len(env.Fields) > 0 {
		b.WriteString("\n")
	}
	for _, f := range env.Fields {
		b.WriteString("\n")
		if f.Inline {
			b.WriteString(bold(strings.TrimSuffix(f.Name, ":") + ":"))
			b.WriteString(" ")
			b.WriteString(bold(f.Value))
			continue
		}
		b.WriteString(bold(f.Name))
		b.WriteString("\n")
		b.WriteString(escapeMarkdownV2(f.Value))
		b.WriteString("\n")
	}

	footer := env.Footer
	if !env.Timestamp.IsZero() {
		if footer != "" {
			footer += " • "
		}
		footer += env.Timestamp.Format(timestampLayout)
	}
	if footer != "" {
		b.WriteString("\n")
		if len(env.Fields) > 0 && env.Fields[len(env.Fields)-1].Inline {
			b.WriteString("\n")
		}
		b.WriteString(italic(footer))
	}

	return strings.TrimSpace(b.String())
}
