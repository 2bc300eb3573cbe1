package desc

import (
	"strings"

	nethtml "golang.org/x/net/html"
)

// Normalize flattens catalog flavor text into plain prose. The catalog
// embeds form feeds and hard line breaks inside sentences, and some mirrors
// wrap entries in markup; both are stripped.
func Normalize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "<") {
		raw = stripMarkup(raw)
	}
	replacer := strings.NewReplacer(
		"\f", " ",
		"\n", " ",
		"\r", " ",
		"­ ", "",
		"­", "",
		"POKéMON", "Pokémon",
	)
	return strings.Join(strings.Fields(replacer.Replace(raw)), " ")
}

// Lines normalizes and wraps to width.
func Lines(raw string, width int) []string {
	text := Normalize(raw)
	if text == "" {
		return nil
	}
	return WrapText(text, width)
}

func stripMarkup(raw string) string {
	tokenizer := nethtml.NewTokenizer(strings.NewReader(raw))
	var b strings.Builder
	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case nethtml.ErrorToken:
			return b.String()
		case nethtml.TextToken:
			b.Write(tokenizer.Text())
		case nethtml.StartTagToken, nethtml.EndTagToken, nethtml.SelfClosingTagToken:
			b.WriteByte(' ')
		}
	}
}

func WrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	out := make([]string, 0, len(words)/4+1)
	line := ""
	for _, word := range words {
		for len(word) > width {
			if line != "" {
				out = append(out, line)
				line = ""
			}
			out = append(out, word[:width])
			word = word[width:]
		}
		if line == "" {
			line = word
			continue
		}
		if len(line)+1+len(word) <= width {
			line += " " + word
			continue
		}
		out = append(out, line)
		line = word
	}
	if line != "" {
		out = append(out, line)
	}
	return out
}
