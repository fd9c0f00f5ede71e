package render

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// CardData is the content of a bordered card.
type CardData struct {
	Title       string
	Description string
	// Status selects the border colour: "error", "warning" or "success".
	Status   string
	Metadata map[string]string
}

// Card draws data inside a rounded border no wider than width. Widths of zero
// or less disable wrapping.
func (s Styles) Card(data CardData, width int) string {
	border := s.Panel
	title := s.Title.MarginBottom(0)
	switch data.Status {
	case "error":
		border = border.BorderForeground(s.Removed.GetForeground())
		title = title.Foreground(s.Removed.GetForeground())
	case "warning":
		border = border.BorderForeground(s.Changed.GetForeground())
		title = title.Foreground(s.Changed.GetForeground())
	case "success":
		border = border.BorderForeground(s.Added.GetForeground())
		title = title.Foreground(s.Added.GetForeground())
	}

	inner := width - border.GetHorizontalFrameSize()

	var lines []string
	if data.Title != "" {
		lines = append(lines, title.Render(data.Title))
	}
	if data.Description != "" {
		for _, paragraph := range strings.Split(data.Description, "\n") {
			lines = append(lines, s.Text.Render(wrap(paragraph, inner)))
		}
	}
	if len(data.Metadata) > 0 {
		keys := make([]string, 0, len(data.Metadata))
		for k := range data.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		lines = append(lines, "")
		for _, k := range keys {
			lines = append(lines, s.Muted.Render(wrap(fmt.Sprintf("%s: %s", k, data.Metadata[k]), inner)))
		}
	}

	return border.Render(strings.Join(lines, "\n"))
}

// wrap breaks text on spaces so no line exceeds width runes. Words longer
// than width are split.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	current := ""
	for _, word := range words {
		if utf8.RuneCountInString(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			for len(runes) > width {
				lines = append(lines, string(runes[:width]))
				runes = runes[width:]
			}
			current = string(runes)
			continue
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if utf8.RuneCountInString(candidate) <= width {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}
