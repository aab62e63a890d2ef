package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

// keys longer than this don't push the other values further right
const maxKeyWidth = 50

var color = aurora.NewAurora(SupportsANSICodes())

func Bold(text string) string {
	return color.Sprintf(color.Bold(text))
}

func RedText(text string) string {
	return color.Sprintf(color.Red(text))
}

func GreenText(text string) string {
	return color.Sprintf(color.Green(text))
}

func YellowText(text string) string {
	return color.Sprintf(color.Yellow(text))
}

func BlueText(text string) string {
	return color.Sprintf(color.Blue(text))
}

func MagentaText(text string) string {
	return color.Sprintf(color.Magenta(text))
}

func GrayText(text string) string {
	return color.Sprintf(color.Gray(12, text))
}

func Heading(text string) string {
	return fmt.Sprintf("%s\n", Bold(text))
}

// KeyValues prints one aligned "key: value" line per entry, sorted by key.
func KeyValues(items map[string]string) string {
	keys := make([]string, 0, len(items))
	longest := 0
	for k := range items {
		keys = append(keys, k)
		if len(k) > longest {
			longest = len(k)
		}
	}
	sort.Strings(keys)
	if longest > maxKeyWidth {
		longest = maxKeyWidth
	}

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%-*s %s\n", longest+1, k+":", items[k])
	}
	return b.String()
}

func UnorderedList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

func OrderedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d) %s\n", i+1, item)
	}
	return b.String()
}

// Truncate shortens text to at most length characters by cutting out the middle.
func Truncate(text string, length int) string {
	if len(text) <= length {
		return text
	}
	keep := length - 3
	if keep < 2 {
		keep = 2
	}
	head := (keep + 1) / 2
	tail := keep / 2
	return text[:head] + "..." + text[len(text)-tail:]
}
