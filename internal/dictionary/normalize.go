package dictionary

import (
	"fmt"
	"strings"

	"github.com/sangpham2710/rekbot/internal/domain"
	"github.com/sangpham2710/rekbot/internal/embed"
)

const (
	// MaxDefinitionsPerGroup caps the definitions shown per part of speech.
	MaxDefinitionsPerGroup = 3

	listMarker    = " - "
	noResultsText = "No words found!"
)

// WordFields renders a word record: a leading field with the word itself,
// then one field per part of speech in first-seen order.
func WordFields(rec domain.WordRecord) ([]embed.Field, error) {
	if !rec.Defined() {
		return nil, domain.NewDomainError(fmt.Sprintf(
			"Requested word %q has no formal definition\nPlease retry using its other word forms", rec.Word))
	}

	var order []string
	groups := make(map[string][]string)
	for _, e := range rec.Entries {
		if _, seen := groups[e.PartOfSpeech]; !seen {
			order = append(order, e.PartOfSpeech)
		}
		groups[e.PartOfSpeech] = append(groups[e.PartOfSpeech], e.Text)
	}

	fields := make([]embed.Field, 0, len(order)+1)
	fields = append(fields, embed.Field{Name: "Word", Value: rec.Word, Inline: true})

	for _, pos := range order {
		defs := groups[pos]
		if len(defs) > MaxDefinitionsPerGroup {
			defs = defs[:MaxDefinitionsPerGroup]
		}
		fields = append(fields, embed.Field{
			Name:  groupName(rec, pos),
			Value: bulletList(defs),
		})
	}
	return fields, nil
}

// SearchFields renders a search result as a single field. It never fails.
func SearchFields(res domain.SearchResult) []embed.Field {
	value := noResultsText
	if len(res.Words) > 0 {
		value = bulletList(res.Words)
	}
	return []embed.Field{{
		Name:  fmt.Sprintf("Search results for %q:", res.Pattern),
		Value: value,
	}}
}

func groupName(rec domain.WordRecord, pos string) string {
	name := "[" + pos + "]"
	if p := rec.PronunciationFor(pos); p != "" {
		name += " /" + p + "/:"
	}
	return name
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = listMarker + item
	}
	return strings.Join(lines, "\n")
}
