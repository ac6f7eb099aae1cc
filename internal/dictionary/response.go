package dictionary

import (
	"encoding/json"
	"fmt"
)

// apiWord is the WordsAPI payload for a single word (lookup and random).
type apiWord struct {
	Word          string           `json:"word"`
	Results       []apiResult      `json:"results"`
	Pronunciation apiPronunciation `json:"pronunciation"`
}

// apiResult is one sense of a word. PartOfSpeech is null for some senses.
type apiResult struct {
	Definition   string  `json:"definition"`
	PartOfSpeech *string `json:"partOfSpeech"`
}

// apiPronunciation is either an object keyed by part of speech or, for some
// words, a bare string that applies to every part of speech.
type apiPronunciation map[string]string

func (p *apiPronunciation) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = nil
		return nil
	}

	var all string
	if err := json.Unmarshal(data, &all); err == nil {
		*p = apiPronunciation{"all": all}
		return nil
	}

	var byPOS map[string]string
	if err := json.Unmarshal(data, &byPOS); err != nil {
		return fmt.Errorf("pronunciation: %w", err)
	}
	*p = byPOS
	return nil
}

// apiSearch is the WordsAPI payload for a letter-pattern search.
type apiSearch struct {
	Results struct {
		Total int      `json:"total"`
		Data  []string `json:"data"`
	} `json:"results"`
}
