package domain

// PronunciationAll is the pronunciation key used when no part-of-speech
// specific pronunciation exists.
const PronunciationAll = "all"

// Definition is one classified dictionary result.
type Definition struct {
	PartOfSpeech string
	Text         string
}

// WordRecord is a looked-up word. A record with no Entries is undefined.
type WordRecord struct {
	Word          string
	Entries       []Definition
	Pronunciation map[string]string
}

// Defined reports whether the record has at least one classifiable result.
func (w WordRecord) Defined() bool {
	return len(w.Entries) > 0
}

// PronunciationFor returns the pronunciation for a part of speech, falling
// back to the "all" pronunciation. Returns "" when neither exists.
func (w WordRecord) PronunciationFor(partOfSpeech string) string {
	if p := w.Pronunciation[partOfSpeech]; p != "" {
		return p
	}
	return w.Pronunciation[PronunciationAll]
}

// SearchResult is the ordered list of words matching a pattern.
type SearchResult struct {
	Pattern string
	Words   []string
}

// ImageReference points at an image that is probed but never downloaded.
type ImageReference struct {
	URL string `yaml:"url"`
}
