// Package embed builds the response envelopes sent back for every command.
package embed

import (
	"time"

	"github.com/sangpham2710/rekbot/internal/domain"
)

// ErrorMarker is the name of the single field carried by failure envelopes.
const ErrorMarker = "ERROR!!!"

// Field is one name/value row of an envelope.
type Field struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Inline bool   `yaml:"inline,omitempty"`
}

// Envelope is the response object produced once per invocation. Success and
// failure envelopes share the same shape.
type Envelope struct {
	Title       string                 `yaml:"title"`
	Description string                 `yaml:"description"`
	Color       int                    `yaml:"color"`
	Timestamp   time.Time              `yaml:"timestamp"`
	Footer      string                 `yaml:"footer"`
	Fields      []Field                `yaml:"fields,omitempty"`
	Image       *domain.ImageReference `yaml:"image,omitempty"`
}

// Failed reports whether the envelope is a failure envelope.
func (e Envelope) Failed() bool {
	return len(e.Fields) == 1 && e.Fields[0].Name == ErrorMarker
}

// Content is what a pipeline contributes to a success envelope.
type Content struct {
	Fields []Field
	Image  *domain.ImageReference
}

// Family groups commands that share presentation metadata.
type Family int

const (
	Dictionary Family = iota + 1
	Cat
)

func (f Family) String() string {
	switch f {
	case Dictionary:
		return "dictionary"
	case Cat:
		return "cat"
	default:
		return "unknown"
	}
}

// Template is the static metadata of a family.
type Template struct {
	Title       string
	Description string
	Footer      string
	Color       int
}

const (
	defaultColor  = 0x0099ff
	defaultFooter = "Copyright © since 2021"
)

var templates = map[Family]Template{
	Dictionary: {
		Title:       "📖 REK7on's Dictionary",
		Description: "Do not spam! (2500 reqs/day only 🥺)",
		Footer:      defaultFooter,
		Color:       defaultColor,
	},
	Cat: {
		Title:       "📖 REK7on's Cat Shelter",
		Description: "Get cute pictures of cats",
		Footer:      defaultFooter,
		Color:       defaultColor,
	},
}

// TemplateFor returns the template of a family.
func TemplateFor(f Family) Template {
	return templates[f]
}
