package commands

import (
	"fmt"
	"strings"

	"github.com/sangpham2710/rekbot/internal/domain"
)

// Option is a named argument of a subcommand
type Option struct {
	Name        string
	Description string
	Required    bool
}

// Subcommand is one action under a command
type Subcommand struct {
	Name        string
	Description string
	Options     []Option
}

// Spec declares a top-level command
type Spec struct {
	Name        string
	Description string
	Options     []Option
	Subcommands []Subcommand
}

// Schema is the static declaration of every command the bot accepts.
var Schema = []Spec{
	{
		Name:        "ping",
		Description: "Replies with pong!",
	},
	{
		Name:        "dict",
		Description: "A fully fledged dictionary",
		Subcommands: []Subcommand{
			{
				Name:        "get-word",
				Description: "Look up a word, or a random one",
				Options:     []Option{{Name: "word", Description: "Request a word"}},
			},
			{
				Name:        "search-words",
				Description: "Search words by letter pattern",
				Options:     []Option{{Name: "query", Description: "Letter pattern (regex)", Required: true}},
			},
		},
	},
	{
		Name:        "cat",
		Description: "Get cute pictures of cats",
		Subcommands: []Subcommand{
			{
				Name:        "pic",
				Description: "A random cat picture",
				Options:     []Option{{Name: "tags", Description: "Filter by tag"}},
			},
			{
				Name:        "gif",
				Description: "A random cat gif",
			},
			{
				Name:        "says",
				Description: "A cat saying something",
				Options:     []Option{{Name: "text", Description: "What the cat says", Required: true}},
			},
		},
	},
}

// LookupSpec returns the schema entry of a command, or nil.
func LookupSpec(name string) *Spec {
	for i := range Schema {
		if Schema[i].Name == name {
			return &Schema[i]
		}
	}
	return nil
}

func (s *Spec) subcommand(name string) *Subcommand {
	for i := range s.Subcommands {
		if s.Subcommands[i].Name == name {
			return &s.Subcommands[i]
		}
	}
	return nil
}

// Usage returns a one-line usage hint for a command and optional subcommand.
func Usage(command, subcommand string) string {
	spec := LookupSpec(command)
	if spec == nil {
		return ""
	}
	if sub := spec.subcommand(subcommand); sub != nil {
		return "Usage: /" + spec.Name + " " + sub.Name + formatOptions(sub.Options)
	}
	if len(spec.Subcommands) == 0 {
		return "Usage: /" + spec.Name + formatOptions(spec.Options)
	}
	names := make([]string, len(spec.Subcommands))
	for i, sub := range spec.Subcommands {
		names[i] = sub.Name
	}
	return fmt.Sprintf("Usage: /%s <%s>", spec.Name, strings.Join(names, "|"))
}

func formatOptions(opts []Option) string {
	var b strings.Builder
	for _, o := range opts {
		if o.Required {
			b.WriteString(" <" + o.Name + ">")
		} else {
			b.WriteString(" [" + o.Name + "]")
		}
	}
	return b.String()
}

// Parse turns message text into an invocation using the schema. ok is false
// when text is not a command. A missing required option yields the
// invocation together with a validation error.
//
// Commands the schema does not know are still parsed (first word as the
// subcommand) so the router can ignore them.
func Parse(text string) (inv domain.CommandInvocation, ok bool, err error) {
	name, rest := ParseCommand(text)
	if name == "" {
		return domain.CommandInvocation{}, false, nil
	}

	spec := LookupSpec(name)
	if spec == nil {
		// Telegram command names cannot contain spaces: /dict_get_word foo
		spec, rest = splitJoined(name, rest)
	}
	if spec == nil {
		sub, _ := cutWord(rest)
		return domain.NewInvocation(name, sub, nil), true, nil
	}

	var sub *Subcommand
	opts := spec.Options
	subName := ""
	if len(spec.Subcommands) > 0 {
		subName, rest = cutWord(rest)
		subName = strings.ToLower(subName)
		if sub = spec.subcommand(subName); sub != nil {
			opts = sub.Options
		} else if subName == "img" {
			opts = spec.subcommand("pic").Options
		}
	}

	args := bindOptions(opts, rest)
	inv = domain.NewInvocation(spec.Name, subName, args)
	for _, o := range opts {
		if o.Required {
			if _, err := inv.Require(o.Name); err != nil {
				return inv, true, err
			}
		}
	}
	return inv, true, nil
}

// splitJoined resolves names like "dict-get-word" into the dict spec with
// "get-word" pushed back in front of the arguments.
func splitJoined(name, rest string) (*Spec, string) {
	for i := range Schema {
		prefix := Schema[i].Name + "-"
		if strings.HasPrefix(name, prefix) {
			return &Schema[i], strings.TrimSpace(strings.TrimPrefix(name, prefix) + " " + rest)
		}
	}
	return nil, rest
}

// bindOptions assigns one word per option, the last option taking the rest.
func bindOptions(opts []Option, rest string) map[string]domain.Arg {
	args := make(map[string]domain.Arg, len(opts))
	for i, o := range opts {
		var v string
		if i == len(opts)-1 {
			v = strings.TrimSpace(rest)
		} else {
			v, rest = cutWord(rest)
		}
		if v == "" && !o.Required {
			continue
		}
		args[o.Name] = domain.Arg{Value: v, Required: o.Required}
	}
	return args
}

func cutWord(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	word, rest, _ = strings.Cut(s, " ")
	return word, strings.TrimSpace(rest)
}

// requiredArgs indexes the required options of every routed subcommand.
func requiredArgs() map[Route][]string {
	out := make(map[Route][]string)
	for _, spec := range Schema {
		if len(spec.Subcommands) == 0 {
			addRequired(out, Resolve(spec.Name, ""), spec.Options)
			continue
		}
		for _, sub := range spec.Subcommands {
			addRequired(out, Resolve(spec.Name, sub.Name), sub.Options)
		}
	}
	return out
}

func addRequired(out map[Route][]string, route Route, opts []Option) {
	if route == RouteNone {
		return
	}
	for _, o := range opts {
		if o.Required {
			out[route] = append(out[route], o.Name)
		}
	}
}
