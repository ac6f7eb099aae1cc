// Package commands routes parsed bot commands to their handler pipelines
package commands

import (
	"context"
	"log/slog"
	"strings"

	"github.com/sangpham2710/rekbot/internal/catimg"
	"github.com/sangpham2710/rekbot/internal/domain"
	"github.com/sangpham2710/rekbot/internal/embed"
)

// Response represents the result of executing a command. Exactly one of
// Text or Envelope is set.
type Response struct {
	Text     string
	Envelope *embed.Envelope
}

// Dictionary is the word service used by the dict commands
type Dictionary interface {
	Lookup(ctx context.Context, word string) (domain.WordRecord, error)
	Random(ctx context.Context) (string, error)
	Search(ctx context.Context, pattern string) (domain.SearchResult, error)
}

// Images is the image service used by the cat commands
type Images interface {
	Fetch(ctx context.Context, mode catimg.Mode, text string) (domain.ImageReference, error)
}

// Route identifies one (command, subcommand) pair the bot answers.
type Route int

const (
	// RouteNone is every pair the bot does not answer. Dispatching it is a no-op.
	RouteNone Route = iota
	RoutePing
	RouteDictGetWord
	RouteDictSearch
	RouteCatPic
	RouteCatGif
	RouteCatSays
)

type routeKey struct {
	command    string
	subcommand string
}

var routes = map[routeKey]Route{
	{"ping", ""}:             RoutePing,
	{"dict", "get-word"}:     RouteDictGetWord,
	{"dict", "search-words"}: RouteDictSearch,
	{"cat", "pic"}:           RouteCatPic,
	{"cat", "img"}:           RouteCatPic,
	{"cat", "gif"}:           RouteCatGif,
	{"cat", "says"}:          RouteCatSays,
}

// Resolve maps a command and subcommand to a route.
func Resolve(command, subcommand string) Route {
	return routes[routeKey{command: command, subcommand: subcommand}]
}

type handlerFunc func(ctx context.Context, inv domain.CommandInvocation) *Response

// Router dispatches invocations to their handlers
type Router struct {
	dict     Dictionary
	images   Images
	builder  *embed.Builder
	logger   *slog.Logger
	handlers map[Route]handlerFunc
	required map[Route][]string
}

// NewRouter creates a router with every route bound to its handler
func NewRouter(dict Dictionary, images Images, builder *embed.Builder, logger *slog.Logger) *Router {
	r := &Router{
		dict:     dict,
		images:   images,
		builder:  builder,
		logger:   logger.With("component", "router"),
		required: requiredArgs(),
	}
	r.handlers = map[Route]handlerFunc{
		RoutePing:        r.ping,
		RouteDictGetWord: r.getWord,
		RouteDictSearch:  r.searchWords,
		RouteCatPic:      r.catPic,
		RouteCatGif:      r.catGif,
		RouteCatSays:     r.catSays,
	}
	return r
}

// Dispatch runs the pipeline for inv. It returns nil, nil for pairs the bot
// does not answer, and a validation error, without running anything, when a
// required argument is missing. The pipeline is detached from ctx
// cancellation so it always completes with one response.
func (r *Router) Dispatch(ctx context.Context, inv domain.CommandInvocation) (*Response, error) {
	route := Resolve(inv.Command, inv.Subcommand)
	handler, ok := r.handlers[route]
	if !ok {
		r.logger.DebugContext(ctx, "ignoring unrouted command",
			"invocation_id", inv.ID,
			"command", inv.Command,
			"subcommand", inv.Subcommand,
		)
		return nil, nil
	}

	for _, name := range r.required[route] {
		if _, err := inv.Require(name); err != nil {
			return nil, err
		}
	}

	r.logger.InfoContext(ctx, "dispatching command",
		"invocation_id", inv.ID,
		"command", inv.Command,
		"subcommand", inv.Subcommand,
	)
	return handler(context.WithoutCancel(ctx), inv), nil
}

// ParseCommand extracts the command name and args from a message
// Returns empty string if not a command
func ParseCommand(text string) (name string, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}
	parts := strings.SplitN(strings.TrimSpace(text), " ", 2)
	name = strings.TrimPrefix(parts[0], "/")
	// Group chats address commands as /cmd@botname
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	name = strings.ToLower(strings.ReplaceAll(name, "_", "-"))
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}
	return name, args
}
