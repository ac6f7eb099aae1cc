package commands

import (
	"context"

	"github.com/sangpham2710/rekbot/internal/dictionary"
	"github.com/sangpham2710/rekbot/internal/domain"
	"github.com/sangpham2710/rekbot/internal/embed"
)

// getWord handles /dict get-word [word]. Without a word it first resolves a
// random one and looks that up.
func (r *Router) getWord(ctx context.Context, inv domain.CommandInvocation) *Response {
	env := r.builder.Run(ctx, embed.Dictionary, func(ctx context.Context) (embed.Content, error) {
		word := inv.String("word")
		if word == "" {
			random, err := r.dict.Random(ctx)
			if err != nil {
				return embed.Content{}, err
			}
			r.logger.DebugContext(ctx, "resolved random word", "invocation_id", inv.ID, "word", random)
			word = random
		}

		rec, err := r.dict.Lookup(ctx, word)
		if err != nil {
			return embed.Content{}, err
		}
		fields, err := dictionary.WordFields(rec)
		if err != nil {
			return embed.Content{}, err
		}
		return embed.Content{Fields: fields}, nil
	})
	return &Response{Envelope: &env}
}

// searchWords handles /dict search-words <query>
func (r *Router) searchWords(ctx context.Context, inv domain.CommandInvocation) *Response {
	env := r.builder.Run(ctx, embed.Dictionary, func(ctx context.Context) (embed.Content, error) {
		res, err := r.dict.Search(ctx, inv.String("query"))
		if err != nil {
			return embed.Content{}, err
		}
		return embed.Content{Fields: dictionary.SearchFields(res)}, nil
	})
	return &Response{Envelope: &env}
}
