package commands

import (
	"context"

	"github.com/sangpham2710/rekbot/internal/catimg"
	"github.com/sangpham2710/rekbot/internal/domain"
	"github.com/sangpham2710/rekbot/internal/embed"
)

func (r *Router) catPic(ctx context.Context, inv domain.CommandInvocation) *Response {
	return r.cat(ctx, catimg.ModePic, inv.String("tags"))
}

func (r *Router) catGif(ctx context.Context, inv domain.CommandInvocation) *Response {
	return r.cat(ctx, catimg.ModeGif, "")
}

func (r *Router) catSays(ctx context.Context, inv domain.CommandInvocation) *Response {
	return r.cat(ctx, catimg.ModeSays, inv.String("text"))
}

func (r *Router) cat(ctx context.Context, mode catimg.Mode, text string) *Response {
	env := r.builder.Run(ctx, embed.Cat, func(ctx context.Context) (embed.Content, error) {
		ref, err := r.images.Fetch(ctx, mode, text)
		if err != nil {
			return embed.Content{}, err
		}
		return catimg.Attach(ref), nil
	})
	return &Response{Envelope: &env}
}
