package commands

import (
	"context"

	"github.com/sangpham2710/rekbot/internal/domain"
)

// ping answers /ping with a literal reply, bypassing the envelope pipeline
func (r *Router) ping(ctx context.Context, inv domain.CommandInvocation) *Response {
	return &Response{Text: "Pong!"}
}
