package embed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sangpham2710/rekbot/internal/domain"
)

// Pipeline is one client call followed by one normalizer.
type Pipeline func(ctx context.Context) (Content, error)

// Builder merges pipeline output with family templates.
type Builder struct {
	now    func() time.Time
	logger *slog.Logger
}

// NewBuilder creates a Builder. A nil now defaults to time.Now.
func NewBuilder(logger *slog.Logger, now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{
		now:    now,
		logger: logger.With("component", "embed"),
	}
}

func (b *Builder) base(f Family) Envelope {
	t := TemplateFor(f)
	return Envelope{
		Title:       t.Title,
		Description: t.Description,
		Color:       t.Color,
		Timestamp:   b.now().UTC(),
		Footer:      t.Footer,
	}
}

// Success builds a success envelope from pipeline content.
func (b *Builder) Success(f Family, c Content) Envelope {
	env := b.base(f)
	env.Fields = c.Fields
	env.Image = c.Image
	return env
}

// Failure builds a failure envelope whose only field carries err's message.
func (b *Builder) Failure(f Family, err error) Envelope {
	env := b.base(f)
	env.Fields = []Field{{Name: ErrorMarker, Value: err.Error()}}
	return env
}

// Run executes p and always returns exactly one envelope. Every error and
// panic raised inside p ends here.
func (b *Builder) Run(ctx context.Context, f Family, p Pipeline) (env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.ErrorContext(ctx, "pipeline panicked",
				"family", f.String(),
				"panic", r,
			)
			env = b.Failure(f, fmt.Errorf("internal error"))
		}
	}()

	content, err := p(ctx)
	if err != nil {
		b.logFailure(ctx, f, err)
		return b.Failure(f, err)
	}
	return b.Success(f, content)
}

func (b *Builder) logFailure(ctx context.Context, f Family, err error) {
	kind := domain.KindOf(err)
	level := slog.LevelWarn
	if kind == 0 {
		level = slog.LevelError
	}
	b.logger.Log(ctx, level, "pipeline failed",
		"family", f.String(),
		"kind", kind.String(),
		"error", err,
	)
}
