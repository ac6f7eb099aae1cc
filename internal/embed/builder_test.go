package embed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangpham2710/rekbot/internal/domain"
)

var fixedNow = time.Date(2021, 10, 17, 12, 0, 0, 0, time.UTC)

func newTestBuilder() *Builder {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewBuilder(logger, func() time.Time { return fixedNow })
}

func TestBuilder_RunSuccess(t *testing.T) {
	t.Parallel()

	b := newTestBuilder()
	env := b.Run(context.Background(), Dictionary, func(ctx context.Context) (Content, error) {
		return Content{Fields: []Field{{Name: "Word", Value: "foo", Inline: true}}}, nil
	})

	assert.False(t, env.Failed())
	assert.Equal(t, "📖 REK7on's Dictionary", env.Title)
	assert.Equal(t, "Do not spam! (2500 reqs/day only 🥺)", env.Description)
	assert.Equal(t, "Copyright © since 2021", env.Footer)
	assert.Equal(t, 0x0099ff, env.Color)
	assert.Equal(t, fixedNow, env.Timestamp)
	require.Len(t, env.Fields, 1)
	assert.Equal(t, "foo", env.Fields[0].Value)
}

func TestBuilder_RunFailureByKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"validation", domain.NewValidationError("query")},
		{"upstream", domain.NewUpstreamError(`Cannot find requested word: "zephyr"`, errors.New("404"))},
		{"domain", domain.NewDomainError("no formal definition")},
		{"untyped", errors.New("something else")},
	}

	b := newTestBuilder()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := b.Run(context.Background(), Cat, func(ctx context.Context) (Content, error) {
				return Content{}, tt.err
			})

			assert.True(t, env.Failed())
			assert.Equal(t, "📖 REK7on's Cat Shelter", env.Title)
			require.Len(t, env.Fields, 1)
			assert.Equal(t, ErrorMarker, env.Fields[0].Name)
			assert.Equal(t, tt.err.Error(), env.Fields[0].Value)
			assert.Nil(t, env.Image)
		})
	}
}

func TestBuilder_RunRecoversPanic(t *testing.T) {
	t.Parallel()

	b := newTestBuilder()
	env := b.Run(context.Background(), Dictionary, func(ctx context.Context) (Content, error) {
		panic("nil map")
	})

	assert.True(t, env.Failed())
	assert.Equal(t, "internal error", env.Fields[0].Value)
}

func TestBuilder_SuccessAndFailureShareMetadata(t *testing.T) {
	t.Parallel()

	b := newTestBuilder()
	ok := b.Success(Cat, Content{Image: &domain.ImageReference{URL: "https://cataas.com/cat"}})
	bad := b.Failure(Cat, errors.New("Not Found"))

	assert.Equal(t, ok.Title, bad.Title)
	assert.Equal(t, ok.Description, bad.Description)
	assert.Equal(t, ok.Footer, bad.Footer)
	assert.Equal(t, ok.Color, bad.Color)
	assert.Equal(t, ok.Timestamp, bad.Timestamp)
	assert.False(t, ok.Failed())
}

func TestFamily_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dictionary", Dictionary.String())
	assert.Equal(t, "cat", Cat.String())
	assert.Equal(t, "unknown", Family(0).String())
}
