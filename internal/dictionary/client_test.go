package dictionary

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangpham2710/rekbot/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "secret"}, srv.Client(), newTestLogger())
	return c, &calls
}

func TestClient_Lookup_Success(t *testing.T) {
	t.Parallel()

	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/words/foo", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, DefaultHost, r.Header.Get("x-rapidapi-host"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"word": "foo",
			"results": [
				{"definition": "a placeholder", "partOfSpeech": "noun"},
				{"definition": "unclassified", "partOfSpeech": null}
			],
			"pronunciation": {"all": "fu"}
		}`))
	})

	rec, err := c.Lookup(context.Background(), "foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", rec.Word)
	assert.Equal(t, []domain.Definition{{PartOfSpeech: "noun", Text: "a placeholder"}}, rec.Entries)
	assert.Equal(t, "fu", rec.PronunciationFor("noun"))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Lookup_StringPronunciation(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"word":"zephyr","results":[{"definition":"a breeze","partOfSpeech":"noun"}],"pronunciation":"ˈzɛfər"}`))
	})

	rec, err := c.Lookup(context.Background(), "zephyr")
	require.NoError(t, err)
	assert.Equal(t, "ˈzɛfər", rec.PronunciationFor("noun"))
}

func TestClient_Lookup_NoResults(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"word":"running","frequency":4.5}`))
	})

	rec, err := c.Lookup(context.Background(), "running")
	require.NoError(t, err)
	assert.False(t, rec.Defined())
}

func TestClient_Lookup_EscapesWord(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/words/ice%20cream", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"word":"ice cream","results":[]}`))
	})

	_, err := c.Lookup(context.Background(), "ice cream")
	require.NoError(t, err)
}

func TestClient_Lookup_NotFound(t *testing.T) {
	t.Parallel()

	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"word not found"}`))
	})

	_, err := c.Lookup(context.Background(), "zephyr")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, `Cannot find requested word: "zephyr"`, err.Error())
	assert.Equal(t, int32(1), calls.Load(), "no retries")
}

func TestClient_Lookup_EmptyWord(t *testing.T) {
	t.Parallel()

	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.Lookup(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, int32(0), calls.Load())
}

func TestClient_Random(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/words/", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("random"))
		_, _ = w.Write([]byte(`{"word":"zephyr"}`))
	})

	word, err := c.Random(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "zephyr", word)
}

func TestClient_Random_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
		{"empty word", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{}`)) }},
		{"invalid json", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`not json`)) }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _ := newTestClient(t, tt.h)
			_, err := c.Random(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUpstream)
			assert.Equal(t, "API Server didn't respond", err.Error())
		})
	}
}

func TestClient_Random_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: baseURL}, nil, newTestLogger())
	_, err := c.Random(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "^ab.*", q.Get("letterPattern"))
		assert.Equal(t, "10", q.Get("limit"))
		_, _ = w.Write([]byte(`{"query":{"letterPattern":"^ab.*","limit":"10"},"results":{"total":3,"data":["abba","abc","abyss"]}}`))
	})

	res, err := c.Search(context.Background(), "^ab.*")
	require.NoError(t, err)
	assert.Equal(t, "^ab.*", res.Pattern)
	assert.Equal(t, []string{"abba", "abc", "abyss"}, res.Words)
}

func TestClient_Search_Empty(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":{"total":0,"data":[]}}`))
	})

	res, err := c.Search(context.Background(), ".*abc.*")
	require.NoError(t, err)
	assert.Empty(t, res.Words)
	assert.NotNil(t, res.Words)
}

func TestClient_Search_EmptyPattern(t *testing.T) {
	t.Parallel()

	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := c.Search(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, int32(0), calls.Load())
}
