package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvocation(t *testing.T) {
	t.Parallel()

	inv := NewInvocation("dict", "get-word", nil)

	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.NotNil(t, inv.Args)
	assert.Equal(t, "", inv.String("word"))
}

func TestCommandInvocation_Require(t *testing.T) {
	t.Parallel()

	inv := NewInvocation("dict", "search-words", map[string]Arg{
		"query": {Value: "  .*abc.*  ", Required: true},
		"blank": {Value: "   ", Required: true},
	})

	got, err := inv.Require("query")
	require.NoError(t, err)
	assert.Equal(t, ".*abc.*", got)

	_, err = inv.Require("blank")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = inv.Require("missing")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWordRecord_PronunciationFor(t *testing.T) {
	t.Parallel()

	rec := WordRecord{
		Word:          "record",
		Pronunciation: map[string]string{"noun": "ˈrɛkərd", "all": "rɪˈkɔrd"},
	}

	assert.Equal(t, "ˈrɛkərd", rec.PronunciationFor("noun"))
	assert.Equal(t, "rɪˈkɔrd", rec.PronunciationFor("verb"))
	assert.Equal(t, "", WordRecord{}.PronunciationFor("noun"))
	assert.False(t, rec.Defined())
}
