package fieldcodec_test

import (
	"testing"

	"go-portfolio-backend/pkg/fieldcodec"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	t.Run("Trims whitespace and drops empties", func(t *testing.T) {
		assert.Equal(t, []string{"Go", "Postgres", "Redis"}, fieldcodec.SplitList(" Go, Postgres ,, Redis , "))
	})

	t.Run("Blank input yields an empty non-nil list", func(t *testing.T) {
		items := fieldcodec.SplitList("")
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("Preserves element order", func(t *testing.T) {
		assert.Equal(t, []string{"c", "a", "b"}, fieldcodec.SplitList("c,a,b"))
	})
}

func TestJoinList(t *testing.T) {
	t.Run("Round trips well-formed lists", func(t *testing.T) {
		original := []string{"Go", "Postgres", "Redis"}
		assert.Equal(t, original, fieldcodec.SplitList(fieldcodec.JoinList(original)))
	})
}

type entry struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

func TestDecodeJSONList(t *testing.T) {
	t.Run("Blank text decodes to an empty list", func(t *testing.T) {
		items, err := fieldcodec.DecodeJSONList[entry]("  ")
		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("Valid JSON decodes in order", func(t *testing.T) {
		items, err := fieldcodec.DecodeJSONList[entry](`[{"name":"b"},{"name":"a"}]`)
		assert.NoError(t, err)
		assert.Equal(t, "b", items[0].Name)
		assert.Equal(t, "a", items[1].Name)
	})

	t.Run("Malformed JSON is an error, never an empty list", func(t *testing.T) {
		items, err := fieldcodec.DecodeJSONList[entry](`[{"name":`)
		assert.Error(t, err)
		assert.Nil(t, items)
	})

	t.Run("JSON null decodes to an empty list", func(t *testing.T) {
		items, err := fieldcodec.DecodeJSONList[entry]("null")
		assert.NoError(t, err)
		assert.NotNil(t, items)
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := []entry{
		{Name: "first", Role: "lead"},
		{Name: "second"},
	}

	text, err := fieldcodec.EncodeJSONList(original)
	assert.NoError(t, err)

	decoded, err := fieldcodec.DecodeJSONList[entry](text)
	assert.NoError(t, err)
	assert.Equal(t, original, decoded)
}
