package webpage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/webpage"
)

func TestParseSchemaOrg_SingleObject(t *testing.T) {
	t.Parallel()

	items := webpage.ParseSchemaOrg(`{"@type": "NewsArticle", "headline": "Test"}`)

	require.Len(t, items, 1)
	assert.Equal(t, "NewsArticle", items[0].SchemaType)
	assert.Equal(t, "Test", items[0].GetString("headline"))
}

func TestParseSchemaOrg_Array(t *testing.T) {
	t.Parallel()

	items := webpage.ParseSchemaOrg(`[{"@type": "Article"}, {"@type": "WebPage"}]`)

	require.Len(t, items, 2)
	assert.Equal(t, "Article", items[0].SchemaType)
	assert.Equal(t, "WebPage", items[1].SchemaType)
}

func TestParseSchemaOrg_Graph(t *testing.T) {
	t.Parallel()

	items := webpage.ParseSchemaOrg(`{
		"@context": "https://schema.org",
		"@graph": [
			{"@type": "Organization", "name": "Example"},
			{"@type": "WebSite", "url": "https://example.org"}
		]
	}`)

	require.Len(t, items, 2)
	assert.Equal(t, "Organization", items[0].SchemaType)
	assert.Equal(t, "Example", items[0].GetString("name"))
	assert.Equal(t, "WebSite", items[1].SchemaType)
}

func TestParseSchemaOrg_NestedGraphStaysOpaque(t *testing.T) {
	t.Parallel()

	items := webpage.ParseSchemaOrg(`{
		"@type": "WebPage",
		"mainEntity": {"@graph": [{"@type": "Hidden"}]}
	}`)

	require.Len(t, items, 1)
	assert.Equal(t, "WebPage", items[0].SchemaType)
	assert.NotNil(t, items[0].GetObject("mainEntity"))
}

func TestParseSchemaOrg_MultipleTypesTakesFirst(t *testing.T) {
	t.Parallel()

	items := webpage.ParseSchemaOrg(`{"@type": ["Article", "BlogPosting"]}`)

	require.Len(t, items, 1)
	assert.Equal(t, "Article", items[0].SchemaType)
}

func TestParseSchemaOrg_DroppedShapes(t *testing.T) {
	t.Parallel()

	t.Run("invalid JSON", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, webpage.ParseSchemaOrg("not json"))
	})

	t.Run("scalar", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, webpage.ParseSchemaOrg(`"just a string"`))
	})

	t.Run("null", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, webpage.ParseSchemaOrg("null"))
	})

	t.Run("object without @type", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, webpage.ParseSchemaOrg("{}"))
	})

	t.Run("non-object array elements", func(t *testing.T) {
		t.Parallel()
		items := webpage.ParseSchemaOrg(`[1, "two", {"@type": "Article"}]`)
		require.Len(t, items, 1)
		assert.Equal(t, "Article", items[0].SchemaType)
	})

	t.Run("numeric @type", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, webpage.ParseSchemaOrg(`{"@type": 42}`))
	})
}

func TestSchemaOrg_Accessors(t *testing.T) {
	t.Parallel()

	items := webpage.ParseSchemaOrg(`{
		"@type": "Product",
		"name": "Widget",
		"price": 99,
		"offers": {"@type": "Offer"},
		"images": ["a.jpg", "b.jpg"]
	}`)
	require.Len(t, items, 1)

	product := items[0]
	assert.Equal(t, "Widget", product.GetString("name"))
	price, ok := product.GetInt64("price")
	require.True(t, ok)
	assert.Equal(t, int64(99), price)
	assert.NotNil(t, product.GetObject("offers"))
	assert.Len(t, product.GetArray("images"), 2)
}
