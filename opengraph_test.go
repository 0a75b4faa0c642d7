package webpage_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/webpage"
)

func TestOpengraph_Extend_ScalarProperties(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	og.Extend("type", "article")
	og.Extend("title", "Test Article")
	og.Extend("description", "A test description")
	og.Extend("url", "https://example.org/article")
	og.Extend("site_name", "Example")
	og.Extend("locale", "en_US")
	og.Extend("locale:alternate", "fr_FR")
	og.Extend("locale:alternate", "de_DE")

	assert.Equal(t, "article", og.Type)
	assert.Equal(t, "Test Article", og.Title)
	assert.Equal(t, "A test description", og.Description)
	assert.Equal(t, "https://example.org/article", og.URL)
	assert.Equal(t, "Example", og.SiteName)
	assert.Equal(t, "en_US", og.Locale)
	assert.Equal(t, []string{"fr_FR", "de_DE"}, og.LocaleAlternates)
}

func TestOpengraph_Extend_ScalarOverwrites(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	og.Extend("title", "First")
	og.Extend("title", "Second")

	assert.Equal(t, "Second", og.Title)
}

func TestOpengraph_Extend_ImageWithProperties(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	og.Extend("image", "http://example.org/image.png")
	og.Extend("image:secure_url", "https://example.org/image.png")
	og.Extend("image:type", "image/png")
	og.Extend("image:width", "800")
	og.Extend("image:height", "600")
	og.Extend("image:alt", "Example image")

	require.Len(t, og.Images, 1)
	image := og.Images[0]
	assert.Equal(t, "http://example.org/image.png", image.URL)
	assert.Equal(t, "https://example.org/image.png", image.SecureURL)
	assert.Equal(t, "image/png", image.MIMEType)
	require.NotNil(t, image.Width)
	assert.Equal(t, uint32(800), *image.Width)
	require.NotNil(t, image.Height)
	assert.Equal(t, uint32(600), *image.Height)
	assert.Equal(t, "Example image", image.Alt)
}

func TestOpengraph_Extend_ImageURLStartsNewImage(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	og.Extend("image", "http://example.org/one.png")
	og.Extend("image:url", "http://example.org/two.png")

	require.Len(t, og.Images, 2)
	assert.Equal(t, "http://example.org/one.png", og.Images[0].URL)
	assert.Equal(t, "http://example.org/two.png", og.Images[1].URL)
}

func TestOpengraph_Extend_SubPropertiesAttachToLastItem(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	og.Extend("image", "http://example.org/image1.png")
	og.Extend("image:width", "100")
	og.Extend("image", "http://example.org/image2.png")
	og.Extend("image:width", "200")

	require.Len(t, og.Images, 2)
	require.NotNil(t, og.Images[0].Width)
	assert.Equal(t, uint32(100), *og.Images[0].Width)
	require.NotNil(t, og.Images[1].Width)
	assert.Equal(t, uint32(200), *og.Images[1].Width)
}

func TestOpengraph_Extend_BadDimensionLeavesFieldAbsent(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	og.Extend("image", "http://example.org/image.png")
	og.Extend("image:width", "not-a-number")
	og.Extend("image:height", "-5")

	require.Len(t, og.Images, 1)
	assert.Nil(t, og.Images[0].Width)
	assert.Nil(t, og.Images[0].Height)
}

func TestOpengraph_Extend_SubPropertyWithoutItemIsIgnored(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	og.Extend("image:width", "800")

	assert.Empty(t, og.Images)
}

func TestOpengraph_Extend_VideoAndAudioCollections(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	og.Extend("video", "http://example.org/movie.mp4")
	og.Extend("video:type", "video/mp4")
	og.Extend("audio", "http://example.org/sound.mp3")
	og.Extend("audio:type", "audio/mpeg")

	require.Len(t, og.Videos, 1)
	assert.Equal(t, "video/mp4", og.Videos[0].MIMEType)
	require.Len(t, og.Audios, 1)
	assert.Equal(t, "audio/mpeg", og.Audios[0].MIMEType)
}

func TestOpengraph_Extend_UnknownSubPropertyGoesToMediaProperties(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	og.Extend("image", "http://example.org/image.png")
	og.Extend("image:user_generated", "true")

	require.Len(t, og.Images, 1)
	assert.Equal(t, map[string]string{"user_generated": "true"}, og.Images[0].Properties)
}

func TestOpengraph_Extend_UnknownPropertyGoesToProperties(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	og.Extend("determiner", "the")

	assert.Equal(t, map[string]string{"determiner": "the"}, og.Properties)
	assert.NotContains(t, og.Properties, "title")
}

func TestOpengraph_Extend_MediaItemCap(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	for i := 0; i < webpage.MaxMediaItems+10; i++ {
		og.Extend("image", fmt.Sprintf("http://example.org/%d.png", i))
	}

	assert.Len(t, og.Images, webpage.MaxMediaItems)
	assert.Equal(t, "http://example.org/0.png", og.Images[0].URL)
}

func TestOpengraph_IsEmpty(t *testing.T) {
	t.Parallel()

	var og webpage.Opengraph
	assert.True(t, og.IsEmpty())

	og.Extend("title", "Test")
	assert.False(t, og.IsEmpty())
}
