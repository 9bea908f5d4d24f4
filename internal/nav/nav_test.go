package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildActiveState(t *testing.T) {
	items := Build("/angebote/markisen")

	var angebote *RenderedItem
	for i := range items {
		if items[i].Href == "/angebote" {
			angebote = &items[i]
		} else {
			assert.False(t, items[i].Active, "%s should not be active", items[i].Href)
		}
	}
	require.NotNil(t, angebote)
	assert.True(t, angebote.Active)

	var markisen *RenderedItem
	for i := range angebote.Children {
		if angebote.Children[i].Href == "/angebote/markisen" {
			markisen = &angebote.Children[i]
		}
	}
	require.NotNil(t, markisen)
	assert.True(t, markisen.Active)
}

func TestBuildHomeOnlyActiveAtRoot(t *testing.T) {
	for _, it := range Build("/kontakt") {
		if it.Href == "/" {
			assert.False(t, it.Active)
		}
	}
	for _, it := range Build("/") {
		if it.Href == "/" {
			assert.True(t, it.Active)
		}
	}
}

func TestBreadcrumbs(t *testing.T) {
	t.Run("root", func(t *testing.T) {
		crumbs := Breadcrumbs("/", "")
		require.Len(t, crumbs, 1)
		assert.True(t, crumbs[0].Active)
	})

	t.Run("section with leaf label", func(t *testing.T) {
		crumbs := Breadcrumbs("/regionen/buelach", "Bülach")
		require.Len(t, crumbs, 3)
		assert.Equal(t, "Home", crumbs[0].Label)
		assert.Equal(t, "Regionen", crumbs[1].Label)
		assert.Equal(t, "/regionen", crumbs[1].Href)
		assert.Equal(t, "Bülach", crumbs[2].Label)
		assert.True(t, crumbs[2].Active)
	})

	t.Run("unknown segment falls back to prettified slug", func(t *testing.T) {
		crumbs := Breadcrumbs("/lamellenstoren-buelach", "")
		require.Len(t, crumbs, 2)
		assert.Equal(t, "Lamellenstoren buelach", crumbs[1].Label)
	})
}
