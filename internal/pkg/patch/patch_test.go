//go:build unit

package patch_test

import (
	"testing"

	"storefront/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := 20.0
	assert.Equal(t, 20.0, patch.Coalesce(&v, 5))
	assert.Equal(t, 5.0, patch.Coalesce[float64](nil, 5))
}

func TestClone(t *testing.T) {
	s := "SUMMER"
	c := patch.Clone(&s)
	*c = "WINTER"
	assert.Equal(t, "SUMMER", s)
	assert.Nil(t, patch.Clone[string](nil))
}

func TestCloneSlice(t *testing.T) {
	src := []string{"ebook", "program"}
	dst := patch.CloneSlice(src)
	dst[0] = "repas"
	assert.Equal(t, "ebook", src[0])
	assert.Nil(t, patch.CloneSlice[string](nil))
	assert.NotNil(t, patch.CloneSlice([]string{}))
}
