package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nh-yoz/Dict/utils"
)

func TestCompare(t *testing.T) {
	t.Run("ascending", func(t *testing.T) {
		cmp := utils.Compare[int](utils.AscOrder)

		assert.Negative(t, cmp(1, 2))
		assert.Zero(t, cmp(2, 2))
		assert.Positive(t, cmp(3, 2))
	})

	t.Run("descending", func(t *testing.T) {
		cmp := utils.Compare[string](utils.DescOrder)

		assert.Positive(t, cmp("a", "b"))
		assert.Zero(t, cmp("b", "b"))
		assert.Negative(t, cmp("c", "b"))
	})
}

func TestGetZero(t *testing.T) {
	assert.Equal(t, 0, utils.GetZero[int]())
	assert.Equal(t, "", utils.GetZero[string]())
	assert.Nil(t, utils.GetZero[*int]())
}
