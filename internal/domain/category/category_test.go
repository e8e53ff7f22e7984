package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("عطل عداد", "عطل فني في العداد", "#C0392B")
	require.NoError(t, err)
	assert.Equal(t, "#c0392b", c.ColorCode())

	c, err = NewCategory("أخرى", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultColorCode, c.ColorCode())

	_, err = NewCategory(" ", "", "")
	assert.Error(t, err)

	_, err = NewCategory("x", "", "red")
	assert.Error(t, err)
}
