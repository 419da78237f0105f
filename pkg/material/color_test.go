package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorArithmetic(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	assert.True(t, c1.Add(c2).Eq(NewColor(1.6, 0.7, 1.0)))
	assert.True(t, c1.Sub(c2).Eq(NewColor(0.2, 0.5, 0.5)))
	assert.True(t, NewColor(0.2, 0.3, 0.4).Scale(2).Eq(NewColor(0.4, 0.6, 0.8)))
	assert.True(t, NewColor(1, 0.2, 0.4).Multiply(NewColor(0.9, 1, 0.1)).Eq(NewColor(0.9, 0.2, 0.04)))
}

func TestColorClamp(t *testing.T) {
	assert.Equal(t, NewColor(1, 0, 0.5), NewColor(1.5, -0.3, 0.5).Clamp())
	assert.Equal(t, NewColor(0, 1, 1), NewColor(-2, 7, 1).Clamp())
}
