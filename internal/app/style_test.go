package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyled_PlainWithoutColor(t *testing.T) {
	a := NewApp(&SafeBuffer{}, &SafeBuffer{}, &Config{})
	assert.Equal(t, "0: exp1", a.styled(headerStyle, "0: exp1"))

	colored := NewApp(&SafeBuffer{}, &SafeBuffer{}, &Config{}, WithColor(true))
	assert.Contains(t, colored.styled(headerStyle, "0: exp1"), "0: exp1")
}
