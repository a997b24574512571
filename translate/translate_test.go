package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("address 7 out of range", From("address %d out of range", 7))
	assert.Equal("plain", From("plain"))
}
