package rs32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferSplitsDataAndECC(t *testing.T) {
	p := NewPolynomFrom([]byte{1, 2, 3, 4, 5})
	buf := bufferFromPolynom(p, 3)

	assert.Equal(t, []byte{1, 2, 3}, buf.Data())
	assert.Equal(t, []byte{4, 5}, buf.ECC())
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, buf.Bytes())
	assert.Equal(t, 5, buf.Len())
}
