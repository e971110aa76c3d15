package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQRGenerator(t *testing.T) {
	g := DefaultQRGenerator{BaseURL: "http://127.0.0.1:8080/"}

	assert.Equal(t, "http://127.0.0.1:8080/menu/4", g.Link(4))

	png, err := g.Generate(4)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")), "expected PNG output")
}
