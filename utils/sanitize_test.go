package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsScripts(t *testing.T) {
	out := Sanitize(`hello<script>alert("x")</script> world`)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}

func TestSanitizeKeepsPlainText(t *testing.T) {
	assert.Equal(t, "read 30 pages of Dune", Sanitize("read 30 pages of Dune"))
}
