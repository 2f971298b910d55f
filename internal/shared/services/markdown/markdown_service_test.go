package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("**Fast** peering\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Fast</strong>")
	assert.NotContains(t, out, "<script>")

	out, err = svc.ToHTMLSanitized("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestToHTMLSanitized_Links(t *testing.T) {
	out, err := NewService().ToHTMLSanitized("[status](https://status.example.com)")
	require.NoError(t, err)
	assert.Contains(t, out, "nofollow")
	assert.Contains(t, out, "noopener")
	assert.Contains(t, out, `target="_blank"`)
}

func TestStripTags(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "Ann Lee", svc.StripTags("<b>Ann</b> Lee"))
	assert.Equal(t, "Tom & Jerry", svc.StripTags("Tom & Jerry"))
	assert.Equal(t, "", svc.StripTags("<script>alert(1)</script>"))
}
