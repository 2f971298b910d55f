package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "v1.2.3", Normalize("1.2.3"))
	assert.Equal(t, "v1.2.3", Normalize(" v1.2.3 "))
}

func TestIsRelease(t *testing.T) {
	assert.True(t, IsRelease("1.0.0"))
	assert.False(t, IsRelease("v1.0.0-rc.1"))
	assert.False(t, IsRelease("dev"))
}

func TestString(t *testing.T) {
	origVersion, origCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = origVersion, origCommit })

	Version, Commit = "dev", ""
	assert.Equal(t, "dev", String())

	Version, Commit = "1.4.0", "0123456789abcdef"
	assert.Equal(t, "v1.4.0 (0123456)", String())
}
