package valueobjects

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	e, err := NewEmail("  A@X.com ")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", e.String())
	assert.Equal(t, "x.com", e.Domain())

	for _, bad := range []string{"", "plain", "a@b", "a b@x.com"} {
		_, err := NewEmail(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewName(t *testing.T) {
	n, err := NewName("  Zoë   Müller ")
	require.NoError(t, err)
	assert.Equal(t, "Zoë Müller", n.String())

	_, err = NewName("   ")
	assert.Error(t, err)

	_, err = NewName(strings.Repeat("x", maxNameLength+1))
	assert.Error(t, err)
}

func TestNewPassword(t *testing.T) {
	_, err := NewPassword("pw1234")
	assert.NoError(t, err)

	_, err = NewPassword("")
	assert.Error(t, err)

	_, err = NewPassword(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestPlan(t *testing.T) {
	p, err := ParsePlan("Premium")
	require.NoError(t, err)
	assert.Equal(t, PlanPremium, p)
	assert.Equal(t, "Premium", p.Label())
	assert.Equal(t, "Business", PlanBusiness.Label())

	_, err = ParsePlan("gold")
	assert.Error(t, err)
}

func TestPlan_LabelConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				assert.Equal(t, "Business", PlanBusiness.Label())
				assert.Equal(t, "Free", PlanFree.Label())
			}
		}()
	}
	wg.Wait()
}
