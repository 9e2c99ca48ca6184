package prompt_test

import (
	"testing"

	"github.com/arthur-debert/warden/pkg/prompt"
	"github.com/stretchr/testify/assert"
)

func TestResult_Tags(t *testing.T) {
	ok := prompt.Of("yes")
	assert.False(t, ok.Cancelled)
	assert.Equal(t, "yes", ok.Value)

	cancelled := prompt.Cancelled[string]()
	assert.True(t, cancelled.Cancelled)
	assert.Empty(t, cancelled.Value)
}
