package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	ctx := context.Background()

	for _, email := range []string{"", "plain", "@example.com", "user@"} {
		assert.False(t, IsEmailDomainValid(ctx, nil, email), email)
	}
}

func TestIsEmailDomainValid_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, IsEmailDomainValid(ctx, nil, "user@example.invalid"))
}
