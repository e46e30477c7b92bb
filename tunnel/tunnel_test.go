package tunnel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenRequiresAuthtoken(t *testing.T) {
	tun, err := Open(context.Background(), "")
	assert.Nil(t, tun)
	assert.ErrorIs(t, err, ErrMissingAuthtoken)
	assert.Contains(t, err.Error(), "NGROK_AUTH_TOKEN")
}
