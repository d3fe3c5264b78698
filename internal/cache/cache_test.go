package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOfferKey(t *testing.T) {
	assert.Equal(t, "offer:abc-123", OfferKey("abc-123"))
}

func TestClient_NilIsPermanentMiss(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, OfferKey("offer-1"))
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Set(ctx, OfferKey("offer-1"), []byte("{}"), time.Minute))
	assert.NoError(t, c.Delete(ctx, OfferKey("offer-1")))
}
