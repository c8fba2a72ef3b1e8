package adaptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "cache:/api/courses", CacheKey("/api/courses"))
	// query串参与key, 不同查询互不影响
	assert.Equal(t, "cache:/api/courses?limit=3", CacheKey("/api/courses?limit=3"))
}
