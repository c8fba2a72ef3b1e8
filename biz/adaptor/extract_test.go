package adaptor

import (
	"context"
	"testing"
	"time"

	"alpstech-server/biz/infrastructure/config"
	"alpstech-server/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T, secret string) {
	t.Helper()
	_, err := config.NewConfigFromYamlBytes([]byte(`
Name: alpstech-server-test
ListenOn: 0.0.0.0:0
Auth:
  SecretKey: ` + secret + `
  AccessExpire: 3600
Mongo:
  URL: mongodb://127.0.0.1:27017
  DB: alpstech-test
`))
	require.NoError(t, err)
}

func contextWithAuth(token string) context.Context {
	c := app.NewContext(0)
	if token != "" {
		c.Request.Header.Set("Authorization", "Bearer "+token)
	}
	return InjectContext(context.Background(), c)
}

func TestGenerateJwtTokenRoundTrip(t *testing.T) {
	setupTestConfig(t, "test-secret")

	token, exp, err := GenerateJwtToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Unix()+3600, exp, 5)

	meta := ExtractUserMeta(contextWithAuth(token))
	assert.Equal(t, "alice@example.com", meta.GetEmail())
}

func TestExtractUserMetaAnonymous(t *testing.T) {
	setupTestConfig(t, "test-secret")

	meta := ExtractUserMeta(contextWithAuth(""))
	assert.Empty(t, meta.GetEmail())
}

func TestExtractUserMetaBadToken(t *testing.T) {
	setupTestConfig(t, "test-secret")

	meta := ExtractUserMeta(contextWithAuth("not-a-jwt"))
	assert.Empty(t, meta.GetEmail())
}

func TestExtractUserMetaWrongSecret(t *testing.T) {
	setupTestConfig(t, "test-secret")
	token, _, err := GenerateJwtToken("alice@example.com")
	require.NoError(t, err)

	setupTestConfig(t, "another-secret")
	meta := ExtractUserMeta(contextWithAuth(token))
	assert.Empty(t, meta.GetEmail())
}

func TestExtractUserMetaNoHertzContext(t *testing.T) {
	setupTestConfig(t, "test-secret")

	meta := ExtractUserMeta(context.Background())
	assert.Empty(t, meta.GetEmail())
}

func TestRequireIdentity(t *testing.T) {
	setupTestConfig(t, "test-secret")

	_, err := RequireIdentity(contextWithAuth(""))
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)

	token, _, err := GenerateJwtToken("bob@example.com")
	require.NoError(t, err)
	meta, err := RequireIdentity(contextWithAuth(token))
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", meta.GetEmail())
}
