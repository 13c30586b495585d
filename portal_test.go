package skynet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPortalURL(t *testing.T) {
	assert.Equal(t, "/", DefaultPortalURL(nil))
	assert.Equal(t, "/", DefaultPortalURL(StaticOrigin("")))
	assert.Equal(t, "https://skyportal.xyz", DefaultPortalURL(StaticOrigin("https://skyportal.xyz")))
}

func TestEnvOrigin(t *testing.T) {
	env := NewEnvOrigin()
	assert.Equal(t, EnvPortalURL, env.Key)

	t.Setenv(EnvPortalURL, "https://skyportal.xyz")
	assert.Equal(t, "https://skyportal.xyz", DefaultPortalURL(env))

	t.Setenv(EnvPortalURL, "")
	assert.Equal(t, "/", DefaultPortalURL(env))

	assert.Equal(t, "/", DefaultPortalURL(EnvOrigin{Key: "SKYNET_TEST_UNSET_PORTAL"}))
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions("/skynet/skyfile")
	assert.Equal(t, Options{EndpointPath: "/skynet/skyfile"}, opts)
	assert.Empty(t, opts.APIKey)
	assert.Empty(t, opts.CustomUserAgent)
}
