package skynet

import (
	"os"
)

const (
	// EnvPortalURL is the environment variable read by the default EnvOrigin
	EnvPortalURL = "SKYNET_PORTAL_URL"

	// rootPortalURL is used when the environment reports no origin, requests then go to the path root
	rootPortalURL = "/"
)

// Environment reports the origin the client is running on, if any
type Environment interface {
	Origin() (origin string, ok bool)
}

// DefaultPortalURL returns the origin reported by the environment, or the path root when there is none
func DefaultPortalURL(env Environment) string {
	if env == nil {
		return rootPortalURL
	}
	origin, ok := env.Origin()
	if !ok || origin == "" {
		return rootPortalURL
	}
	return origin
}

// StaticOrigin is an Environment with a fixed origin
type StaticOrigin string

// Origin returns the fixed origin, it is not ok when empty
func (s StaticOrigin) Origin() (string, bool) {
	return string(s), s != ""
}

// EnvOrigin is an Environment which reads the origin from an environment variable
type EnvOrigin struct {
	Key string
}

// NewEnvOrigin returns an EnvOrigin reading the SKYNET_PORTAL_URL variable
func NewEnvOrigin() EnvOrigin {
	return EnvOrigin{Key: EnvPortalURL}
}

// Origin looks up the environment variable
func (e EnvOrigin) Origin() (string, bool) {
	return os.LookupEnv(e.Key)
}
