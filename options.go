package skynet

// Options are the request options shared by all portal endpoints
type Options struct {
	EndpointPath    string
	APIKey          string
	CustomUserAgent string
}

// DefaultOptions returns the options for the given endpoint path, without API key or custom user agent
func DefaultOptions(endpointPath string) Options {
	return Options{
		EndpointPath: endpointPath,
	}
}
