// Package skynet contains stateless helpers for Skynet clients: skylink extraction, portal URL
// building, file path handling and byte utilities.
package skynet

const (
	// DefaultSkynetPortalURL is the portal used when no other portal has been configured
	DefaultSkynetPortalURL = "https://siasky.net"

	// URIHandshakePrefix is the URI scheme prefix for Handshake names
	URIHandshakePrefix = "hns:"

	// URIHandshakeResolverPrefix is the URI scheme prefix for names resolved through the Handshake resolver
	URIHandshakeResolverPrefix = "hnsres:"

	// URISkynetPrefix is the URI scheme prefix for skylinks
	URISkynetPrefix = "sia:"
)
