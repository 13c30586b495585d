package skynet

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	// SkylinkLength is the length of a base64 encoded skylink
	SkylinkLength = 46

	skylinkMatcher       = "([a-zA-Z0-9_-]{46})"
	skylinkMatchPosition = 1
)

var (
	skylinkDirectRegexp   = regexp.MustCompile("^" + skylinkMatcher + "$")
	skylinkPathnameRegexp = regexp.MustCompile("^/?" + skylinkMatcher + "([/?].*)?$")
)

// ParseSkylinkValue extracts a skylink from a dynamically typed value, which has to be a string.
func ParseSkylinkValue(v any) (string, error) {
	skylink, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w, %T provided", ErrInvalidSkylinkType, v)
	}
	return ParseSkylink(skylink)
}

// ParseSkylink extracts the skylink from the given input. The input can be a bare skylink,
// a skylink prefixed with sia: or sia://, or a URL with the skylink as its first path segment.
func ParseSkylink(skylink string) (string, error) {
	match := skylinkDirectRegexp.FindStringSubmatch(skylink)
	if match != nil {
		return match[skylinkMatchPosition], nil
	}

	// sia:XABvi7JtJbQSMAcDwnUnmp2FKDPjg8_tTTFP4BwMSxVdEg
	// sia://XABvi7JtJbQSMAcDwnUnmp2FKDPjg8_tTTFP4BwMSxVdEg
	trimmed := TrimURIPrefix(skylink, URISkynetPrefix)

	// https://siasky.net/XABvi7JtJbQSMAcDwnUnmp2FKDPjg8_tTTFP4BwMSxVdEg/foo?bar=1
	match = skylinkPathnameRegexp.FindStringSubmatch(urlPath(trimmed))
	if match != nil {
		return match[skylinkMatchPosition], nil
	}

	return "", fmt.Errorf("%w from '%s'", ErrSkylinkExtraction, skylink)
}

// urlPath returns the path of the URL, ignoring scheme and host. URLs which net/url rejects,
// like those with stray percent signs or a non-numeric port, have their path cut out by hand.
func urlPath(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return lenientURLPath(rawURL)
	}
	if parsed.Opaque != "" {
		// hns:XABvi7JtJbQSMAcDwnUnmp2FKDPjg8_tTTFP4BwMSxVdEg
		return parsed.Opaque
	}
	return parsed.EscapedPath()
}

func lenientURLPath(rawURL string) string {
	rest, _, _ := strings.Cut(rawURL, "#")
	_, afterScheme, found := strings.Cut(rest, "://")
	if !found {
		return rest
	}
	idx := strings.IndexAny(afterScheme, "/?")
	if idx < 0 {
		return ""
	}
	return afterScheme[idx:]
}

// TrimURIPrefix removes the prefix, optionally followed by a double slash, from the start of str.
// The string is returned as is when it does not start with the prefix.
func TrimURIPrefix(str, prefix string) string {
	if rest, ok := strings.CutPrefix(str, prefix+"//"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(str, prefix); ok {
		return rest
	}
	return str
}
