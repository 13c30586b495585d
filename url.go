package skynet

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	bareProtocolRegexp    = regexp.MustCompile(`^[^/:]+:/*$`)
	fileProtocolRegexp    = regexp.MustCompile(`^file:///`)
	protocolRegexp        = regexp.MustCompile(`^([^/:]+):/*`)
	leadingSlashesRegexp  = regexp.MustCompile(`^/+`)
	trailingSlashesRegexp = regexp.MustCompile(`/+$`)
	slashBeforeParams     = regexp.MustCompile(`/(\?|&|#[^!])`)
)

// MakeURL joins the given segments together into a URL, making sure every segment is separated
// by exactly one slash.
func MakeURL(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}
	result := segments[0]
	for _, segment := range segments[1:] {
		result = joinURL(result, segment)
	}
	return result
}

// joinURL joins URL parts and normalizes the separators between them
func joinURL(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	parts = append([]string(nil), parts...)

	// A bare protocol like "https:" is combined with the part after it.
	if len(parts) > 1 && bareProtocolRegexp.MatchString(parts[0]) {
		parts = append([]string{parts[0] + parts[1]}, parts[2:]...)
	}
	if fileProtocolRegexp.MatchString(parts[0]) {
		parts[0] = protocolRegexp.ReplaceAllString(parts[0], "${1}:///")
	} else {
		parts[0] = protocolRegexp.ReplaceAllString(parts[0], "${1}://")
	}

	components := make([]string, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i > 0 {
			part = leadingSlashesRegexp.ReplaceAllString(part, "")
		}
		if i < len(parts)-1 {
			part = trailingSlashesRegexp.ReplaceAllString(part, "")
		} else {
			part = trailingSlashesRegexp.ReplaceAllString(part, "/")
		}
		components = append(components, part)
	}

	joined := slashBeforeParams.ReplaceAllString(strings.Join(components, "/"), "${1}")

	// Only the first question mark starts the query, the rest are separators.
	head, params, found := strings.Cut(joined, "?")
	if !found {
		return joined
	}
	return head + "?" + strings.ReplaceAll(params, "?", "&")
}

// AddURLQuery replaces the query of the URL with the given parameters, an empty map removes the query.
// Values are formatted with fmt.Sprint, a nil value becomes an empty parameter.
func AddURLQuery(rawURL string, query map[string]any) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w '%s': %w", ErrInvalidURL, rawURL, err)
	}

	values := make(url.Values, len(query))
	for key, value := range query {
		if value == nil {
			values.Set(key, "")
			continue
		}
		values.Set(key, fmt.Sprint(value))
	}
	parsed.RawQuery = values.Encode()
	parsed.ForceQuery = false
	return parsed.String(), nil
}
