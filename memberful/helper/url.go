package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var regexpSite = regexp.MustCompile(`^(?:https:\/\/)?([a-zA-Z0-9][a-zA-Z0-9\-]*)(?:\.memberful\.com\/?)?$`)

var ErrInvalidURL = errors.New("invalid url")

// MemberfulSiteFromURL extracts the site subdomain from a Memberful site
// address. Accepts a full "https://example.memberful.com" URL as well as
// a bare "example" subdomain.
func MemberfulSiteFromURL(rawurl string) (string, error) {
	rawurl = strings.TrimSpace(rawurl)
	matches := regexpSite.FindStringSubmatch(rawurl)
	if len(matches) < 2 {
		return "", fmt.Errorf("%w of the site: \"%s\" is not a memberful site address", ErrInvalidURL, rawurl)
	}
	return matches[1], nil
}
