package catalog

import (
	"context"
	"net/http"
	"strings"

	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"golang.org/x/mod/semver"
)

var _ ports.ReleaseChecker = (*ReleaseChecker)(nil)

// ReleaseChecker implements ports.ReleaseChecker against a GitHub "latest release" endpoint.
type ReleaseChecker struct {
	client    *http.Client
	userAgent string
	url       string
}

type release struct {
	TagName string `json:"tag_name"`
}

// NewReleaseChecker creates a ReleaseChecker querying url.
func NewReleaseChecker(client *http.Client, userAgent, url string) *ReleaseChecker {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &ReleaseChecker{client: client, userAgent: userAgent, url: url}
}

// Latest returns the tag of the latest published release.
func (r *ReleaseChecker) Latest(ctx context.Context) (string, error) {
	var rel release
	err := getJSON(ctx, r.client, r.userAgent, r.url, &rel, requestErrors{
		request: domain.ErrReleaseCheckFailed,
		status:  domain.ErrReleaseCheckFailed,
		decode:  domain.ErrReleaseCheckFailed,
	})
	if err != nil {
		return "", err
	}
	if rel.TagName == "" {
		return "", domain.Classify(domain.ErrDecode, domain.With(domain.ErrReleaseCheckFailed, "url", r.url))
	}
	return rel.TagName, nil
}

// IsNewer reports whether latest is a newer semantic version than current.
// Versions may omit the leading "v". Anything that is not a valid semantic
// version never counts as newer.
func IsNewer(current, latest string) bool {
	c, l := canonical(current), canonical(latest)
	if !semver.IsValid(l) {
		return false
	}
	if !semver.IsValid(c) {
		return true
	}
	return semver.Compare(l, c) > 0
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
