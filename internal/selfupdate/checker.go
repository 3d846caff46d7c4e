// Package selfupdate checks GitHub releases for newer builds and swaps
// the running binary in place.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner           = "abhisek"
	defaultRepo            = "doubtbox"
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
)

// Checker talks to GitHub releases.
type Checker struct {
	owner           string
	repo            string
	apiBaseURL      string
	downloadBaseURL string
	client          *http.Client
	execPath        func() (string, error)
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) CheckerOption {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithBaseURL overrides the GitHub API endpoint, for tests.
func WithBaseURL(url string) CheckerOption {
	return func(c *Checker) { c.apiBaseURL = url }
}

// WithDownloadBaseURL overrides the release download endpoint, for tests.
func WithDownloadBaseURL(url string) CheckerOption {
	return func(c *Checker) { c.downloadBaseURL = url }
}

// withExecPath overrides executable path resolution, for tests.
func withExecPath(fn func() (string, error)) CheckerOption {
	return func(c *Checker) { c.execPath = fn }
}

// NewChecker creates a Checker against the doubtbox release repo.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		owner:           defaultOwner,
		repo:            defaultRepo,
		apiBaseURL:      defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		client:          &http.Client{Timeout: 30 * time.Second},
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput is the current build's version.
type CheckInput struct {
	Version string
}

// CheckResult reports whether a newer release exists.
type CheckResult struct {
	UpdateAvailable bool
	LatestVersion   string
}

// Check queries the latest release tag and compares it against the
// running version. Tags are compared as semver; a malformed tag on
// either side counts as no update.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	current := canonicalTag(input.Version)
	latest := canonicalTag(release.TagName)
	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return &CheckResult{UpdateAvailable: false, LatestVersion: release.TagName}, nil
	}

	return &CheckResult{
		UpdateAvailable: semver.Compare(latest, current) > 0,
		LatestVersion:   release.TagName,
	}, nil
}

// canonicalTag normalizes a release tag to the "vX.Y.Z" form semver
// expects.
func canonicalTag(tag string) string {
	if tag == "" {
		return tag
	}
	if tag[0] != 'v' {
		tag = "v" + tag
	}
	return tag
}
