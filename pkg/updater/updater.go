// Package updater checks GitHub for newer releases of ov.
package updater

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultReleaseURL is the GitHub API endpoint for the latest release.
const DefaultReleaseURL = "https://api.github.com/repos/casskell/outline_viewer/releases/latest"

type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Checker queries a release endpoint with a short timeout so startup is
// never blocked for long.
type Checker struct {
	URL    string
	Client *http.Client
}

// NewChecker creates a Checker against the default release endpoint.
func NewChecker() *Checker {
	return &Checker{
		URL:    DefaultReleaseURL,
		Client: &http.Client{Timeout: 2 * time.Second},
	}
}

// Check returns the newer version tag and its URL if one is available,
// empty strings otherwise.
func (c *Checker) Check(currentVersion string) (string, string, error) {
	resp, err := c.Client.Get(c.URL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("github api returned status: %s", resp.Status)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", "", err
	}

	if compareVersions(rel.TagName, currentVersion) > 0 {
		return rel.TagName, rel.HTMLURL, nil
	}
	return "", "", nil
}

// compareVersions returns 1 if v1 > v2, -1 if v1 < v2, 0 if equal.
// Compares dot-separated numeric segments; non-numeric segments fall
// back to string order.
func compareVersions(v1, v2 string) int {
	s1 := strings.Split(strings.TrimPrefix(v1, "v"), ".")
	s2 := strings.Split(strings.TrimPrefix(v2, "v"), ".")

	for i := 0; i < len(s1) || i < len(s2); i++ {
		a, b := segment(s1, i), segment(s2, i)
		if a == b {
			continue
		}
		an, aok := atoi(a)
		bn, bok := atoi(b)
		if aok && bok {
			if an > bn {
				return 1
			}
			return -1
		}
		if a > b {
			return 1
		}
		return -1
	}
	return 0
}

func segment(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return "0"
}

func atoi(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, s != ""
}
