package updater

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		v1, v2 string
		want   int
	}{
		{"v0.1.0", "v0.1.0", 0},
		{"v0.2.0", "v0.1.9", 1},
		{"v0.1.0", "v0.1.1", -1},
		{"v0.10.0", "v0.2.0", 1},
		{"v1.0", "v1.0.0", 0},
	}
	for _, c := range cases {
		if got := compareVersions(c.v1, c.v2); got != c.want {
			t.Errorf("compareVersions(%s, %s) = %d, want %d", c.v1, c.v2, got, c.want)
		}
	}
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name":"v0.2.0","html_url":"https://example.com/v0.2.0"}`)
	}))
	defer srv.Close()

	c := NewChecker()
	c.URL = srv.URL

	tag, url, err := c.Check("v0.1.0")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if tag != "v0.2.0" || url == "" {
		t.Errorf("Expected update v0.2.0, got %q %q", tag, url)
	}
}

func TestCheck_UpToDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name":"v0.1.0","html_url":"https://example.com/v0.1.0"}`)
	}))
	defer srv.Close()

	c := NewChecker()
	c.URL = srv.URL

	tag, _, err := c.Check("v0.1.0")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if tag != "" {
		t.Errorf("Expected no update, got %q", tag)
	}
}

func TestCheck_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewChecker()
	c.URL = srv.URL

	if _, _, err := c.Check("v0.1.0"); err == nil {
		t.Error("Expected an error for a non-200 response")
	}
}
