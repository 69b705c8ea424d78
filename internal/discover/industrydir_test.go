package discover

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const industryPage = `<html><body>
<a href="/company/acme">Acme Robotics</a>
<a href="/company/globex">Globex AI</a>
<a href="/company/xy">XY</a>
<a href="/pricing">Plans start at $99</a>
</body></html>`

func TestIndustryDirectoriesDiscover(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, industryPage)
	}))
	defer srv.Close()

	src := NewIndustryDirectories(srv.Client(), map[string][]string{
		"technology": {srv.URL + "/dir-a", srv.URL + "/dir-b"},
	}, nil)

	found, err := src.Discover(context.Background(), Query{Industry: "Technology", Limit: 10})
	require.NoError(t, err)
	require.Len(t, found, 4, "two directories, two qualifying links each")

	assert.Equal(t, "Acme Robotics", found[0].Name)
	assert.Equal(t, "/company/acme", found[0].Website)
	assert.Equal(t, SourceIndustryDirectory, found[0].Source)

	for _, c := range found {
		assert.NotEqual(t, "XY", c.Name, "short link text is not a company name")
		assert.NotContains(t, c.Website, "pricing")
	}
}

func TestIndustryDirectoriesUnknownIndustry(t *testing.T) {
	src := NewIndustryDirectories(nil, map[string][]string{}, nil)

	found, err := src.Discover(context.Background(), Query{Industry: "basket weaving", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestIndustryDirectoriesSkipsFailedDirectory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dead" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, industryPage)
	}))
	defer srv.Close()

	src := NewIndustryDirectories(srv.Client(), map[string][]string{
		"technology": {srv.URL + "/dead", srv.URL + "/alive"},
	}, nil)

	found, err := src.Discover(context.Background(), Query{Industry: "technology", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, found, 2, "the healthy directory still contributes")
}
