package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/model"
)

const teamPage = `<html><body>
<div class="member">Jane Doe - CEO - jane.doe@acme.com - (555) 123-4567</div>
<div class="member">Bob Smith - VP Sales - bob.smith@acme.com</div>
<p>Reach Jane privately at jane.personal@gmail.com</p>
<a href="https://linkedin.com/in/carol-jones-1a2b3c">Carol Jones</a>
<a href="https://linkedin.com/in/dave-brown-9"></a>
</body></html>`

func noDelay(context.Context) {}

func newTestExtractor(handler http.Handler) (*Extractor, *httptest.Server) {
	srv := httptest.NewServer(handler)
	x := NewExtractor(WithHTTPClient(srv.Client()), WithDelay(noDelay))
	return x, srv
}

func contactByEmail(t *testing.T, contacts []model.ContactCandidate, email string) model.ContactCandidate {
	t.Helper()
	for _, c := range contacts {
		if c.Email == email {
			return c
		}
	}
	t.Fatalf("no contact with email %s", email)
	return model.ContactCandidate{}
}

func TestExtractContacts(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	x, srv := newTestExtractor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		if r.URL.Path != "/team" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, teamPage)
	}))
	defer srv.Close()

	contacts := x.ExtractContacts(context.Background(), srv.URL)
	require.Len(t, contacts, 4)

	jane := contactByEmail(t, contacts, "jane.doe@acme.com")
	assert.Equal(t, "Jane", jane.FirstName)
	assert.Equal(t, "Doe", jane.LastName)
	assert.Equal(t, "CEO", jane.JobTitle)
	assert.Equal(t, "(555) 123-4567", jane.Phone)
	assert.Equal(t, srv.URL, jane.Source)

	bob := contactByEmail(t, contacts, "bob.smith@acme.com")
	assert.Equal(t, "Bob", bob.FirstName)
	assert.Equal(t, "VP", bob.JobTitle)

	for _, c := range contacts {
		assert.NotContains(t, c.Email, "gmail.com", "free-mail addresses must be discarded")
	}

	// Email-bearing records come first, profile-only records after.
	assert.NotEmpty(t, contacts[0].Email)
	assert.NotEmpty(t, contacts[1].Email)
	assert.Equal(t, "Carol", contacts[2].FirstName)
	assert.Contains(t, contacts[2].LinkedInURL, "carol-jones")
	assert.Equal(t, "Dave Brown", contacts[3].FullName(), "slug fallback names the anonymous profile")

	mu.Lock()
	got := len(paths)
	mu.Unlock()
	assert.Equal(t, len(contactPaths), got, "every candidate page is visited once")
}

func TestExtractContactsIdempotent(t *testing.T) {
	x, srv := newTestExtractor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/team" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, teamPage)
	}))
	defer srv.Close()

	first := x.ExtractContacts(context.Background(), srv.URL)
	second := x.ExtractContacts(context.Background(), srv.URL)
	assert.Equal(t, first, second)
}

func TestExtractContactsDuplicateAcrossPages(t *testing.T) {
	x, srv := newTestExtractor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/about", "/team":
			fmt.Fprint(w, `<html><body><div>Jane Doe - CEO - jane.doe@acme.com</div></body></html>`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	contacts := x.ExtractContacts(context.Background(), srv.URL)
	require.Len(t, contacts, 1, "the same address on two pages is one contact")
	assert.Equal(t, "jane.doe@acme.com", contacts[0].Email)
}

func TestExtractContactsCap(t *testing.T) {
	x, srv := newTestExtractor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/staff" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "<html><body>")
		for i := 0; i < 14; i++ {
			fmt.Fprintf(w, "<p>person%c@acme.com</p>", 'a'+i)
		}
		fmt.Fprint(w, "</body></html>")
	}))
	defer srv.Close()

	contacts := x.ExtractContacts(context.Background(), srv.URL)
	assert.Len(t, contacts, maxContactsPerCompany)
}

func TestExtractContactsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := srv.Client()
	srv.Close()

	x := NewExtractor(WithHTTPClient(client), WithDelay(noDelay))
	assert.Nil(t, x.ExtractContacts(context.Background(), srv.URL))
	assert.Nil(t, x.ExtractContacts(context.Background(), ""))
}

func TestIsBusinessEmail(t *testing.T) {
	assert.True(t, isBusinessEmail("jane@acme.com"))
	assert.False(t, isBusinessEmail("jane@gmail.com"))
	assert.False(t, isBusinessEmail("jane@GMAIL.com"))
	assert.False(t, isBusinessEmail("not-an-address"))
}
