package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchJobText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`
		<html>
			<body>
				<nav>Navigation</nav>
				<div class="job-description">
					<h1>Senior Go Engineer</h1>
					<p>We are looking for experience with PostgreSQL and Docker.</p>
				</div>
				<footer>Footer</footer>
			</body>
		</html>`))
	}))
	defer server.Close()

	text, err := FetchJobText(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "PostgreSQL and Docker")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
}

func TestFetchJobText_InvalidURL(t *testing.T) {
	_, err := FetchJobText(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var ingestErr *Error
	assert.ErrorAs(t, err, &ingestErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestFetchJobText_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := FetchJobText(context.Background(), server.URL, nil)
	require.Error(t, err)

	var ingestErr *Error
	assert.ErrorAs(t, err, &ingestErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractJobText_FallbackToBody(t *testing.T) {
	html := `
	<html>
		<body>
			<script>var tracking = true;</script>
			<div>
				<p>Looking for a Python developer with AWS experience.</p>
			</div>
		</body>
	</html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Python developer")
	assert.NotContains(t, text, "tracking")
}

func TestExtractJobText_PrefersJobSelectors(t *testing.T) {
	html := `
	<html>
		<body>
			<main>Generic page content</main>
			<div id="job-description">Kubernetes and Terraform required.</div>
		</body>
	</html>`

	text, err := ExtractJobText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Kubernetes and Terraform")
	assert.NotContains(t, text, "Generic page content")
}

func TestFetchAll_PreservesOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "<html><body><main>posting %s</main></body></html>", r.URL.Path)
	}))
	defer server.Close()

	urls := []string{server.URL + "/1", server.URL + "/2", server.URL + "/3"}
	texts, err := FetchAll(context.Background(), urls, nil)
	require.NoError(t, err)
	require.Len(t, texts, 3)
	assert.Equal(t, "posting /1", texts[0])
	assert.Equal(t, "posting /2", texts[1])
	assert.Equal(t, "posting /3", texts[2])
}

func TestFetchAll_FirstErrorWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("<html><body><main>ok</main></body></html>"))
	}))
	defer server.Close()

	_, err := FetchAll(context.Background(), []string{server.URL + "/ok", server.URL + "/bad"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestFetchAll_Empty(t *testing.T) {
	texts, err := FetchAll(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, texts)
}
