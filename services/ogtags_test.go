package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFetchOGTags_ExtractsMeta(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head>
			<title>Fallback Title</title>
			<meta property="og:title" content="Summer Sale" />
			<meta property="og:description" content="Everything 50% off" />
			<meta property="og:image" content="https://cdn.example.com/hero.jpg" />
		</head><body></body></html>`)
	}))
	defer srv.Close()

	tags, err := FetchOGTags(srv.URL)
	require.NoError(t, err)
	require.Equal(t, "Summer Sale", tags.Title)
	require.Equal(t, "Everything 50% off", tags.Description)
	require.Equal(t, "https://cdn.example.com/hero.jpg", tags.Image)
	require.Equal(t, srv.URL, tags.URL)
}

func TestFetchOGTags_TitleFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Plain Page</title></head><body></body></html>`)
	}))
	defer srv.Close()

	tags, err := FetchOGTags(srv.URL)
	require.NoError(t, err)
	require.Equal(t, "Plain Page", tags.Title)
	require.Empty(t, tags.Description)
	require.Empty(t, tags.Image)
}

func TestFetchOGTags_MalformedPageYieldsEmptyFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<<<not html at all`)
	}))
	defer srv.Close()

	tags, err := FetchOGTags(srv.URL)
	require.NoError(t, err)
	require.Empty(t, tags.Title)
	require.Empty(t, tags.Description)
	require.Empty(t, tags.Image)
}

func TestFetchOGTags_UnreachableURLErrors(t *testing.T) {
	_, err := FetchOGTags("http://127.0.0.1:1/nope")
	require.Error(t, err)
}

func TestFetchOGTags_SendsNonBrowserFriendlyUA(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.UserAgent()
	}))
	defer srv.Close()

	_, err := FetchOGTags(srv.URL)
	require.NoError(t, err)
	require.Equal(t, "Mozilla/5.0", ua)
}
