package handlers_test

import (
	"net/http"
	"testing"
)

func BenchmarkShorten(b *testing.B) {
	e := newEnv(b)
	body := `{"url":"https://example.com/some/long/path"}`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := serve(e.h.Shorten, request(http.MethodPost, "/urls/shorten", body, e.owner, nil))
		if rec.Code != http.StatusCreated {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}

func BenchmarkRedirect(b *testing.B) {
	e := newEnv(b)
	rec := serve(e.h.Shorten, request(http.MethodPost, "/urls/shorten",
		`{"url":"https://example.com","shortCode":"bench"}`, e.owner, nil))
	if rec.Code != http.StatusCreated {
		b.Fatalf("unexpected status %d", rec.Code)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := serve(e.h.Redirect, request(http.MethodGet, "/urls/redirect?code=bench", "", nil, nil))
		if rec.Code != http.StatusFound {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}
