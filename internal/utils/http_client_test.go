package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	if client == nil || client.Client == nil {
		t.Fatal("expected non-nil *HTTPClient with embedded resty client")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestNewScriptClient_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/exec", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/content?"+r.URL.RawQuery, http.StatusFound)
	})
	mux.HandleFunc("/content", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Query().Get("callback") + "({});"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := NewScriptClient().R().Get(srv.URL + "/exec?callback=cb1_1")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode())
	}
	if got := string(resp.Body()); got != "cb1_1({});" {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestNewScriptClient_UserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	if _, err := NewScriptClient().R().Get(srv.URL); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if ua != "go-lab-access" {
		t.Errorf("expected user agent go-lab-access, got %q", ua)
	}
}
