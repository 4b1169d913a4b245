package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/quintle/quintle/internal/alert"
	"github.com/quintle/quintle/internal/words"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second), srv
}

func TestClientFetchSuccess(t *testing.T) {
	var gotDifficulty string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotDifficulty = r.URL.Query().Get("difficulty")
		_, _ = w.Write([]byte(`{"word":"crane"}`))
	})

	word, err := c.Fetch(context.Background(), "hard")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if word != "CRANE" {
		t.Errorf("word: got %q, want CRANE", word)
	}
	if gotDifficulty != "hard" {
		t.Errorf("difficulty param: got %q, want hard", gotDifficulty)
	}
}

func TestClientFetchErrors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		network  bool
		protocol bool
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			network: true,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			protocol: true,
		},
		{
			name: "missing word field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"difficulty":"normal"}`))
			},
			protocol: true,
		},
		{
			name: "empty word",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"word":""}`))
			},
			protocol: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, tt.handler)
			_, err := c.Fetch(context.Background(), "normal")
			if err == nil {
				t.Fatal("fetch succeeded, want error")
			}
			var nerr *NetworkError
			var perr *ProtocolError
			if tt.network && !errors.As(err, &nerr) {
				t.Errorf("got %T, want NetworkError", err)
			}
			if tt.protocol && !errors.As(err, &perr) {
				t.Errorf("got %T, want ProtocolError", err)
			}
		})
	}
}

func TestClientFetchUnreachable(t *testing.T) {
	// Port 1 is reserved; connections are refused immediately.
	c := NewClient("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := c.Fetch(context.Background(), "normal")
	var nerr *NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("got %v, want NetworkError", err)
	}
}

func TestSourceAcquireRemoteSuccess(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"word":"whale"}`))
	})
	col := &alert.Collector{}
	s := NewSource(c, col)

	word, err := s.Acquire(context.Background(), "")
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if word != "WHALE" {
		t.Errorf("word: got %q, want WHALE", word)
	}
	if got := col.Drain(); len(got) != 0 {
		t.Errorf("unexpected alerts on success: %v", got)
	}
}

func TestSourceFallsBackWithOneWarning(t *testing.T) {
	if err := words.Init(); err != nil {
		t.Fatalf("words init: %v", err)
	}

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "endpoint down",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "word of wrong shape",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"word":"toolong"}`))
			},
		},
		{
			name: "garbage payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>oops</html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, tt.handler)
			col := &alert.Collector{}
			s := NewSource(c, col)

			word, err := s.Acquire(context.Background(), "normal")
			if err != nil {
				t.Fatalf("acquire should degrade to fallback, got %v", err)
			}
			if !words.Contains(word) {
				t.Errorf("fallback word %q not in local list", word)
			}
			got := col.Drain()
			if len(got) != 1 {
				t.Fatalf("alerts: got %d, want exactly 1", len(got))
			}
			if got[0].Severity != alert.SeverityWarning {
				t.Errorf("alert severity: got %s, want warning", got[0].Severity)
			}
		})
	}
}

func TestSourceUsesContextCollector(t *testing.T) {
	if err := words.Init(); err != nil {
		t.Fatalf("words init: %v", err)
	}
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	s := NewSource(c, alert.LogNotifier{})

	col := &alert.Collector{}
	ctx := alert.WithCollector(context.Background(), col)
	if _, err := s.Acquire(ctx, "normal"); err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if got := col.Drain(); len(got) != 1 {
		t.Fatalf("context collector alerts: got %d, want 1", len(got))
	}
}
