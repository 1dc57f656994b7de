package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProbeReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	prober := New(srv.URL, time.Second, nil)

	status, err := prober.Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !status.Reachable {
		t.Error("expected reachable status")
	}
	if prober.Last().ServerURL != srv.URL {
		t.Errorf("unexpected server URL: %s", prober.Last().ServerURL)
	}
}

func TestProbeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	prober := New(srv.URL, time.Second, nil)

	status, err := prober.Check(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if status.Reachable {
		t.Error("expected unreachable status")
	}
}

func TestProbeNoServerConfigured(t *testing.T) {
	prober := New("", time.Second, nil)

	status, err := prober.Check(context.Background())
	if err == nil {
		t.Fatal("expected error with no server configured")
	}
	if status.Reachable {
		t.Error("expected unreachable status")
	}
}

func TestProbeBreakerTrips(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	prober := New(srv.URL, time.Second, nil)
	ctx := context.Background()

	// Trip the breaker with consecutive failures, then verify the
	// circuit rejects further checks without touching the server.
	for i := 0; i < 5; i++ {
		prober.Check(ctx)
	}

	status, err := prober.Check(ctx)
	if err == nil {
		t.Fatal("expected circuit-open error")
	}
	if status.Reachable {
		t.Error("expected unreachable status while circuit open")
	}
}
