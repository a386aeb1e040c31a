package httpclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient(5 * time.Second)
	if client.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", client.Timeout)
	}
	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("transport is %T", client.Transport)
	}
	if transport.MaxIdleConnsPerHost != MaxIdleConnsPerHost {
		t.Errorf("MaxIdleConnsPerHost = %d", transport.MaxIdleConnsPerHost)
	}
	if transport.TLSHandshakeTimeout != TLSHandshakeTimeout {
		t.Errorf("TLSHandshakeTimeout = %v", transport.TLSHandshakeTimeout)
	}

	if got := NewClient(0).Timeout; got != DefaultTimeout {
		t.Errorf("zero timeout resolved to %v, want %v", got, DefaultTimeout)
	}
}

func TestDoAndRead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result": 1.5}`)
	}))
	defer server.Close()

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	body, resp, err := DoAndRead(NewClient(time.Second), req)
	if err != nil {
		t.Fatalf("DoAndRead: %v", err)
	}
	if string(body) != `{"result": 1.5}` {
		t.Errorf("body = %q", body)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestDoAndReadConnectionError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	req, _ := http.NewRequest(http.MethodGet, url, nil)
	if _, _, err := DoAndRead(NewClient(time.Second), req); err == nil {
		t.Fatalf("expected connection error")
	}
}

func TestDoAndReadTooLarge(t *testing.T) {
	oversized := strings.Repeat("x", MaxResponseBytes+1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, oversized)
	}))
	defer server.Close()

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	_, _, err := DoAndRead(NewClient(time.Second), req)
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("expected too large error, got %v", err)
	}
}
