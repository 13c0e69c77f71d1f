package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestServeDrainsInFlightRequests(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}

	entered := make(chan struct{})
	release := make(chan struct{})
	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(entered)
			<-release
			w.Write([]byte("done"))
		}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	served := make(chan error, 1)
	go func() { served <- serve(ctx, server, ln) }()

	type result struct {
		body string
		err  error
	}
	responses := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			responses <- result{err: err}
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		responses <- result{body: string(body), err: err}
	}()

	<-entered
	cancel()

	// Shutdown has started but the request is still running
	select {
	case err := <-served:
		t.Fatalf("serve returned before in-flight request finished: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)

	res := <-responses
	if res.err != nil {
		t.Fatalf("In-flight request failed: %v", res.err)
	}
	if res.body != "done" {
		t.Errorf("Expected body 'done', got %q", res.body)
	}

	select {
	case err := <-served:
		if err != nil {
			t.Errorf("Expected nil error after shutdown, got: %v", err)
		}
	case <-time.After(shutdownTimeout):
		t.Fatal("serve did not return after shutdown")
	}
}

func TestServeReturnsListenerError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := serve(ctx, &http.Server{Handler: http.NotFoundHandler()}, ln); err == nil {
		t.Error("Expected error from closed listener")
	}
}
