package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/psychmaster/psychmaster/internal/config"
)

func TestRunReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()

	cfg := &config.Config{
		Server: config.ServerConfig{Addr: busy.Addr().String(), CORSOrigins: []string{"*"}},
	}

	done := make(chan error, 1)
	go func() { done <- run(context.Background(), cfg) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected an error for an address in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return on listen failure")
	}
}

func TestRunServerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- runServer(ctx, srv) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("runServer did not stop")
	}
}
