package trace

import (
	"context"
	"testing"
	"time"
)

func TestSetupDisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	p, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if p.Enabled() {
		t.Error("Setup() without endpoint should be disabled")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on disabled provider = %v", err)
	}
}

func TestSetupWithEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://127.0.0.1:4318")
	t.Setenv("OTEL_SERVICE_NAME", "skyfeed-test")

	p, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if !p.Enabled() {
		t.Fatal("Setup() with endpoint should be enabled")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown() with no spans = %v", err)
	}
}

func TestEndpointOptions(t *testing.T) {
	tests := []struct {
		endpoint string
		want     int
	}{
		{"localhost:4318", 2},
		{"http://localhost:4318", 2},
		{"https://collector.example.com", 1},
	}
	for _, tt := range tests {
		if got := len(endpointOptions(tt.endpoint)); got != tt.want {
			t.Errorf("endpointOptions(%q) returned %d options, want %d", tt.endpoint, got, tt.want)
		}
	}
}

func TestNilProvider(t *testing.T) {
	var p *Provider
	if p.Enabled() {
		t.Error("nil provider should be disabled")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on nil provider = %v", err)
	}
}
