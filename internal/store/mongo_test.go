package store

import (
	"context"
	"testing"
)

func TestDiagnoseWithoutDatabase(t *testing.T) {
	report := Diagnose(context.Background(), nil, false)

	if report.Backend != "running" {
		t.Errorf("expected backend 'running', got %q", report.Backend)
	}

	if report.Database != "not available" {
		t.Errorf("expected database 'not available', got %q", report.Database)
	}

	if report.ConnectionStatus != "not connected" {
		t.Errorf("expected connection status 'not connected', got %q", report.ConnectionStatus)
	}

	if report.Collections == nil {
		t.Error("expected collections to be an empty slice, got nil")
	}

	if len(report.Collections) != 0 {
		t.Errorf("expected no collections, got %d", len(report.Collections))
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"shorter than limit", "short", 50, "short"},
		{"exactly at limit", "abcde", 5, "abcde"},
		{"over limit", "abcdefgh", 5, "abcde"},
		{"empty", "", 5, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.n); got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
			}
		})
	}
}
