package db

import (
	"strings"
	"testing"
	"time"
)

// TestNew_PingError ensures that ping failures are propagated
// even when closing the connection succeeds.
func TestNew_PingError(t *testing.T) {
	// Use an unreachable DSN to trigger ping error quickly
	cfg := MariaDbConfig{
		DSN:             "invalid:invalid@tcp(127.0.0.1:0)/dbname",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Second,
	}
	db, err := New(cfg)
	if err == nil {
		if db != nil {
			db.Close()
		}
		t.Fatalf("expected error, got nil")
	}
}

func TestNew_InvalidDSN(t *testing.T) {
	if _, err := New(MariaDbConfig{DSN: "not a dsn"}); err == nil || !strings.Contains(err.Error(), "invalid MARIADB_DSN") {
		t.Fatalf("expected invalid DSN error, got %v", err)
	}
}

func TestNormaliseDSN(t *testing.T) {
	tests := []struct {
		name  string
		multi bool
		want  []string
	}{
		{"parse time forced", false, []string{"parseTime=true"}},
		{"multi statements", true, []string{"parseTime=true", "multiStatements=true"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normaliseDSN("user:pass@tcp(localhost:3306)/portfolio", tc.multi)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("dsn %q missing %q", got, w)
				}
			}
			if !tc.multi && strings.Contains(got, "multiStatements") {
				t.Errorf("dsn %q should not enable multi statements", got)
			}
		})
	}
}
