package models

import (
	"testing"
	"time"
)

func TestSession_RefreshUsable(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		s    *Session
		want bool
	}{
		{"nil", nil, false},
		{"no token", &Session{RefreshExpiresAt: now.Add(time.Hour)}, false},
		{"valid", &Session{RefreshToken: "r", RefreshExpiresAt: now.Add(time.Hour)}, true},
		{"expired", &Session{RefreshToken: "r", RefreshExpiresAt: now}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.RefreshUsable(now); got != tt.want {
				t.Fatalf("RefreshUsable() = %v, want %v", got, tt.want)
			}
		})
	}
}
