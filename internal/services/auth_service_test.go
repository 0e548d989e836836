package services

import (
	"testing"
	"time"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		birth time.Time
		want  int
	}{
		{"birthday passed this year", time.Date(2013, 2, 28, 0, 0, 0, 0, time.UTC), 13},
		{"birthday today", time.Date(2013, 3, 1, 0, 0, 0, 0, time.UTC), 13},
		{"birthday later this year", time.Date(2013, 3, 2, 0, 0, 0, 0, time.UTC), 12},
		{"adult", time.Date(1990, 7, 15, 0, 0, 0, 0, time.UTC), 35},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ageAt(tc.birth, now); got != tc.want {
				t.Fatalf("ageAt(%s) = %d, want %d", tc.birth.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}
