package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/kinfolk-backend/internal/visibility"
)

func newFilterOnlyService() *ModerationService {
	// FilterContent never touches the database.
	return NewModerationService(nil, visibility.NewBlocklists())
}

func TestFilterContent(t *testing.T) {
	ms := newFilterOnlyService()

	cases := []struct {
		text   string
		ok     bool
		reason string
	}{
		{"", true, ""},
		{"Grandma's 90th birthday today!", true, ""},
		{"this is fucking great", false, "inappropriate_language"},
		{"check out https://deals.example/reunion", false, "url_not_allowed"},
		{"email me at max@example.com", false, "contact_info_not_allowed"},
		{"call 555-123-4567 now", false, "contact_info_not_allowed"},
	}

	for _, tc := range cases {
		ok, reason := ms.FilterContent(tc.text)
		if ok != tc.ok || reason != tc.reason {
			t.Fatalf("FilterContent(%q) = (%v, %q), want (%v, %q)", tc.text, ok, reason, tc.ok, tc.reason)
		}
	}
}

func TestGetRejectionMessageFallback(t *testing.T) {
	ms := newFilterOnlyService()
	if msg := ms.GetRejectionMessage("nonsense_reason"); msg == "" {
		t.Fatal("unknown reasons still need a user-facing message")
	}
}
