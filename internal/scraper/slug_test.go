package scraper

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Demo Swipe", "demo-swipe"},
		{"Demo Swipe 3", "demo-swipe"},
		{"  Pull To Refresh!  ", "pull-to-refresh"},
		{"Card — Stack & Flip", "card-stack-flip"},
		{"Onboarding   Progress  12", "onboarding-progress"},
		{"Title 3 -", "title"},
		{"Grid View 2 / 3", "grid-view"},
		{"", ""},
		{"42", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Demo Swipe 3",
		"Parallax Scroll Cards",
		"Card — Stack & Flip 2024",
		"x 10 20",
		"iOS-17 Lock Screen",
		"Title 3 -",
		"Grid View 2 / 3",
		"Step 1 - Step 2",
	}

	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestStripTrailingDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Demo Swipe 3", "Demo Swipe"},
		{"Demo Swipe", "Demo Swipe"},
		{" Spaced Out 42 ", "Spaced Out"},
		{"iOS 17", "iOS"},
		{"2048", ""},
	}

	for _, tc := range cases {
		if got := stripTrailingDigits(tc.in); got != tc.want {
			t.Errorf("stripTrailingDigits(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
