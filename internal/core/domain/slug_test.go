package domain

import "testing"

func TestDeriveSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Annual  Sports   Meet 2025  ", "annual-sports-meet-2025"},
		{"New Intake: HNDIT (2025/26)!", "new-intake-hndit-202526"},
		{"already-slugged", "already-slugged"},
		{"UPPER Case Title", "upper-case-title"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := DeriveSlug(tc.title); got != tc.want {
			t.Errorf("DeriveSlug(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestDeriveSlugIdempotent(t *testing.T) {
	slug := DeriveSlug("Graduation Ceremony 2025")
	if again := DeriveSlug(slug); again != slug {
		t.Fatalf("slug not stable: %q then %q", slug, again)
	}
}
