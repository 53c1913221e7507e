package domain

import "testing"

func TestValidLinkedinProfile(t *testing.T) {
	valid := []string{
		"",
		"https://www.linkedin.com/in/someone",
		"http://linkedin.com/in/someone",
		"www.linkedin.com/in/someone",
		"linkedin.com/company/sliate",
	}
	for _, u := range valid {
		if !ValidLinkedinProfile(u) {
			t.Errorf("expected %q to be accepted", u)
		}
	}

	invalid := []string{
		"https://example.com/in/someone",
		"twitter.com/someone",
		"not a url",
	}
	for _, u := range invalid {
		if ValidLinkedinProfile(u) {
			t.Errorf("expected %q to be rejected", u)
		}
	}
}
