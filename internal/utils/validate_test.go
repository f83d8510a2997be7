package utils

import "testing"

func TestValidCampusEmail(t *testing.T) {
	valid := []string{"gator@mail.sfsu.edu", "a.b@campus.edu"}
	for _, s := range valid {
		if !ValidCampusEmail(s) {
			t.Fatalf("%q should be accepted", s)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"this.is.a.very.long.address@campus.edu", // over 30 chars
	}
	for _, s := range invalid {
		if ValidCampusEmail(s) {
			t.Fatalf("%q should be rejected", s)
		}
	}
}

func TestValidCampusID(t *testing.T) {
	if !ValidCampusID("912345678") {
		t.Fatalf("nine digits starting with 9 should be accepted")
	}

	invalid := []string{"812345678", "91234567", "9123456789", "9abc45678", ""}
	for _, s := range invalid {
		if ValidCampusID(s) {
			t.Fatalf("%q should be rejected", s)
		}
	}
}
