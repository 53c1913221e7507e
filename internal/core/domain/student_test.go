package domain

import (
	"strings"
	"testing"
)

func TestValidateStudentRecord_Valid(t *testing.T) {
	cases := []struct {
		dept   string
		regNum string
	}{
		{DeptHNDE, "RAT/EN/2023/F/0012"},
		{DeptHNDA, "RAT/AC/2024/B/1234"},
		{DeptHNDIT, "RAT/IT/2022/A/0001"},
	}

	for _, tc := range cases {
		s := &Student{Name: "Test Student", Department: tc.dept, RegistrationNumber: tc.regNum}
		if verr := ValidateStudentRecord(s); verr != nil {
			t.Errorf("%s/%s: unexpected error %v", tc.dept, tc.regNum, verr)
		}
	}
}

func TestValidateStudentRecord_FormatKeyedByDepartment(t *testing.T) {
	// A registration number valid for HNDIT must fail under HNDA.
	s := &Student{Name: "Test", Department: DeptHNDA, RegistrationNumber: "RAT/IT/2022/A/0001"}
	verr := ValidateStudentRecord(s)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(verr.Error(), "registration number") {
		t.Fatalf("unexpected message: %s", verr.Error())
	}
}

func TestValidateStudentRecord_BadFormats(t *testing.T) {
	bad := []string{
		"RAT/IT/22/A/0001",     // short year
		"RAT/IT/2022/AB/0001",  // two letters
		"RAT/IT/2022/a/0001",   // lowercase letter
		"RAT/IT/2022/A/001",    // short sequence
		"rat/it/2022/a/0001",   // not uppercased
		"RAT/EN/2022/A/0001x",  // trailing garbage
		"XRAT/IT/2022/A/0001",  // leading garbage
	}
	for _, r := range bad {
		s := &Student{Name: "Test", Department: DeptHNDIT, RegistrationNumber: r}
		if ValidateStudentRecord(s) == nil {
			t.Errorf("expected %q to be rejected", r)
		}
	}
}

func TestValidateStudentRecord_CollectsAllFailures(t *testing.T) {
	s := &Student{Department: "ARTS"}
	verr := ValidateStudentRecord(s)
	if verr == nil {
		t.Fatal("expected validation error")
	}
	msg := verr.Error()
	for _, want := range []string{"registration number", "name", "department"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestValidDepartment(t *testing.T) {
	for _, d := range []string{DeptHNDE, DeptHNDA, DeptHNDIT} {
		if !ValidDepartment(d) {
			t.Errorf("expected %s to be valid", d)
		}
	}
	for _, d := range []string{"hndit", "ARTS", ""} {
		if ValidDepartment(d) {
			t.Errorf("expected %q to be invalid", d)
		}
	}
}
