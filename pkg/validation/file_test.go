package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRegistration(t *testing.T) {
	doc := `
fullName: Ada Lovelace
fatherName: Lord Byron
mobileNumber: "03001234567"
cnic: "1234512345671"
username: ada_l
password: Abcdef1!
confirmPassword: Abcdef1!
termsCheck: true
`
	got, err := DecodeRegistration(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeRegistration: %v", err)
	}
	want := Registration{
		FullName:        "Ada Lovelace",
		FatherName:      "Lord Byron",
		MobileNumber:    "03001234567",
		CNIC:            "1234512345671",
		Username:        "ada_l",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
		TermsAccepted:   true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("registration mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRegistration_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":       "",
		"unknown key": "fullname: lower case typo\n",
		"not a map":   "- a\n- b\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeRegistration(strings.NewReader(doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRegistration_FormattedPassesValidator(t *testing.T) {
	v, err := NewValidator()
	if err != nil {
		t.Fatalf("NewValidator: %v", err)
	}
	reg := validRegistration()
	reg.MobileNumber = "03001234567"
	reg.CNIC = "1234512345671"

	issues, err := v.Check(reg)
	if err != nil || len(issues) != 2 {
		t.Fatalf("raw values: issues = %v, err = %v", issues, err)
	}
	issues, err = v.Check(reg.Formatted())
	if err != nil || len(issues) != 0 {
		t.Fatalf("formatted values: issues = %v, err = %v", issues, err)
	}
}
