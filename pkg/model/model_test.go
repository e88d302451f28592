package model_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-regform/pkg/model"
)

func TestBuildPayload_FieldsInWireOrder(t *testing.T) {
	form := model.NewForm(map[model.FieldName]string{
		model.FieldFullName:        "Ada Lovelace",
		model.FieldFatherName:      "Lord Byron",
		model.FieldMobileNumber:    "0300-1234567",
		model.FieldCNIC:            "12345-1234567-1",
		model.FieldUsername:        "ada_l",
		model.FieldPassword:        "Abcdef1!",
		model.FieldConfirmPassword: "Abcdef1!",
	})
	now := time.Date(2026, time.March, 4, 15, 4, 5, 0, time.UTC)

	payload := model.BuildPayload(form, now)

	want := []model.Pair{
		{Name: model.FieldFullName, Value: "Ada Lovelace"},
		{Name: model.FieldFatherName, Value: "Lord Byron"},
		{Name: model.FieldMobileNumber, Value: "0300-1234567"},
		{Name: model.FieldCNIC, Value: "12345-1234567-1"},
		{Name: model.FieldUsername, Value: "ada_l"},
		{Name: model.FieldPassword, Value: "Abcdef1!"},
		{Name: model.FieldTimestamp, Value: "3/4/2026, 3:04:05 PM"},
		{Name: model.FieldSubject, Value: "subject"},
	}
	if diff := cmp.Diff(want, payload.Fields("subject")); diff != "" {
		t.Fatalf("payload fields mismatch (-want +got):\n%s", diff)
	}
	if _, ok := payload.Map()[string(model.FieldConfirmPassword)]; ok {
		t.Fatalf("confirmation must not be part of the payload")
	}
}

func TestBuildPayload_IsDetachedFromForm(t *testing.T) {
	form := model.NewForm(map[model.FieldName]string{model.FieldUsername: "first"})
	payload := model.BuildPayload(form, time.Now())

	form.SetValue(model.FieldUsername, "second")
	payload.Map()[string(model.FieldUsername)] = "third"

	if got := payload.Value(model.FieldUsername); got != "first" {
		t.Fatalf("payload mutated: got %q", got)
	}
}

func TestValidationErrors_Message(t *testing.T) {
	var errs model.ValidationErrors
	errs.AddField(model.FieldCNIC, "1234")
	errs.AddField(model.FieldUsername, "")
	errs.AddTerms()

	want := "Validation failed: cnic: 1234, username: empty, Terms and conditions not accepted"
	if got := errs.Message(); got != want {
		t.Fatalf("message mismatch:\nwant %q\n got %q", want, got)
	}
}

func TestForm_Reset(t *testing.T) {
	form := model.NewForm(map[model.FieldName]string{model.FieldFullName: "x"})
	form.SetTermsAccepted(true)
	form.Reset()

	if !form.Blank(model.FieldFullName) || form.TermsAccepted() {
		t.Fatalf("expected cleared form, got %+v terms=%v", form.Snapshot(), form.TermsAccepted())
	}
}
