package orchestrator_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/testsupport"
)

func newOrchestrator(values map[model.FieldName]string) (*orchestrator.Orchestrator, *model.Form, *testsupport.Recorder) {
	form := model.NewForm(values)
	rec := testsupport.NewRecorder()
	return orchestrator.New(form, orchestrator.WithPresenter(rec)), form, rec
}

func TestValidate_ClearsBeforeSetting(t *testing.T) {
	o, form, rec := newOrchestrator(map[model.FieldName]string{model.FieldCNIC: "12345-1234567-1"})

	if !o.Validate(model.FieldCNIC) {
		t.Fatalf("expected valid cnic")
	}
	form.SetValue(model.FieldCNIC, "12345")
	if o.Validate(model.FieldCNIC) {
		t.Fatalf("expected invalid cnic")
	}

	want := []string{
		"status cnic=valid",
		"status cnic=unvalidated",
		"status cnic=invalid",
	}
	if diff := cmp.Diff(want, rec.Calls()); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
	if got := o.Status(model.FieldCNIC); got != model.StatusInvalid {
		t.Fatalf("status = %s, want invalid", got)
	}
}

func TestOnInput_SkipsFieldsThatAreNotInvalid(t *testing.T) {
	o, form, rec := newOrchestrator(map[model.FieldName]string{model.FieldUsername: "ada"})

	// Unvalidated field: typing never validates.
	if ran, _ := o.OnInput(model.FieldUsername); ran {
		t.Fatalf("input on an unvalidated field must not validate")
	}

	o.OnBlur(model.FieldUsername)
	before := rec.StatusCalls(model.FieldUsername)

	// Valid field: typing, even into an invalid value, is silent.
	form.SetValue(model.FieldUsername, "a")
	if ran, _ := o.OnInput(model.FieldUsername); ran {
		t.Fatalf("input on a valid field must not validate")
	}
	if after := rec.StatusCalls(model.FieldUsername); after != before {
		t.Fatalf("status mutated on input: %d calls before, %d after", before, after)
	}
	if o.Status(model.FieldUsername) != model.StatusValid {
		t.Fatalf("status changed without blur")
	}
}

func TestOnInput_RevalidatesInvalidField(t *testing.T) {
	o, form, rec := newOrchestrator(map[model.FieldName]string{model.FieldUsername: "a"})

	if o.OnBlur(model.FieldUsername) {
		t.Fatalf("expected invalid username")
	}
	form.SetValue(model.FieldUsername, "ada")

	ran, ok := o.OnInput(model.FieldUsername)
	if !ran || !ok {
		t.Fatalf("OnInput = (%v, %v), want (true, true)", ran, ok)
	}
	if got := rec.Status(model.FieldUsername); got != model.StatusValid {
		t.Fatalf("rendered status = %s, want valid", got)
	}
}

func TestValidateTerms(t *testing.T) {
	o, form, rec := newOrchestrator(nil)

	if o.ValidateTerms() {
		t.Fatalf("unchecked terms must fail")
	}
	if rec.Terms() != model.StatusInvalid {
		t.Fatalf("terms not marked invalid")
	}

	form.SetTermsAccepted(true)
	if !o.ValidateTerms() {
		t.Fatalf("checked terms must pass")
	}
	if rec.Terms() != model.StatusUnvalidated {
		t.Fatalf("terms flag not cleared, got %s", rec.Terms())
	}
}

func TestReset_RendersOnlyChangedStatuses(t *testing.T) {
	o, _, rec := newOrchestrator(testsupport.ValidValues())
	o.Validate(model.FieldFullName)
	o.Validate(model.FieldCNIC)
	o.ValidateTerms()

	o.Reset()

	for _, field := range []model.FieldName{model.FieldFullName, model.FieldCNIC} {
		if o.Status(field) != model.StatusUnvalidated || rec.Status(field) != model.StatusUnvalidated {
			t.Fatalf("%s not reset", field)
		}
	}
	if rec.StatusCalls(model.FieldUsername) != 0 {
		t.Fatalf("untouched field rendered during reset")
	}
	if o.TermsStatus() != model.StatusUnvalidated {
		t.Fatalf("terms not reset")
	}
}

func TestFields_ReportsRequiredFieldsInOrder(t *testing.T) {
	o, _, _ := newOrchestrator(testsupport.ValidValues())
	o.Validate(model.FieldUsername)

	fields := o.Fields()
	if len(fields) != len(model.RequiredFields) {
		t.Fatalf("got %d fields, want %d", len(fields), len(model.RequiredFields))
	}
	for i, f := range fields {
		if f.Name != model.RequiredFields[i] {
			t.Fatalf("field %d = %s, want %s", i, f.Name, model.RequiredFields[i])
		}
	}
	if fields[4].Status != model.StatusValid {
		t.Fatalf("username status = %s, want valid", fields[4].Status)
	}
}
