package validator

import (
	"testing"
)

type sampleRequest struct {
	CustomerName  string       `json:"customer_name" validate:"required,min=2"`
	CustomerEmail string       `json:"customer_email" validate:"required,email"`
	Items         []sampleItem `json:"items" validate:"required,min=1,dive"`
}

type sampleItem struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

func TestFieldErrors_ReportsPerField(t *testing.T) {
	val := New()

	req := sampleRequest{
		CustomerName:  "J",
		CustomerEmail: "not-an-email",
		Items:         []sampleItem{},
	}

	err := val.Struct(req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	report := FieldErrors(err)

	if len(report["customer_name"]) == 0 {
		t.Errorf("expected error for customer_name, got %v", report)
	}
	if len(report["customer_email"]) == 0 {
		t.Errorf("expected error for customer_email, got %v", report)
	}
	if len(report["items"]) == 0 {
		t.Errorf("expected error for items, got %v", report)
	}
}

func TestFieldErrors_NestedItemPath(t *testing.T) {
	val := New()

	req := sampleRequest{
		CustomerName:  "Jordan",
		CustomerEmail: "jordan@example.com",
		Items:         []sampleItem{{Quantity: 0}},
	}

	err := val.Struct(req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	report := FieldErrors(err)
	if len(report["items[0].quantity"]) == 0 {
		t.Errorf("expected nested item error, got %v", report)
	}
}

func TestFieldErrors_ValidStructHasNoError(t *testing.T) {
	val := New()

	req := sampleRequest{
		CustomerName:  "Jordan",
		CustomerEmail: "jordan@example.com",
		Items:         []sampleItem{{Quantity: 2}},
	}

	if err := val.Struct(req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	report := FieldErrors(errTest)
	if len(report["request"]) == 0 {
		t.Errorf("expected catch-all request entry, got %v", report)
	}
}

var errTest = errOpaque{}

type errOpaque struct{}

func (errOpaque) Error() string { return "boom" }
