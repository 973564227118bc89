package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/luminacare/clinic-dashboard/dashboard-client/internal/core/domain"
	"github.com/luminacare/clinic-dashboard/dashboard-client/test/mocks"
)

func TestBillingSubmit(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewMockGateway()
	c := NewBillingController(gw, gw, zerolog.Nop())

	c.SetForm(BillForm{PatientID: 3, Amount: 750})
	if err := c.Submit(ctx); err != nil {
		t.Fatalf("Submit() = %v", err)
	}

	bill := c.LastBill()
	if bill == nil {
		t.Fatal("LastBill() = nil after success")
	}
	if bill.PatientID != 3 || bill.Amount != 750 || bill.Status != domain.BillUnpaid {
		t.Errorf("bill = %+v", bill)
	}
	if got := c.Summary(); got != "Bill #1 | Patient #3 | Amount ₹750.00 | Status: unpaid" {
		t.Errorf("Summary() = %q", got)
	}
	// Form resets to the unpaid default.
	if form := c.Form(); form != (BillForm{Status: domain.BillUnpaid}) {
		t.Errorf("form after success = %+v", form)
	}
}

func TestBillingSubmitValidation(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewMockGateway()
	c := NewBillingController(gw, gw, zerolog.Nop())

	forms := []BillForm{
		{},
		{PatientID: 1},
		{Amount: 100},
		{PatientID: 1, Amount: -5},
	}
	for _, form := range forms {
		c.SetForm(form)
		if err := c.Submit(ctx); !errors.Is(err, ErrMissingFields) {
			t.Errorf("Submit(%+v) = %v, want ErrMissingFields", form, err)
		}
	}
	if gw.CreateBillCalls != 0 {
		t.Errorf("gateway called %d times on invalid forms", gw.CreateBillCalls)
	}
}

func TestBillingSubmitPreservesFormOnFailure(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewMockGateway()
	gw.CreateBillErr = errors.New("500")
	c := NewBillingController(gw, gw, zerolog.Nop())

	form := BillForm{PatientID: 1, Amount: 200, Status: domain.BillPaid}
	c.SetForm(form)
	if err := c.Submit(ctx); err == nil {
		t.Fatal("Submit() succeeded with a failing backend")
	}
	if got := c.Form(); got != form {
		t.Errorf("form lost on failure: %+v", got)
	}
	if c.LastBill() != nil {
		t.Error("LastBill() set despite failure")
	}
}

func TestBillingDefaultsEmptyStatusToUnpaid(t *testing.T) {
	ctx := context.Background()
	gw := mocks.NewMockGateway()
	c := NewBillingController(gw, gw, zerolog.Nop())

	c.SetForm(BillForm{PatientID: 1, Amount: 100, Status: ""})
	if err := c.Submit(ctx); err != nil {
		t.Fatalf("Submit() = %v", err)
	}
	if gw.Bills[0].Status != domain.BillUnpaid {
		t.Errorf("status = %q, want unpaid", gw.Bills[0].Status)
	}
}
