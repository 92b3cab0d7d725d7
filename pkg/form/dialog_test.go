package form

import (
	"context"
	"errors"
	"testing"
)

func productValues() Values {
	return Values{
		"name":        "Organic Apples",
		"description": "Fresh apples",
		"price":       "3.50",
		"category":    "Fruits",
		"isOrganic":   true,
	}
}

func TestDialog_CreateSuccessSubmitsThenInvalidatesThenCloses(t *testing.T) {
	var calls []string
	d := NewDialog(ProductSchema(),
		func(_ context.Context, editingID string, rec Record) error {
			if editingID != "" {
				t.Errorf("create path must not carry an id, got %q", editingID)
			}
			if rec["price"].(float64) != 3.5 {
				t.Errorf("price = %v", rec["price"])
			}
			calls = append(calls, "submit")
			return nil
		},
		func(context.Context) error {
			calls = append(calls, "invalidate")
			return nil
		})

	d.OpenBlank()
	errs, err := d.Submit(context.Background(), productValues())
	if err != nil || errs != nil {
		t.Fatalf("Submit() = %v, %v", errs, err)
	}
	if len(calls) != 2 || calls[0] != "submit" || calls[1] != "invalidate" {
		t.Fatalf("calls = %v, want exactly [submit invalidate]", calls)
	}
	if d.State() != StateClosed {
		t.Fatalf("state = %v, want closed", d.State())
	}
}

func TestDialog_ValidationFailureStaysOpenAndKeepsDraft(t *testing.T) {
	submitted := false
	d := NewDialog(ProductSchema(),
		func(context.Context, string, Record) error { submitted = true; return nil },
		func(context.Context) error { return nil })

	d.OpenBlank()
	vals := productValues()
	vals["price"] = "-5"
	errs, err := d.Submit(context.Background(), vals)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if errs == nil || errs["price"] == "" {
		t.Fatalf("expected price error, got %v", errs)
	}
	if submitted {
		t.Fatal("submission must not proceed on validation failure")
	}
	if d.State() != StateValidating {
		t.Fatalf("state = %v, dialog must stay open", d.State())
	}
	// entered values are kept for re-rendering
	if d.Draft()["name"] != "Organic Apples" {
		t.Fatalf("draft lost: %v", d.Draft())
	}

	// fixing the one bad field succeeds
	errs, err = d.Submit(context.Background(), Values{"price": "3.50"})
	if err != nil || errs != nil {
		t.Fatalf("retry = %v, %v", errs, err)
	}
	if !submitted || d.State() != StateClosed {
		t.Fatal("retry must submit and close")
	}
}

func TestDialog_EditSeedsDraftAndKeepsIdentifier(t *testing.T) {
	var gotID string
	var gotRec Record
	d := NewDialog(ProductSchema(),
		func(_ context.Context, id string, rec Record) error { gotID, gotRec = id, rec; return nil },
		nil)

	d.OpenEdit("p42", Values{
		"name":        "Goat Cheese",
		"description": "Creamy",
		"price":       "9.99",
		"category":    "Dairy & Eggs",
		"isOrganic":   false,
	})
	// change only the price; the seeded fields carry over
	errs, err := d.Submit(context.Background(), Values{"price": "8.49"})
	if err != nil || errs != nil {
		t.Fatalf("Submit() = %v, %v", errs, err)
	}
	if gotID != "p42" {
		t.Fatalf("editing id = %q, want p42 (update, not create)", gotID)
	}
	if gotRec["name"].(string) != "Goat Cheese" || gotRec["price"].(float64) != 8.49 {
		t.Fatalf("record = %v", gotRec)
	}
}

func TestDialog_CancelDiscardsWithoutSideEffects(t *testing.T) {
	calls := 0
	d := NewDialog(ProductSchema(),
		func(context.Context, string, Record) error { calls++; return nil },
		func(context.Context) error { calls++; return nil })

	d.OpenBlank()
	d.Cancel()
	if d.State() != StateClosed || calls != 0 {
		t.Fatalf("cancel must close silently: state=%v calls=%d", d.State(), calls)
	}

	if _, err := d.Submit(context.Background(), productValues()); !errors.Is(err, ErrDialogClosed) {
		t.Fatalf("submit after cancel = %v, want ErrDialogClosed", err)
	}
}

func TestDialog_RemoteFailureReopensWithDraft(t *testing.T) {
	boom := errors.New("network down")
	invalidated := 0
	d := NewDialog(ProductSchema(),
		func(context.Context, string, Record) error { return boom },
		func(context.Context) error { invalidated++; return nil })

	d.OpenBlank()
	errs, err := d.Submit(context.Background(), productValues())
	if errs != nil {
		t.Fatalf("unexpected field errors: %v", errs)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want remote failure", err)
	}
	if d.State() != StateValidating {
		t.Fatal("remote failure must leave the dialog open for retry")
	}
	if invalidated != 0 {
		t.Fatal("failed submit must not invalidate")
	}
	if d.Draft()["name"] != "Organic Apples" {
		t.Fatal("draft must survive a failed submit")
	}
}
