package form

import (
	"context"
	"errors"
)

// Dialog drives the add/edit draft workflow:
//
//	Closed -> Open (blank or seeded) -> Validating -> Submitting -> Closed
//
// Validation failure keeps the dialog open with the entered values and the
// field errors. Cancel discards the draft from any open state with no side
// effects. A successful submit calls the submit callback, then the
// invalidate callback, then closes.
type Dialog struct {
	schema Schema

	state     State
	editingID string
	values    Values
	errs      Errors

	submit     func(ctx context.Context, editingID string, rec Record) error
	invalidate func(ctx context.Context) error
}

type State int

const (
	StateClosed State = iota
	StateValidating
	StateSubmitting
)

var ErrDialogClosed = errors.New("dialog is closed")

func NewDialog(schema Schema, submit func(ctx context.Context, editingID string, rec Record) error, invalidate func(ctx context.Context) error) *Dialog {
	return &Dialog{schema: schema, submit: submit, invalidate: invalidate}
}

// OpenBlank enters the create path with an empty draft.
func (d *Dialog) OpenBlank() {
	d.state = StateValidating
	d.editingID = ""
	d.values = Values{}
	d.errs = nil
}

// OpenEdit enters the edit path, seeding the draft from an existing entity.
// A successful submit updates that entity's identifier, never creates.
func (d *Dialog) OpenEdit(id string, seed Values) {
	d.state = StateValidating
	d.editingID = id
	d.values = Values{}
	for k, v := range seed {
		d.values[k] = v
	}
	d.errs = nil
}

// Submit merges the entered values over the seeded draft and validates. On
// failure the dialog stays open, the values are kept and the field errors
// returned. On success the submit and invalidate callbacks each run exactly
// once, in that order, and the dialog closes. A remote failure reopens the
// dialog with the draft intact.
func (d *Dialog) Submit(ctx context.Context, entered Values) (Errors, error) {
	if d.state == StateClosed {
		return nil, ErrDialogClosed
	}
	for k, v := range entered {
		d.values[k] = v
	}

	rec, errs := d.schema.Validate(d.values)
	if errs != nil {
		d.errs = errs
		return errs, nil
	}

	d.state = StateSubmitting
	if err := d.submit(ctx, d.editingID, rec); err != nil {
		d.state = StateValidating
		return nil, err
	}
	if d.invalidate != nil {
		if err := d.invalidate(ctx); err != nil {
			// the write landed; surface the refresh failure but close anyway
			d.reset()
			return nil, err
		}
	}
	d.reset()
	return nil, nil
}

// Cancel discards the draft and returns to Closed. No side effects.
func (d *Dialog) Cancel() { d.reset() }

func (d *Dialog) reset() {
	d.state = StateClosed
	d.editingID = ""
	d.values = nil
	d.errs = nil
}

func (d *Dialog) State() State      { return d.state }
func (d *Dialog) EditingID() string { return d.editingID }
func (d *Dialog) Errors() Errors    { return d.errs }

// Draft returns the current field values so a caller can re-render the form
// without clearing user input.
func (d *Dialog) Draft() Values { return d.values }
