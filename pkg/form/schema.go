package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind selects the constraint set applied to a field.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindPassword // length >= 8
	KindName     // length >= 2
	KindPrice    // parseable number, strictly positive
	KindEnum
	KindBool
)

// Rule declares one field of a form schema.
type Rule struct {
	Field    string
	Kind     Kind
	Required bool
	Enum     []string
	Message  string // overrides the kind's default failure message
}

// Values holds raw draft input: strings as typed by the user, bools from
// checkboxes.
type Values map[string]any

// Record is a validated draft, with numbers coerced (price -> float64).
type Record map[string]any

// Errors maps field name to failure message. Every failing field is
// reported; validation never stops at the first failure.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for f, m := range e {
		parts = append(parts, f+": "+m)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Schema is an ordered list of field rules.
type Schema struct {
	Rules []Rule
}

// Validate runs every rule against values and returns either the coerced
// record or the complete field-keyed error set, never both.
func (s Schema) Validate(values Values) (Record, Errors) {
	rec := Record{}
	errs := Errors{}

	for _, r := range s.Rules {
		raw, ok := values[r.Field]

		if r.Kind == KindBool {
			b := false
			if ok {
				switch v := raw.(type) {
				case bool:
					b = v
				case string:
					b = v == "true"
				}
			}
			rec[r.Field] = b
			continue
		}

		str := ""
		if ok {
			switch v := raw.(type) {
			case string:
				str = v
			default:
				str = fmt.Sprintf("%v", v)
			}
		}
		trimmed := strings.TrimSpace(str)

		if trimmed == "" {
			if r.Required {
				errs[r.Field] = r.failMsg()
			}
			continue
		}

		switch r.Kind {
		case KindEmail:
			if !emailRx.MatchString(trimmed) {
				errs[r.Field] = r.failMsg()
				continue
			}
			rec[r.Field] = trimmed
		case KindPassword:
			if len(str) < 8 {
				errs[r.Field] = r.failMsg()
				continue
			}
			rec[r.Field] = str
		case KindName:
			if len(trimmed) < 2 {
				errs[r.Field] = r.failMsg()
				continue
			}
			rec[r.Field] = trimmed
		case KindPrice:
			n, err := strconv.ParseFloat(trimmed, 64)
			if err != nil || n <= 0 {
				errs[r.Field] = r.failMsg()
				continue
			}
			rec[r.Field] = n
		case KindEnum:
			found := false
			for _, m := range r.Enum {
				if trimmed == m {
					found = true
					break
				}
			}
			if !found {
				errs[r.Field] = r.failMsg()
				continue
			}
			rec[r.Field] = trimmed
		default:
			rec[r.Field] = trimmed
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return rec, nil
}

func (r Rule) failMsg() string {
	if r.Message != "" {
		return r.Message
	}
	switch r.Kind {
	case KindEmail:
		return "Please enter a valid email address"
	case KindPassword:
		return "Password must be at least 8 characters"
	case KindName:
		return "Name must be at least 2 characters"
	case KindPrice:
		return "Please enter a valid price"
	case KindEnum:
		return "Please select a valid option"
	default:
		return "This field is required"
	}
}
