package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sub(values map[string]string) *Submission {
	return &Submission{Values: values}
}

func TestValidateMissingRequiredBeforeFormats(t *testing.T) {
	sch := NewDriverApplicationSchema("Acme")

	// lastName is both missing required email AND carries an invalid field;
	// the missing-fields check must win.
	rej := sch.Validate(sub(map[string]string{
		"firstName":    "John",
		"lastName":     "D0e!",
		"primaryPhone": "1234567890",
	}))
	require.NotNil(t, rej)
	require.Equal(t, MissingFields, rej.Kind)
	require.Equal(t, "Missing required fields", rej.Message)
}

func TestValidateFirstInvalidFieldWins(t *testing.T) {
	sch := NewDriverApplicationSchema("Acme")

	// Both phone and email are invalid; phone comes first in schema order.
	rej := sch.Validate(sub(map[string]string{
		"firstName":    "John",
		"lastName":     "Doe",
		"primaryPhone": "123",
		"email":        "not-an-email",
	}))
	require.NotNil(t, rej)
	require.Equal(t, InvalidField, rej.Kind)
	require.Equal(t, "primaryPhone", rej.Field)
	require.Equal(t, "Phone must have at least 10 digits.", rej.Message)
}

func TestValidateOptionalAbsentIsAcceptable(t *testing.T) {
	sch := NewDriverApplicationSchema("Acme")

	rej := sch.Validate(sub(map[string]string{
		"firstName":    "John",
		"lastName":     "Doe",
		"email":        "john@x.com",
		"primaryPhone": "1234567890",
	}))
	require.Nil(t, rej)
}

func TestValidateOptionalPresentButInvalidIsRejected(t *testing.T) {
	sch := NewDriverApplicationSchema("Acme")

	rej := sch.Validate(sub(map[string]string{
		"firstName":    "John",
		"lastName":     "Doe",
		"email":        "john@x.com",
		"primaryPhone": "1234567890",
		"zip":          "1!",
	}))
	require.NotNil(t, rej)
	require.Equal(t, InvalidField, rej.Kind)
	require.Equal(t, "zip", rej.Field)
}

func TestRateQuoteWebsiteValidatedOnlyWhenPresent(t *testing.T) {
	sch := NewRateQuoteSchema("Acme")

	base := map[string]string{
		"name":  "Jane",
		"phone": "555-123-4567",
		"email": "jane@y.com",
	}
	require.Nil(t, sch.Validate(sub(base)))

	withBadSite := map[string]string{
		"name":    "Jane",
		"phone":   "555-123-4567",
		"email":   "jane@y.com",
		"website": "not a url",
	}
	rej := sch.Validate(sub(withBadSite))
	require.NotNil(t, rej)
	require.Equal(t, "website", rej.Field)
	require.Contains(t, rej.Message, "website")
}

func TestApplyDefaultsFillsAbsentOptionals(t *testing.T) {
	sch := NewRateQuoteSchema("Acme")

	s := sub(map[string]string{
		"name":    "Jane",
		"phone":   "555-123-4567",
		"email":   "jane@y.com",
		"company": "Freight Co",
	})
	sch.ApplyDefaults(s)

	require.Equal(t, "Freight Co", s.Get("company"))
	require.Equal(t, "N/A", s.Get("website"))
	require.Equal(t, "N/A", s.Get("commodity"))
	require.Equal(t, "N/A", s.Get("details"))
	// Required fields never receive defaults.
	require.Equal(t, "Jane", s.Get("name"))
}

func TestOwnerBodyEnumeratesAllFields(t *testing.T) {
	sch := NewRateQuoteSchema("Acme")

	s := sub(map[string]string{
		"name":  "Jane",
		"phone": "555-123-4567",
		"email": "jane@y.com",
	})
	sch.ApplyDefaults(s)

	plain, html := sch.OwnerBody(s)
	require.Contains(t, plain, "Name: Jane")
	require.Contains(t, plain, "Company: N/A")
	require.Contains(t, plain, "Shipment Frequency: N/A")
	require.Contains(t, html, "<strong>Email:</strong> jane@y.com")
}

func TestOwnerBodyEscapesHTML(t *testing.T) {
	sch := NewRateQuoteSchema("Acme")

	s := sub(map[string]string{
		"name":    "Jane",
		"phone":   "555-123-4567",
		"email":   "jane@y.com",
		"details": "<script>alert(1)</script>",
	})
	sch.ApplyDefaults(s)

	_, html := sch.OwnerBody(s)
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "&lt;script&gt;")
}
