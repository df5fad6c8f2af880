package forms

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/rgm-logistics/forms-api/internal/validation"
)

// HTML template for the owner notice. The body slot receives a pre-built
// <li> list of submitted fields.
const ownerNoticeEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: monospace; line-height: 1.5; }
  .container { border: 1px solid #ccc; padding: 15px; max-width: 600px; }
  h2 { margin-top: 0; }
  ul { list-style: none; padding: 0; }
  li { margin-bottom: 5px; }
  strong { color: #000; }
</style>
</head>
<body>
  <div class="container">
    <h2>%s</h2>
    <ul>
%s    </ul>
    <p>Received (UTC): %s</p>
  </div>
</body>
</html>`

// HTML template for the public-facing acknowledgment email.
const ackEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 20px; }
  .container { max-width: 500px; margin: auto; background: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; overflow: hidden; }
  .header { background-color: #1d3557; color: white; padding: 20px; text-align: center; }
  .header h1 { margin: 0; font-size: 24px; }
  .content { padding: 30px; text-align: left; }
  .footer { background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #6c757d; }
  p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>%s</h1>
    </div>
    <div class="content">
      <p>Hello %s,</p>
      <p>%s</p>
    </div>
    <div class="footer">
      © %d %s. All rights reserved.
    </div>
  </div>
</body>
</html>`

// fieldList renders "Label: value" lines (plain) and <li> items (html) for
// every schema field, substituting "N/A" for anything left blank.
func fieldList(sch *Schema, sub *Submission, labels map[string]string) (plain, htmlItems string) {
	var pb, hb strings.Builder
	for _, f := range sch.Fields {
		label, ok := labels[f.Name]
		if !ok {
			label = f.Name
		}
		v := sub.Get(f.Name)
		if v == "" {
			v = "N/A"
		}
		fmt.Fprintf(&pb, "%s: %s\n", label, v)
		fmt.Fprintf(&hb, "      <li><strong>%s:</strong> %s</li>\n", label, html.EscapeString(v))
	}
	return pb.String(), hb.String()
}

// NewDriverApplicationSchema builds the schema for the driver application
// endpoint. Field order mirrors the form: names, phone, email, then address.
func NewDriverApplicationSchema(orgName string) *Schema {
	labels := map[string]string{
		"firstName":    "First Name",
		"lastName":     "Last Name",
		"middleName":   "Middle Name",
		"primaryPhone": "Phone",
		"email":        "Email",
		"license":      "License",
		"city":         "City",
		"state":        "State",
		"zip":          "ZIP",
	}

	sch := &Schema{
		Kind:       "driver_application",
		AllowFiles: true,
		Fields: []Field{
			{Name: "firstName", Required: true, Valid: validation.Name, Message: "First name should contain only letters."},
			{Name: "lastName", Required: true, Valid: validation.Name, Message: "Last name should contain only letters."},
			{Name: "middleName", Valid: validation.Name, Message: "Middle name should contain only letters."},
			{Name: "primaryPhone", Required: true, Valid: validation.Phone, Message: "Phone must have at least 10 digits."},
			{Name: "email", Required: true, Valid: validation.Email, Message: "Please enter a valid email."},
			{Name: "license"},
			{Name: "city", Valid: validation.City, Message: "City should contain only letters."},
			{Name: "state", Valid: validation.State, Message: "State should contain only letters."},
			{Name: "zip", Valid: validation.Zip, Message: "Invalid PINCODE/ZIP format."},
		},
		OwnerSubject: fmt.Sprintf("New Driver Application - %s", orgName),
		AckSubject:   fmt.Sprintf("Application Received - %s", orgName),
	}

	sch.OwnerBody = func(sub *Submission) (string, string) {
		plainFields, htmlItems := fieldList(sch, sub, labels)
		plain := fmt.Sprintf(
			"New Driver Application\n\n%s\nApplicant requests Google Meet interview.\n",
			plainFields,
		)
		htmlBody := fmt.Sprintf(
			ownerNoticeEmailHTML,
			"New Driver Application",
			htmlItems,
			time.Now().UTC().Format(time.RFC1123Z),
		)
		return plain, htmlBody
	}

	sch.AckBody = func(sub *Submission) (string, string) {
		first := sub.Get("firstName")
		plain := fmt.Sprintf(
			"Hi %s,\n\nThank you for applying to %s.\nWe have received your application and will contact you soon.\n\nBest regards,\n%s Team",
			first, orgName, orgName,
		)
		htmlBody := fmt.Sprintf(
			ackEmailHTML,
			"Application Received",
			"Your application was received!",
			html.EscapeString(first),
			fmt.Sprintf("Thank you for applying to %s. We have received your application and will contact you soon.", orgName),
			time.Now().Year(),
			orgName,
		)
		return plain, htmlBody
	}

	return sch
}

// NewRateQuoteSchema builds the schema for the rate-quote endpoint. Only
// name, phone and email are required; the remaining freight details default
// to "N/A" so the owner notice always enumerates every field.
func NewRateQuoteSchema(orgName string) *Schema {
	labels := map[string]string{
		"company":      "Company",
		"website":      "Website",
		"name":         "Name",
		"phone":        "Phone",
		"email":        "Email",
		"customerType": "Customer Type",
		"commodity":    "Commodity",
		"dollarValue":  "Dollar Value",
		"frequency":    "Shipment Frequency",
		"details":      "Details",
	}

	sch := &Schema{
		Kind: "rate_quote",
		Fields: []Field{
			{Name: "name", Required: true, Valid: validation.Name, Message: "Name should contain only letters."},
			{Name: "phone", Required: true, Valid: validation.Phone, Message: "Phone must have at least 10 digits."},
			{Name: "email", Required: true, Valid: validation.Email, Message: "Please enter a valid email."},
			{Name: "website", Default: "N/A", Valid: validation.Website, Message: "Please enter a valid website URL."},
			{Name: "company", Default: "N/A"},
			{Name: "customerType", Default: "N/A"},
			{Name: "commodity", Default: "N/A"},
			{Name: "dollarValue", Default: "N/A"},
			{Name: "frequency", Default: "N/A"},
			{Name: "details", Default: "N/A"},
		},
		OwnerSubject: "New Rate Quote Request",
		AckSubject:   "We Received Your Rate Quote Request",
	}

	sch.OwnerBody = func(sub *Submission) (string, string) {
		plainFields, htmlItems := fieldList(sch, sub, labels)
		plain := fmt.Sprintf("New Rate Quote Request\n\n%s", plainFields)
		htmlBody := fmt.Sprintf(
			ownerNoticeEmailHTML,
			"New Rate Quote Request",
			htmlItems,
			time.Now().UTC().Format(time.RFC1123Z),
		)
		return plain, htmlBody
	}

	sch.AckBody = func(sub *Submission) (string, string) {
		name := sub.Get("name")
		plain := fmt.Sprintf(
			"Hello %s,\n\nThank you for requesting a rate quote with %s.\nOur team is reviewing your freight details and will contact you shortly.\n\n– %s",
			name, orgName, orgName,
		)
		htmlBody := fmt.Sprintf(
			ackEmailHTML,
			"Rate Quote Received",
			"We received your rate quote request!",
			html.EscapeString(name),
			fmt.Sprintf("Thank you for requesting a rate quote with %s. Our team is reviewing your freight details and will contact you shortly.", orgName),
			time.Now().Year(),
			orgName,
		)
		return plain, htmlBody
	}

	return sch
}
