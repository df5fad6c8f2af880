package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"John", true},
		{"Mary-Anne O'Neil Jr.", true},
		{"  Jo  ", true},
		{"J", false},
		{"", false},
		{"John3", false},
		{"John_Doe", false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Name(c.in), "Name(%q)", c.in)
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1234567890", true},
		{"555-123-4567", true},
		{"+1 (555) 123 4567", true},
		{"123456789", false},
		{"", false},
		{"phone number", false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Phone(c.in), "Phone(%q)", c.in)
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"john@x.com", true},
		{"jane.doe+tag@example.co.uk", true},
		{"not-an-email", false},
		{"@nouser.com", false},
		{"user@invalid.", false},
		{"user@domain.c", false},
		{"user name@domain.com", false},
		{"", false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Email(c.in), "Email(%q)", c.in)
	}
}

func TestZip(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"90210", true},
		{"K1A 0B1", true},
		{"SW1A-1AA", true},
		{"12", false},
		{"", false},
		{"12#45", false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Zip(c.in), "Zip(%q)", c.in)
	}
}

func TestWebsite(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"example.com", true},
		{"shipping.example.co", true},
		{"not a url", false},
		{"http://", false},
		{"example", false},
		{"", false},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Website(c.in), "Website(%q)", c.in)
	}
}
