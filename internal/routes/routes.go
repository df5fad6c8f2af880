package routes

const (
	// Health
	Health = "/"

	// Form submission endpoints
	Apply     = "/api/apply"
	RateQuote = "/api/rate-quote"
)
