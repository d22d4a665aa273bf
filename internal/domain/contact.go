package domain

// ContactSubmission is one contact-form payload as posted by the site.
// Website is the honeypot field; StartedAt is the client-reported epoch
// millisecond timestamp at which the visitor began composing.
type ContactSubmission struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Website   string `json:"website"`
	StartedAt int64  `json:"startedAt"`
}
