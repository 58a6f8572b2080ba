package domain

// Notifier is the external dispatcher for email and SMS. Both channels are
// best effort: callers log failures and never abort the primary operation.
type Notifier interface {
	SendEmail(to, subject, body string) error
	SendSMS(to, body string) error
}
