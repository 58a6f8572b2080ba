package notifier

type emailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type smsPayload struct {
	To   string `json:"to"`
	Body string `json:"body"`
}
