package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// HTTPNotifier posts notification payloads to external email and SMS
// gateways. Delivery is best effort: callers decide what to do with a
// failure, the notifier just reports it.
type HTTPNotifier struct {
	emailGatewayURL string
	smsGatewayURL   string
	client          *http.Client
	logger          *zap.Logger
}

func NewHTTPNotifier(emailGatewayURL, smsGatewayURL string, logger *zap.Logger) *HTTPNotifier {
	return &HTTPNotifier{
		emailGatewayURL: emailGatewayURL,
		smsGatewayURL:   smsGatewayURL,
		client:          &http.Client{Timeout: 10 * time.Second},
		logger:          logger,
	}
}

func (n *HTTPNotifier) SendEmail(to, subject, body string) error {
	return n.post(n.emailGatewayURL, emailPayload{To: to, Subject: subject, Body: body})
}

func (n *HTTPNotifier) SendSMS(to, body string) error {
	return n.post(n.smsGatewayURL, smsPayload{To: to, Body: body})
}

func (n *HTTPNotifier) post(gatewayURL string, payload any) error {
	if gatewayURL == "" {
		return fmt.Errorf("notification gateway URL is not configured")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}

	req, err := http.NewRequest("POST", gatewayURL, bytes.NewBuffer(raw))
	if err != nil {
		return fmt.Errorf("create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification gateway returned status %d", resp.StatusCode)
	}

	n.logger.Debug("notification sent", zap.String("gateway", gatewayURL))
	return nil
}
