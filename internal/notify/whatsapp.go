package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/util"

	"go.uber.org/zap"
)

// WhatsAppSender formats enquiry alerts and hands them to an outbound
// WhatsApp gateway. The contract is best effort and fire-and-forget:
// the caller never blocks on or fails from the outcome.
type WhatsAppSender struct {
	number     string
	gatewayURL string
	client     *http.Client
	logger     *zap.Logger
}

// NewWhatsAppSender creates a sender targeting the fixed destination
// number. With an empty gatewayURL the sender only logs the click-to-chat
// link, which keeps local development free of external calls.
func NewWhatsAppSender(number, gatewayURL string) *WhatsAppSender {
	return &WhatsAppSender{
		number:     number,
		gatewayURL: gatewayURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     util.GetLogger(),
	}
}

// FormatEnquiryMessage renders the templated alert text for a new
// enquiry.
func FormatEnquiryMessage(event *models.EnquiryCreatedEvent) string {
	return fmt.Sprintf(`*New Enquiry from Shiva Sadhana Website*

*Service:* %s
*Name:* %s
*Email:* %s
*Phone:* %s
*Service Date:* %s

*Message:*
%s

Please follow up with this customer.`,
		capitalize(event.ServiceType),
		event.Name,
		event.Email,
		event.Phone,
		event.ServiceDate,
		event.Message,
	)
}

// ChatLink builds the wa.me click-to-chat URL carrying the message text.
func (s *WhatsAppSender) ChatLink(text string) string {
	number := strings.TrimPrefix(s.number, "+")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

// SendEnquiryAlert delivers the alert for a newly created enquiry.
func (s *WhatsAppSender) SendEnquiryAlert(ctx context.Context, event *models.EnquiryCreatedEvent) error {
	text := FormatEnquiryMessage(event)

	if s.gatewayURL == "" {
		s.logger.Info("WhatsApp gateway not configured, logging chat link only",
			zap.String("enquiry_id", event.EnquiryID),
			zap.String("link", s.ChatLink(text)))
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"to":   s.number,
		"text": text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	s.logger.Info("Enquiry alert delivered",
		zap.String("enquiry_id", event.EnquiryID),
		zap.String("service_type", event.ServiceType))
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
