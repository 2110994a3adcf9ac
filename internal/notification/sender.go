// Package notification delivers follow-up reminder emails to the sales
// team for high-intent leads.
package notification

import (
	"context"
	"fmt"
	"net"
	"time"

	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"

	gomail "github.com/wneessen/go-mail"
)

const followUpSubjectFmt = "Hot lead follow-up: lead #%d (%s)"

// FollowUpDetails describes the lead the sales team should contact.
type FollowUpDetails struct {
	LeadID        int64
	HashedEmail   string
	IntentLevel   string
	RerankedScore int
	Comments      string
	AdvisorNote   string
}

// Sender delivers follow-up reminders over SMTP.
type Sender struct {
	host       string
	port       int
	username   string
	password   string
	fromName   string
	fromEmail  string
	salesInbox string
	log        *logger.Logger
}

// NewSender creates a follow-up sender from the email config. Returns nil
// when SMTP is not configured; a nil sender silently skips delivery.
func NewSender(cfg config.EmailConfig, log *logger.Logger) *Sender {
	if !cfg.IsEmailEnabled() {
		log.Warn("SMTP not configured; follow-up emails disabled")
		return nil
	}

	return &Sender{
		host:       cfg.GetSMTPHost(),
		port:       cfg.GetSMTPPort(),
		username:   cfg.GetSMTPUsername(),
		password:   cfg.GetSMTPPassword(),
		fromName:   cfg.GetEmailFromName(),
		fromEmail:  cfg.GetEmailFromAddress(),
		salesInbox: cfg.GetSalesInboxAddress(),
		log:        log,
	}
}

// SendFollowUpReminder emails the sales inbox about a high-intent lead.
func (s *Sender) SendFollowUpReminder(ctx context.Context, details FollowUpDetails) error {
	if s == nil {
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(s.salesInbox); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(fmt.Sprintf(followUpSubjectFmt, details.LeadID, details.IntentLevel))
	msg.SetBodyString(gomail.TypeTextPlain, renderFollowUpBody(details))

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func renderFollowUpBody(details FollowUpDetails) string {
	body := fmt.Sprintf(
		"Lead #%d scored %d (%s) and is due for a follow-up call.\n\n"+
			"Reference: %s\n",
		details.LeadID, details.RerankedScore, details.IntentLevel, details.HashedEmail,
	)
	if details.Comments != "" {
		body += fmt.Sprintf("\nLead comments:\n%s\n", details.Comments)
	}
	if details.AdvisorNote != "" {
		body += fmt.Sprintf("\nAdvisor note:\n%s\n", details.AdvisorNote)
	}
	return body
}
