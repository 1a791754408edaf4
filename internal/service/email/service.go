package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"union-portal/internal/config"
)

type Service interface {
	SendApplicationReceived(ctx context.Context, toEmail, fullName string) error
	SendApplicationStatus(ctx context.Context, toEmail, fullName, status string) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &service{
		client: client,
		config: cfg,
	}
}

func (s *service) SendApplicationReceived(ctx context.Context, toEmail, fullName string) error {
	subject := "We received your application!"

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #1d4ed8;">Student Union Recruitment</h2>
	<p>Hi %s,</p>
	<p>Thanks for applying to join the student union. Your application has been
	recorded and the recruitment team will review it shortly.</p>
	<p>We will email you again once a decision has been made.</p>
	<p style="color: #6b7280; font-size: 13px;">This is an automated message, replies are not monitored.</p>
</body>
</html>`, fullName)

	return s.send(ctx, toEmail, subject, html)
}

func (s *service) SendApplicationStatus(ctx context.Context, toEmail, fullName, status string) error {
	subject := "Your application status has been updated"

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #1d4ed8;">Student Union Recruitment</h2>
	<p>Hi %s,</p>
	<p>Your application status is now: <strong>%s</strong>.</p>
	<p>If you have questions, reach out to the union office.</p>
</body>
</html>`, fullName, status)

	return s.send(ctx, toEmail, subject, html)
}

func (s *service) send(ctx context.Context, toEmail, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Student Union <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
