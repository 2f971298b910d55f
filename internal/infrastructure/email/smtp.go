package email

import (
	"fmt"
	"html"
	"time"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/vpndash/vpndash/internal/shared/config"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPConfigFrom converts the email config section.
func SMTPConfigFrom(cfg sharedConfig.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

type messageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config SMTPConfig
	sender messageSender
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		sender: dialer,
	}
}

func (s *SMTPEmailService) SendWelcomeEmail(to, name string, subscriptionExpiry time.Time) error {
	subject := "Welcome to VPN Dashboard"
	expiry := subscriptionExpiry.UTC().Format("January 2, 2006")

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your account is ready. Your trial subscription runs until %s.</p>
			<p>Sign in to the dashboard to pick a server and start your first connection.</p>
		</body>
		</html>
	`, html.EscapeString(name), expiry)

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your account is ready. Your trial subscription runs until %s.

Sign in to the dashboard to pick a server and start your first connection.
	`, name, expiry)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordChangedEmail(to string) error {
	subject := "Password Changed Successfully"
	htmlBody := `
		<html>
		<body>
			<h2>Password Changed</h2>
			<p>Your password has been successfully changed.</p>
			<p>If you didn't make this change, please contact support immediately.</p>
		</body>
		</html>
	`

	plainBody := `
Password Changed

Your password has been successfully changed.

If you didn't make this change, please contact support immediately.
	`

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) newMessage(to, subject, htmlBody, plainBody string) *gomail.Message {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	if err := s.sender.DialAndSend(s.newMessage(to, subject, htmlBody, plainBody)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
