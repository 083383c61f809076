package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails. All sends are
// best-effort: callers treat failures as log-only.
type EmailService interface {
	SendEmployeeWelcome(to string, data EmployeeWelcomeData) error
	SendAdminWelcome(to string, data AdminWelcomeData) error
	SendAccountStatus(to, username string, active bool) error
	SendPasswordResetOTP(to, otp string, expiresAt time.Time) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type EmployeeWelcomeData struct {
	Name         string
	EmployeeCode string
	Email        string
	Username     string
	Department   string
	Position     string
	Salary       string
	JoinDate     string
	Password     string
}

type AdminWelcomeData struct {
	Username string
	Email    string
	Company  string
	Password string
}

type accountStatusData struct {
	Username string
	Status   string
}

type passwordResetData struct {
	OTP       string
	ExpiresAt string
}

func (s *emailServiceImpl) SendEmployeeWelcome(to string, data EmployeeWelcomeData) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "employee_welcome.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return s.sendHTML(to, "Your Employee Account Details", body.String())
}

func (s *emailServiceImpl) SendAdminWelcome(to string, data AdminWelcomeData) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "admin_welcome.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return s.sendHTML(to, "Your Admin Account Details", body.String())
}

func (s *emailServiceImpl) SendAccountStatus(to, username string, active bool) error {
	status := "re-activated"
	if !active {
		status = "disabled"
	}
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "account_status.html", accountStatusData{Username: username, Status: status}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return s.sendHTML(to, "Your Account Status Changed", body.String())
}

func (s *emailServiceImpl) SendPasswordResetOTP(to, otp string, expiresAt time.Time) error {
	data := passwordResetData{
		OTP:       otp,
		ExpiresAt: expiresAt.Format("15:04 MST, 02 Jan 2006"),
	}
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "password_reset.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return s.sendHTML(to, "Password Reset Code", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
