package mailer

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"nika-sop.backend/internal/config"
	"nika-sop.backend/pkg/docfile"
)

const (
	dialTimeout    = 8 * time.Second
	sessionTimeout = 15 * time.Second

	// AttachmentFilename is the filename of the DOCX attachment
	AttachmentFilename = "your_SOP.docx"
)

// SMTPSender sends mail over an authenticated SMTP relay with STARTTLS
type SMTPSender struct {
	cfg config.SMTPConfig
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// SendActivation sends the plain-text activation link email
func (s *SMTPSender) SendActivation(_ context.Context, to, activationLink string) error {
	body := "Hello,\n\nPlease activate your account by clicking this link:\n" +
		activationLink +
		"\n\nIf you didn't request this, ignore this email."
	msg := buildPlainMessage(s.cfg.Username, to, "Activate your account", body)
	return s.send(to, msg)
}

// SendSOP sends the document-delivery email with a DOCX attachment
func (s *SMTPSender) SendSOP(_ context.Context, to, subject, body string, attachment []byte) error {
	msg := buildAttachmentMessage(s.cfg.Username, to, subject, body, attachment)
	return s.send(to, msg)
}

// send opens a relay session, authenticates, submits msg and tears the
// session down. One attempt; the deadline bounds the whole exchange.
func (s *SMTPSender) send(to string, msg []byte) error {
	addr := s.cfg.Address()

	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return err
	}
	_ = conn.SetDeadline(time.Now().Add(sessionTimeout))

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := c.Auth(auth); err != nil {
		return err
	}

	if err := c.Mail(s.cfg.Username); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func buildPlainMessage(from, to, subject, body string) []byte {
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		body,
	}, "\r\n")
	return []byte(msg)
}

func buildAttachmentMessage(from, to, subject, body string, attachment []byte) []byte {
	boundary := "nika-sop-boundary"
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		fmt.Sprintf(`Content-Type: multipart/mixed; boundary="%s"`, boundary),
		"",
		"--" + boundary,
		`Content-Type: text/plain; charset="UTF-8"`,
		"",
		body,
		"",
		"--" + boundary,
		fmt.Sprintf(`Content-Type: %s; name="%s"`, docfile.ContentType, AttachmentFilename),
		"Content-Transfer-Encoding: base64",
		fmt.Sprintf(`Content-Disposition: attachment; filename="%s"`, AttachmentFilename),
		"",
		encodeBase64Wrapped(attachment),
		"--" + boundary + "--",
	}, "\r\n")
	return []byte(msg)
}

// encodeBase64Wrapped encodes data with RFC 2045 line wrapping
func encodeBase64Wrapped(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	var sb strings.Builder
	for len(encoded) > 76 {
		sb.WriteString(encoded[:76])
		sb.WriteString("\r\n")
		encoded = encoded[76:]
	}
	sb.WriteString(encoded)
	return sb.String()
}
