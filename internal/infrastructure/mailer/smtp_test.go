package mailer

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"nika-sop.backend/internal/config"
	"nika-sop.backend/pkg/logger"
)

func TestBuildPlainMessage(t *testing.T) {
	msg := string(buildPlainMessage("noreply@x.com", "a@x.com", "Activate your account", "click the link"))

	require.Contains(t, msg, "From: noreply@x.com\r\n")
	require.Contains(t, msg, "To: a@x.com\r\n")
	require.Contains(t, msg, "Subject: Activate your account\r\n")
	require.True(t, strings.HasSuffix(msg, "\r\nclick the link"))
}

func TestBuildAttachmentMessage_RoundTripsPayload(t *testing.T) {
	payload := []byte(strings.Repeat("docx bytes ", 50))
	msg := string(buildAttachmentMessage("noreply@x.com", "a@x.com", "Your SOP", "see attachment", payload))

	require.Contains(t, msg, "multipart/mixed")
	require.Contains(t, msg, `filename="your_SOP.docx"`)
	require.Contains(t, msg, "Content-Transfer-Encoding: base64")

	// Recover the base64 body between the disposition header and the closing
	// boundary and check it decodes back to the payload.
	start := strings.Index(msg, "Content-Disposition")
	require.Positive(t, start)
	section := msg[start:]
	lines := strings.Split(section, "\r\n")

	var encoded strings.Builder
	for _, line := range lines[2:] {
		if strings.HasPrefix(line, "--") {
			break
		}
		encoded.WriteString(line)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded.String())
	require.NoError(t, err)
	require.Equal(t, payload, decoded)
}

func TestEncodeBase64Wrapped_LineLength(t *testing.T) {
	out := encodeBase64Wrapped([]byte(strings.Repeat("x", 500)))
	for _, line := range strings.Split(out, "\r\n") {
		require.LessOrEqual(t, len(line), 76)
	}
}

func TestNewSender_ProviderSelection(t *testing.T) {
	logger.Init("development")

	s := NewSender(config.SMTPConfig{Provider: "log"})
	require.IsType(t, &LogSender{}, s)

	s = NewSender(config.SMTPConfig{Provider: "smtp", Host: "smtp.gmail.com", Port: 587})
	require.IsType(t, &SMTPSender{}, s)
}

func TestLogSender_NeverFails(t *testing.T) {
	logger.Init("development")
	s := &LogSender{}
	require.NoError(t, s.SendActivation(context.Background(), "a@x.com", "http://x/activate?token=t"))
	require.NoError(t, s.SendSOP(context.Background(), "a@x.com", "subject", "body", []byte("doc")))
}
