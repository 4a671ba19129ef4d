// Package notify delivers password-reset links. The core only sees the
// Notifier capability; delivery is best effort.
package notify

import (
	"fmt"
	"net/url"
	"strings"
)

const ResetSubject = "CarWash Pro - Password Reset Request"

type Message struct {
	To      string
	Subject string
	Body    string
}

// ResetLink appends the token as a query parameter to baseURL.
func ResetLink(baseURL, token string) string {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	return baseURL + sep + "token=" + url.QueryEscape(token)
}

func NewResetMessage(baseURL, address, token string) Message {
	var b strings.Builder
	b.WriteString("To reset your password, click the link below:\n")
	fmt.Fprintf(&b, "%s\n\n", ResetLink(baseURL, token))
	b.WriteString("This link will expire in 1 hour.\n\n")
	b.WriteString("If you didn't request this, please ignore this email.")

	return Message{
		To:      address,
		Subject: ResetSubject,
		Body:    b.String(),
	}
}
