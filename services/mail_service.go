// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"

	"github.com/l3montree-dev/livefire-site/shared"
	"gopkg.in/gomail.v2"
)

type smtpMailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailSender builds the production mail sender. With the default
// config this talks to the Resend SMTP bridge, but any SMTP relay works.
func NewSMTPMailSender(config shared.Config) *smtpMailSender {
	return &smtpMailSender{
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword),
		from:   config.MailFrom,
	}
}

func (s *smtpMailSender) Send(ctx context.Context, mail shared.Mail) error {
	// gomail has no context support, at least bail out early when the
	// request is already gone
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()

	from := mail.From
	if from == "" {
		from = s.from
	}
	m.SetHeader("From", from)
	m.SetHeader("To", mail.To)
	if mail.ReplyTo != "" {
		m.SetHeader("Reply-To", mail.ReplyTo)
	}
	m.SetHeader("Subject", mail.Subject)

	switch {
	case mail.Text != "" && mail.HTML != "":
		m.SetBody("text/plain", mail.Text)
		m.AddAlternative("text/html", mail.HTML)
	case mail.HTML != "":
		m.SetBody("text/html", mail.HTML)
	default:
		m.SetBody("text/plain", mail.Text)
	}

	return s.dialer.DialAndSend(m)
}
