// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/l3montree-dev/livefire-site/dtos"
	"github.com/l3montree-dev/livefire-site/monitoring"
	"github.com/l3montree-dev/livefire-site/shared"
)

//go:embed templates/contact_email.html.tmpl
var contactEmailTemplate string

var contactTmpl = template.Must(template.New("contact_email").Parse(contactEmailTemplate))

// contentKeyContactEmail is where editors configure the inbox for contact
// form submissions.
const contentKeyContactEmail = "contact.formInfoEmail"

type contactService struct {
	contentReader shared.ContentReader
	mailSender    shared.MailSender
	fallbackEmail string
	from          string
}

func NewContactService(config shared.Config, contentReader shared.ContentReader, mailSender shared.MailSender) *contactService {
	return &contactService{
		contentReader: contentReader,
		mailSender:    mailSender,
		fallbackEmail: config.FallbackContactEmail,
		from:          config.MailFrom,
	}
}

// Submit forwards a contact form submission to the configured inbox. The
// recipient is editor-controlled through the site content, with a static
// fallback when the content does not name one.
func (s *contactService) Submit(ctx context.Context, req dtos.ContactRequest) error {
	to, ok := s.contentReader.Get(contentKeyContactEmail)
	if !ok {
		slog.Warn("no contact email configured in site content, using fallback", "fallback", s.fallbackEmail)
		to = s.fallbackEmail
	}

	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, req); err != nil {
		return fmt.Errorf("could not render contact email: %w", err)
	}

	err := s.mailSender.Send(ctx, shared.Mail{
		To:      to,
		From:    s.from,
		ReplyTo: req.Email,
		Subject: req.Subject,
		HTML:    body.String(),
	})
	if err != nil {
		monitoring.ContactEmailsFailed.Inc()
		return err
	}

	monitoring.ContactEmailsSent.Inc()
	return nil
}
