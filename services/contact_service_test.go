// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/l3montree-dev/livefire-site/dtos"
	"github.com/l3montree-dev/livefire-site/mocks"
	"github.com/l3montree-dev/livefire-site/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestContactSubmit(t *testing.T) {
	config := shared.Config{
		FallbackContactEmail: "class@contacts.livefireinstruction.com",
		MailFrom:             "LiveFire Instruction <class@contacts.livefireinstruction.com>",
	}
	req := dtos.ContactRequest{
		Name:    "Jane Shooter",
		Email:   "jane@example.com",
		Subject: "Private lessons",
		Message: "Do you offer private lessons?",
	}

	t.Run("should send to the editor-configured address", func(t *testing.T) {
		contentReader := mocks.NewContentReader(t)
		contentReader.On("Get", "contact.formInfoEmail").Return("frontdesk@livefireinstruction.com", true)

		mailSender := mocks.NewMailSender(t)
		mailSender.On("Send", mock.Anything, mock.MatchedBy(func(mail shared.Mail) bool {
			return mail.To == "frontdesk@livefireinstruction.com" && mail.ReplyTo == "jane@example.com"
		})).Return(nil)

		s := NewContactService(config, contentReader, mailSender)

		assert.NoError(t, s.Submit(context.Background(), req))
	})

	t.Run("should fall back to the default address when the content has none", func(t *testing.T) {
		contentReader := mocks.NewContentReader(t)
		contentReader.On("Get", "contact.formInfoEmail").Return("", false)

		mailSender := mocks.NewMailSender(t)
		mailSender.On("Send", mock.Anything, mock.MatchedBy(func(mail shared.Mail) bool {
			return mail.To == "class@contacts.livefireinstruction.com"
		})).Return(nil)

		s := NewContactService(config, contentReader, mailSender)

		assert.NoError(t, s.Submit(context.Background(), req))
	})

	t.Run("should surface delivery failures", func(t *testing.T) {
		contentReader := mocks.NewContentReader(t)
		contentReader.On("Get", "contact.formInfoEmail").Return("", false)

		mailSender := mocks.NewMailSender(t)
		mailSender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp timeout"))

		s := NewContactService(config, contentReader, mailSender)

		assert.Error(t, s.Submit(context.Background(), req))
	})

	t.Run("should include the message in the mail body", func(t *testing.T) {
		contentReader := mocks.NewContentReader(t)
		contentReader.On("Get", "contact.formInfoEmail").Return("", false)

		var sent shared.Mail
		mailSender := mocks.NewMailSender(t)
		mailSender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			sent = args.Get(1).(shared.Mail)
		}).Return(nil)

		s := NewContactService(config, contentReader, mailSender)

		assert.NoError(t, s.Submit(context.Background(), req))
		assert.Contains(t, sent.HTML, "Do you offer private lessons?")
		// the submitted subject is kept as-is, the sender is identified via Reply-To
		assert.Equal(t, "Private lessons", sent.Subject)
	})
}
