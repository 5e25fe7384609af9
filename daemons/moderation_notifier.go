// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package daemons

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/l3montree-dev/livefire-site/database"
	"github.com/l3montree-dev/livefire-site/shared"
)

// contentKeyModerationEmail is where editors configure the inbox that gets
// pinged when a new comment awaits moderation.
const contentKeyModerationEmail = "contact.moderationEmail"

// ModerationNotifier listens for freshly stored comments and mails the
// moderation inbox. Notifications are best effort: a missed one only delays
// moderation until somebody checks the pending queue.
type ModerationNotifier struct {
	broker            database.Broker
	commentRepository shared.CommentRepository
	contentReader     shared.ContentReader
	mailSender        shared.MailSender
	fallbackEmail     string

	cancel context.CancelFunc
	done   chan struct{}
}

func NewModerationNotifier(config shared.Config, broker database.Broker, commentRepository shared.CommentRepository, contentReader shared.ContentReader, mailSender shared.MailSender) *ModerationNotifier {
	return &ModerationNotifier{
		broker:            broker,
		commentRepository: commentRepository,
		contentReader:     contentReader,
		mailSender:        mailSender,
		fallbackEmail:     config.FallbackContactEmail,
		done:              make(chan struct{}),
	}
}

func (n *ModerationNotifier) Start() error {
	messages, err := n.broker.Subscribe(database.CommentCreated)
	if err != nil {
		return fmt.Errorf("could not subscribe to comment events: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel

	go n.run(ctx, messages)
	slog.Info("moderation notifier started")
	return nil
}

func (n *ModerationNotifier) Stop() {
	if n.cancel != nil {
		n.cancel()
	}
	<-n.done
}

func (n *ModerationNotifier) run(ctx context.Context, messages <-chan map[string]any) {
	defer close(n.done)
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-messages:
			if !ok {
				return
			}
			if err := n.notify(ctx, payload); err != nil {
				slog.Warn("could not send moderation notification", "err", err)
			}
		}
	}
}

func (n *ModerationNotifier) notify(ctx context.Context, payload map[string]any) error {
	postSlug, _ := payload["postSlug"].(string)

	pending, err := n.commentRepository.ListPending()
	if err != nil {
		return fmt.Errorf("could not count pending comments: %w", err)
	}

	to, ok := n.contentReader.Get(contentKeyModerationEmail)
	if !ok {
		to = n.fallbackEmail
	}

	return n.mailSender.Send(ctx, shared.Mail{
		To:      to,
		Subject: fmt.Sprintf("New comment awaiting moderation on %s", postSlug),
		Text:    fmt.Sprintf("A new comment was posted on %q. %d comments are waiting for review.", postSlug, len(pending)),
	})
}
