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

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/livefire-site/monitoring"
)

type postgreSQLMessage struct {
	ID        string         `json:"id"`
	Channel   Channel        `json:"topic"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

type listeningConnection struct {
	conn        *pgxpool.Conn
	cancel      context.CancelFunc
	subscribers []chan map[string]any
}

// PostgreSQLBroker implements the Broker interface using PostgreSQL LISTEN/NOTIFY
type PostgreSQLBroker struct {
	db           *pgxpool.Pool
	subscribers  map[Channel]*listeningConnection
	subscribeMux sync.Mutex
	wg           sync.WaitGroup
	ID           string // Unique identifier for the broker instance
}

// NewPostgreSQLBroker creates a new PostgreSQL broker
func NewPostgreSQLBroker(db *pgxpool.Pool) (*PostgreSQLBroker, error) {
	return &PostgreSQLBroker{
		db:          db,
		subscribers: make(map[Channel]*listeningConnection),
		ID:          uuid.New().String(),
	}, nil
}

// BrokerFactory builds the process-wide broker from the shared pgx pool.
func BrokerFactory(pool *pgxpool.Pool) (Broker, error) {
	return NewPostgreSQLBroker(pool)
}

// Publish implements the Broker interface
func (b *PostgreSQLBroker) Publish(ctx context.Context, message Message) error {
	envelope := postgreSQLMessage{
		ID:        uuid.New().String(),
		Channel:   message.GetChannel(),
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("could not marshal pubsub message: %w", err)
	}

	_, err = b.db.Exec(ctx, "SELECT pg_notify($1, $2)", string(message.GetChannel()), string(payload))
	if err != nil {
		return fmt.Errorf("could not publish on channel %s: %w", message.GetChannel(), err)
	}
	return nil
}

// Subscribe implements the Broker interface. The first subscription to a
// channel acquires a dedicated connection and starts the LISTEN loop; later
// subscriptions share it.
func (b *PostgreSQLBroker) Subscribe(topic Channel) (<-chan map[string]any, error) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	ch := make(chan map[string]any, 16)

	if existing, ok := b.subscribers[topic]; ok {
		existing.subscribers = append(existing.subscribers, ch)
		return ch, nil
	}

	ctx, cancel := context.WithCancel(context.Background())

	conn, err := b.db.Acquire(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("could not acquire listen connection: %w", err)
	}

	if _, err := conn.Exec(ctx, fmt.Sprintf("LISTEN %s", topic)); err != nil {
		conn.Release()
		cancel()
		return nil, fmt.Errorf("could not listen on channel %s: %w", topic, err)
	}

	listening := &listeningConnection{
		conn:        conn,
		cancel:      cancel,
		subscribers: []chan map[string]any{ch},
	}
	b.subscribers[topic] = listening

	b.wg.Add(1)
	go b.listenLoop(ctx, topic, listening)

	return ch, nil
}

func (b *PostgreSQLBroker) listenLoop(ctx context.Context, topic Channel, listening *listeningConnection) {
	defer b.wg.Done()
	defer listening.conn.Release()

	for {
		notification, err := listening.conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			monitoring.Alert("pubsub listen loop failed", err)
			return
		}

		var envelope postgreSQLMessage
		if err := json.Unmarshal([]byte(notification.Payload), &envelope); err != nil {
			slog.Error("could not unmarshal pubsub message", "channel", topic, "err", err)
			continue
		}

		b.subscribeMux.Lock()
		subscribers := append([]chan map[string]any(nil), listening.subscribers...)
		b.subscribeMux.Unlock()

		for _, subscriber := range subscribers {
			select {
			case subscriber <- envelope.Payload:
			default:
				// subscriber is not keeping up. Dropping is fine, every
				// consumer treats messages as hints and re-reads the store.
				slog.Warn("dropping pubsub message for slow subscriber", "channel", topic)
			}
		}
	}
}

// Close stops all listen loops and waits for them to finish.
func (b *PostgreSQLBroker) Close() {
	b.subscribeMux.Lock()
	for _, listening := range b.subscribers {
		listening.cancel()
	}
	b.subscribeMux.Unlock()
	b.wg.Wait()
}
