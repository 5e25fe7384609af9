// Copyright 2025 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var CommentSubmissionsAccepted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "livefire_comment_submissions_accepted_total",
	Help: "Number of comment submissions stored as moderation-pending",
})

var CommentSubmissionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "livefire_comment_submissions_rejected_total",
	Help: "Number of rejected comment submissions by pipeline stage",
}, []string{"reason"})

var ContactEmailsSent = promauto.NewCounter(prometheus.CounterOpts{
	Name: "livefire_contact_emails_sent_total",
	Help: "Number of contact form emails handed to the SMTP relay",
})

var ContactEmailsFailed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "livefire_contact_emails_failed_total",
	Help: "Number of contact form emails that could not be delivered",
})

var ScheduleProxyErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "livefire_schedule_proxy_errors_total",
	Help: "Number of failed upstream live-schedule fetches",
})
