/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package policy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reviewCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "oversight_reviews_total",
			Help: "Total number of evaluation reviews performed",
		},
	)

	escalationCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "oversight_escalations_total",
			Help: "Total number of reviews escalated to human collaboration",
		},
	)

	escalationFailureCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "oversight_escalation_failures_total",
			Help: "Total number of escalation attempts that failed to open a session",
		},
	)
)
