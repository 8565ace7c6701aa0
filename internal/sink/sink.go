// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"
	"time"

	"github.com/credwatch/credwatch/internal/log"
)

// Record is the notification produced for one identity creation. It is
// ephemeral; nothing here persists it.
type Record struct {
	Identity   string    `json:"identity"`
	Email      string    `json:"email"`
	Credential string    `json:"credential"`
	Source     string    `json:"source,omitempty"`
	EventTime  time.Time `json:"eventTime,omitempty"`
}

// Sink receives the notification record. Emit is called at most once per
// invocation, and only after both lookups have succeeded.
type Sink interface {
	Emit(ctx context.Context, rec Record) error
}

// Log is a Sink that writes the record to the structured log. It is the
// default sink when no topic is configured.
type Log struct{}

// Emit implements Sink. It never fails.
func (Log) Emit(_ context.Context, rec Record) error {
	log.Infof("credentials provisioned: identity=%s email=%s credential=%s",
		rec.Identity, rec.Email, rec.Credential)
	return nil
}
