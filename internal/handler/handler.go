// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"time"

	"github.com/credwatch/credwatch/internal/event"
	"github.com/credwatch/credwatch/internal/log"
	"github.com/credwatch/credwatch/internal/sink"
	"github.com/credwatch/credwatch/internal/store"
)

// Defaults for the lookup keys and the per-lookup time bound. All three are
// overridable via config or flags.
const (
	DefaultAttribute     = "email"
	DefaultSecret        = "temp-password"
	DefaultLookupTimeout = 2 * time.Second
)

// Outcome classifies one invocation for logs and the invoke command.
type Outcome string

const (
	OutcomeNotified          Outcome = "notified"
	OutcomeMalformedEvent    Outcome = "malformed-event"
	OutcomeMetadataMissing   Outcome = "metadata-missing"
	OutcomeCredentialMissing Outcome = "credential-missing"
	OutcomeSinkFailed        Outcome = "sink-failed"
)

// Result is what one invocation produced. Record is set only on
// OutcomeNotified; Err carries the typed error for every other outcome.
type Result struct {
	Outcome  Outcome
	Identity string
	Record   *sink.Record
	Err      error
}

// Handler reacts to identity-creation events: decode, resolve the identity's
// notification address and the shared credential, emit one record. It holds
// no mutable state, so one value serves any number of concurrent
// invocations, including duplicate deliveries of the same event.
type Handler struct {
	Metadata    store.MetadataStore
	Credentials store.CredentialStore
	Sink        sink.Sink

	// Attribute is the metadata leaf looked up under /{identity}/.
	Attribute string
	// Secret is the credential store's logical name for the shared secret.
	Secret string
	// LookupTimeout bounds each of the two store lookups.
	LookupTimeout time.Duration
}

// Handle runs one invocation. The returned error is non-nil only for a
// malformed event; lookup and emission failures are recovered locally (the
// Result records them) so a bad store state never triggers runtime-level
// redelivery. Nothing is emitted unless both lookups succeed.
func (h *Handler) Handle(ctx context.Context, raw []byte) (Result, error) {
	ev, err := event.Decode(raw)
	if err != nil {
		werr := &MalformedEventError{Err: err}
		log.Errorf("dropping event: err=%v", werr)
		return Result{Outcome: OutcomeMalformedEvent, Err: werr}, werr
	}

	log.Debugf("event decoded: identity=%s source=%s", ev.Identity, ev.Source)

	attribute := h.Attribute
	if attribute == "" {
		attribute = DefaultAttribute
	}
	secret := h.Secret
	if secret == "" {
		secret = DefaultSecret
	}

	email, err := h.lookup(ctx, func(ctx context.Context) (string, error) {
		return h.Metadata.Attribute(ctx, ev.Identity, attribute)
	})
	if err != nil {
		werr := &MetadataLookupError{Identity: ev.Identity, Attribute: attribute, Err: err}
		log.WithError(werr).Errorf("no notification for %s", ev.Identity)
		return Result{Outcome: OutcomeMetadataMissing, Identity: ev.Identity, Err: werr}, nil
	}

	credential, err := h.lookup(ctx, func(ctx context.Context) (string, error) {
		return h.Credentials.Credential(ctx, secret)
	})
	if err != nil {
		werr := &CredentialLookupError{Name: secret, Err: err}
		log.WithError(werr).Errorf("no notification for %s", ev.Identity)
		return Result{Outcome: OutcomeCredentialMissing, Identity: ev.Identity, Err: werr}, nil
	}

	rec := sink.Record{
		Identity:   ev.Identity,
		Email:      email,
		Credential: credential,
		Source:     ev.Source,
		EventTime:  ev.Time,
	}

	if err := h.Sink.Emit(ctx, rec); err != nil {
		werr := &SinkEmissionError{Identity: ev.Identity, Err: err}
		log.WithError(werr).Errorf("notification lost for %s", ev.Identity)
		return Result{Outcome: OutcomeSinkFailed, Identity: ev.Identity, Err: werr}, nil
	}

	return Result{Outcome: OutcomeNotified, Identity: ev.Identity, Record: &rec}, nil
}

// lookup runs one store read under the configured time bound.
func (h *Handler) lookup(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	timeout := h.LookupTimeout
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(ctx)
}
