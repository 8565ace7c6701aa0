// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
)

// ErrNotFound reports that a metadata attribute or credential does not exist.
// Callers distinguish it from transport failures with errors.Is; both map to
// the same per-invocation recovery policy in the handler.
var ErrNotFound = errors.New("not found")

// MetadataStore resolves per-identity attributes. Implementations are
// read-only and must honor ctx cancellation.
type MetadataStore interface {
	Attribute(ctx context.Context, identity, attribute string) (string, error)
}

// CredentialStore resolves a shared credential by its stable logical name.
// Implementations are read-only and must honor ctx cancellation.
type CredentialStore interface {
	Credential(ctx context.Context, name string) (string, error)
}

// Static is an in-memory MetadataStore and CredentialStore. It backs dry-run
// invocations and tests; nothing about it is concurrent-write-safe because
// nothing writes to it after construction.
type Static struct {
	Attributes  map[string]string // keyed "{identity}/{attribute}"
	Credentials map[string]string
}

// Attribute implements MetadataStore.
func (s *Static) Attribute(_ context.Context, identity, attribute string) (string, error) {
	v, ok := s.Attributes[identity+"/"+attribute]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Credential implements CredentialStore.
func (s *Static) Credential(_ context.Context, name string) (string, error) {
	v, ok := s.Credentials[name]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}
