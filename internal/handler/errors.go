// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package handler

import "fmt"

// MalformedEventError reports an input event missing a required field. It is
// the only error Handle surfaces to the invoking runtime.
type MalformedEventError struct {
	Err error
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event: %v", e.Err)
}

func (e *MalformedEventError) Unwrap() error { return e.Err }

// MetadataLookupError reports a failed or empty metadata lookup. Recovered
// locally; never propagated to the runtime.
type MetadataLookupError struct {
	Identity  string
	Attribute string
	Err       error
}

func (e *MetadataLookupError) Error() string {
	return fmt.Sprintf("metadata lookup %s/%s: %v", e.Identity, e.Attribute, e.Err)
}

func (e *MetadataLookupError) Unwrap() error { return e.Err }

// CredentialLookupError reports a failed or empty credential lookup.
// Recovered locally; never propagated to the runtime.
type CredentialLookupError struct {
	Name string
	Err  error
}

func (e *CredentialLookupError) Error() string {
	return fmt.Sprintf("credential lookup %s: %v", e.Name, e.Err)
}

func (e *CredentialLookupError) Unwrap() error { return e.Err }

// SinkEmissionError reports that the notification could not be delivered
// after both lookups succeeded. Logged, never retried within the invocation.
type SinkEmissionError struct {
	Identity string
	Err      error
}

func (e *SinkEmissionError) Error() string {
	return fmt.Sprintf("emit notification for %s: %v", e.Identity, e.Err)
}

func (e *SinkEmissionError) Unwrap() error { return e.Err }
