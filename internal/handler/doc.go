// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package handler is the notification core: one invocation decodes an
// identity-creation event, resolves the identity's notification address and
// the shared temporary credential, and emits a single notification record.
//
// Failure policy per invocation: a malformed event is surfaced to the
// runtime; a failed metadata lookup, credential lookup, or sink emission is
// logged and swallowed. No retries happen here; at-least-once delivery (and
// therefore duplicate invocations) is the event source's concern, and the
// handler is idempotent under it.
package handler
