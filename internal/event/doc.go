// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package event decodes identity-creation events from their raw JSON wire
// form. It accepts both the EventBridge envelope and a bare CloudTrail
// record so that documents captured from either side of the rule can be
// replayed locally.
package event
