// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package sink carries the notification record to operators: either the
// structured log (default) or an SNS topic.
package sink
