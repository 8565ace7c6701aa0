// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package store defines the read-only collaborator interfaces the handler
// looks up identity metadata and the shared credential through, plus their
// AWS-backed implementations (SSM Parameter Store and Secrets Manager) and
// an in-memory Static store for dry runs.
package store
