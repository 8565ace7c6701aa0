// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command builds the CLI surface and the shared handler wiring. The
// only subcommand is invoke, which replays a captured event document through
// the same pipeline the Lambda entrypoint runs.
package command
