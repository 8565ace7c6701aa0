// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/credwatch/credwatch/internal/config"
	"github.com/credwatch/credwatch/internal/event"
	"github.com/credwatch/credwatch/internal/handler"
	"github.com/credwatch/credwatch/internal/log"
	"github.com/credwatch/credwatch/internal/sink"
	"github.com/credwatch/credwatch/internal/store"
)

// invokeCommandBuilder wires the invoke command: replay one event document
// (file or stdin) through the handler, against real AWS stores or, with
// --dry-run, against in-memory ones.
func invokeCommandBuilder(_ context.Context, cfg config.Type) *cli.Command {
	var params []string
	if cfg.Source != "" {
		params = []string{"invoke", cfg.Source}
	}

	return &cli.Command{
		Name:      "invoke",
		Usage:     "replay an identity-creation event through the handler",
		ArgsUsage: "[file|-]",
		Flags: []cli.Flag{
			NewAttributeFlag(params...),
			NewSecretFlag(params...),
			NewTopicFlag(params...),
			NewRegionFlag(params...),
			NewProfileFlag(params...),
			&cli.IntFlag{
				Name:  "timeout",
				Usage: "per-lookup timeout in seconds",
				Value: int(handler.DefaultLookupTimeout / time.Second),
			},
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "use in-memory stores seeded from --email/--credential",
				HideDefault: true,
			},
			&cli.StringFlag{
				Name:  "email",
				Usage: "metadata value for --dry-run",
			},
			&cli.StringFlag{
				Name:  "credential",
				Usage: "credential value for --dry-run",
			},
		},
		Action: runInvoke,
	}
}

func runInvoke(ctx context.Context, cmd *cli.Command) error {
	raw, err := readEventDoc(cmd.Args().First())
	if err != nil {
		return err
	}

	h, err := buildInvokeHandler(ctx, cmd, raw)
	if err != nil {
		return err
	}

	res, err := h.Handle(ctx, raw)
	reportResult(cmd.Root().Writer, raw, res)
	return err
}

// readEventDoc reads the event JSON from the given path, or stdin when the
// path is empty or "-".
func readEventDoc(path string) ([]byte, error) {
	if path == "" || path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read event from stdin: %w", err)
		}
		return raw, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file: %w", err)
	}
	return raw, nil
}

func buildInvokeHandler(ctx context.Context, cmd *cli.Command, raw []byte) (*handler.Handler, error) {
	timeout := time.Duration(cmd.Int("timeout")) * time.Second

	if cmd.Bool("dry-run") {
		return dryRunHandler(cmd, raw, timeout), nil
	}

	return BuildHandler(ctx, Wiring{
		Region:        cmd.String("region"),
		Profile:       cmd.String("profile"),
		Attribute:     cmd.String("attribute"),
		Secret:        cmd.String("secret"),
		Topic:         cmd.String("topic"),
		LookupTimeout: timeout,
	})
}

// dryRunHandler seeds in-memory stores for the event's identity so the full
// pipeline runs without AWS access. Values left unset stay missing, which
// exercises the corresponding failure path on purpose.
func dryRunHandler(cmd *cli.Command, raw []byte, timeout time.Duration) *handler.Handler {
	st := &store.Static{
		Attributes:  map[string]string{},
		Credentials: map[string]string{},
	}

	if ev, err := event.Decode(raw); err == nil {
		if email := cmd.String("email"); email != "" {
			st.Attributes[ev.Identity+"/"+cmd.String("attribute")] = email
		}
	} else {
		log.Debugf("dry-run seed skipped: err=%v", err)
	}
	if cred := cmd.String("credential"); cred != "" {
		st.Credentials[cmd.String("secret")] = cred
	}

	return &handler.Handler{
		Metadata:      st,
		Credentials:   st,
		Sink:          sink.Log{},
		Attribute:     cmd.String("attribute"),
		Secret:        cmd.String("secret"),
		LookupTimeout: timeout,
	}
}

// reportResult prints a one-line summary of the invocation outcome.
func reportResult(w io.Writer, raw []byte, res handler.Result) {
	if w == nil {
		w = os.Stdout
	}

	age := ""
	if ev, err := event.Decode(raw); err == nil && !ev.Time.IsZero() {
		age = " (event " + humanize.Time(ev.Time) + ")"
	}

	switch res.Outcome {
	case handler.OutcomeNotified:
		fmt.Fprintf(w, "notified %s -> %s%s\n", res.Identity, res.Record.Email, age)
	default:
		fmt.Fprintf(w, "%s: %v%s\n", res.Outcome, res.Err, age)
	}
}
