// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	awsx "github.com/credwatch/credwatch/internal/aws"
	"github.com/credwatch/credwatch/internal/handler"
	"github.com/credwatch/credwatch/internal/sink"
	"github.com/credwatch/credwatch/internal/store"
)

// Wiring collects everything needed to assemble a live handler.
type Wiring struct {
	Region        string
	Profile       string
	Attribute     string
	Secret        string
	Topic         string
	LookupTimeout time.Duration
}

// BuildHandler assembles a handler backed by real AWS stores: SSM Parameter
// Store for metadata, Secrets Manager for the shared credential, and either
// an SNS topic sink or the log sink. It is shared by the Lambda entrypoint
// and the invoke command.
func BuildHandler(ctx context.Context, w Wiring) (*handler.Handler, error) {
	var cfgOpts []awsx.Option
	if w.Region != "" {
		cfgOpts = append(cfgOpts, awsx.WithRegion(w.Region))
	}
	if w.Profile != "" {
		cfgOpts = append(cfgOpts, awsx.WithProfile(w.Profile))
	}

	cfg, err := awsx.LoadAWSConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var emitter sink.Sink = sink.Log{}
	if w.Topic != "" {
		emitter = sink.NewTopic(awsx.NewSNS(cfg), w.Topic)
	}

	return &handler.Handler{
		Metadata:      store.NewParameterMetadata(awsx.NewSSM(cfg)),
		Credentials:   store.NewSecretCredentials(awsx.NewSecretsManager(cfg)),
		Sink:          emitter,
		Attribute:     w.Attribute,
		Secret:        w.Secret,
		LookupTimeout: w.LookupTimeout,
	}, nil
}
