// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	smv2 "github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	snsv2 "github.com/aws/aws-sdk-go-v2/service/sns"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/credwatch/credwatch/internal/log"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
	retryer func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
// Inside a Lambda runtime the execution-role chain applies with no options.
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the ambient
// AWS setup (AWS_PROFILE, shared config, env, IMDS, execution role). Options
// can override profile, region, and retryer without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("opts applied: profile=%s, region=%s", o.profile, o.region)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	log.Debugf("loadOpts built: len=%d", len(loadOpts))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	log.Debugf("config loaded")
	return cfg, nil
}

// NewSSM constructs a v2 SSM client from the provided config. Additional
// service options can be supplied via optFns.
func NewSSM(cfg awsv2.Config, optFns ...func(*ssmv2.Options)) *ssmv2.Client {
	client := ssmv2.NewFromConfig(cfg, optFns...)
	log.Debugf("ssm client created")
	return client
}

// NewSecretsManager constructs a v2 Secrets Manager client from the provided
// config.
func NewSecretsManager(cfg awsv2.Config, optFns ...func(*smv2.Options)) *smv2.Client {
	client := smv2.NewFromConfig(cfg, optFns...)
	log.Debugf("secretsmanager client created")
	return client
}

// NewSNS constructs a v2 SNS client from the provided config.
func NewSNS(cfg awsv2.Config, optFns ...func(*snsv2.Options)) *snsv2.Client {
	client := snsv2.NewFromConfig(cfg, optFns...)
	log.Debugf("sns client created")
	return client
}

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}
