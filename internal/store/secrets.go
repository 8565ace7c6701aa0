// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	smv2 "github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/smithy-go"

	"github.com/credwatch/credwatch/internal/log"
)

// secretsAPI is the slice of the Secrets Manager client the credential store
// uses.
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *smv2.GetSecretValueInput, optFns ...func(*smv2.Options)) (*smv2.GetSecretValueOutput, error)
}

// SecretCredentials is a CredentialStore backed by Secrets Manager. The
// rotating shared credential is addressed by its stable secret id; rotation
// is external, so every read returns whatever the current version holds.
type SecretCredentials struct {
	api secretsAPI
}

// NewSecretCredentials wraps a Secrets Manager client (or a test double
// satisfying the same GetSecretValue signature).
func NewSecretCredentials(api secretsAPI) *SecretCredentials {
	return &SecretCredentials{api: api}
}

// Credential implements CredentialStore. A missing secret maps to
// ErrNotFound; any other SDK failure is wrapped and returned as-is.
func (s *SecretCredentials) Credential(ctx context.Context, name string) (string, error) {
	out, err := s.api.GetSecretValue(ctx, &smv2.GetSecretValueInput{
		SecretId: awsv2.String(name),
	})
	if err != nil {
		var nf *smtypes.ResourceNotFoundException
		if errors.As(err, &nf) {
			return "", fmt.Errorf("secret %s: %w", name, ErrNotFound)
		}
		var ae smithy.APIError
		if errors.As(err, &ae) {
			log.Debugf("secretsmanager get failed: name=%s code=%s", name, ae.ErrorCode())
		}
		return "", fmt.Errorf("get secret %s: %w", name, err)
	}

	if out.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value: %w", name, ErrNotFound)
	}

	return *out.SecretString, nil
}
