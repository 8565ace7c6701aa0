// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/smithy-go"

	"github.com/credwatch/credwatch/internal/log"
)

// ssmAPI is the slice of the SSM client the metadata store uses.
type ssmAPI interface {
	GetParameter(ctx context.Context, params *ssmv2.GetParameterInput, optFns ...func(*ssmv2.Options)) (*ssmv2.GetParameterOutput, error)
}

// ParameterMetadata is a MetadataStore backed by SSM Parameter Store.
// Attributes live at "/{identity}/{attribute}"; SecureString parameters are
// decrypted on read.
type ParameterMetadata struct {
	api ssmAPI
}

// NewParameterMetadata wraps an SSM client (or a test double satisfying the
// same GetParameter signature).
func NewParameterMetadata(api ssmAPI) *ParameterMetadata {
	return &ParameterMetadata{api: api}
}

// Attribute implements MetadataStore. A missing parameter maps to
// ErrNotFound; any other SDK failure is wrapped and returned as-is.
func (s *ParameterMetadata) Attribute(ctx context.Context, identity, attribute string) (string, error) {
	name := "/" + identity + "/" + attribute

	out, err := s.api.GetParameter(ctx, &ssmv2.GetParameterInput{
		Name:           awsv2.String(name),
		WithDecryption: awsv2.Bool(true),
	})
	if err != nil {
		var nf *ssmtypes.ParameterNotFound
		if errors.As(err, &nf) {
			return "", fmt.Errorf("parameter %s: %w", name, ErrNotFound)
		}
		var ae smithy.APIError
		if errors.As(err, &ae) {
			log.Debugf("ssm get failed: name=%s code=%s", name, ae.ErrorCode())
		}
		return "", fmt.Errorf("get parameter %s: %w", name, err)
	}

	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value: %w", name, ErrNotFound)
	}

	return *out.Parameter.Value, nil
}
