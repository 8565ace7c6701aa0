// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package store

import (
	"context"
	"errors"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	smv2 "github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	smtypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSSM returns canned parameters by name.
type fakeSSM struct {
	params map[string]string
	err    error
	gotIn  *ssmv2.GetParameterInput
}

func (f *fakeSSM) GetParameter(_ context.Context, in *ssmv2.GetParameterInput, _ ...func(*ssmv2.Options)) (*ssmv2.GetParameterOutput, error) {
	f.gotIn = in
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.params[awsv2.ToString(in.Name)]
	if !ok {
		return nil, &ssmtypes.ParameterNotFound{}
	}
	return &ssmv2.GetParameterOutput{
		Parameter: &ssmtypes.Parameter{Value: awsv2.String(v)},
	}, nil
}

// fakeSecrets returns canned secret strings by id.
type fakeSecrets struct {
	secrets map[string]string
	err     error
}

func (f *fakeSecrets) GetSecretValue(_ context.Context, in *smv2.GetSecretValueInput, _ ...func(*smv2.Options)) (*smv2.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.secrets[awsv2.ToString(in.SecretId)]
	if !ok {
		return nil, &smtypes.ResourceNotFoundException{}
	}
	return &smv2.GetSecretValueOutput{SecretString: awsv2.String(v)}, nil
}

func TestParameterMetadataAttribute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		params    map[string]string
		err       error
		identity  string
		attribute string
		expected  string
		wantErr   error
	}{
		{
			name:      "found",
			params:    map[string]string{"/ec2-user-nicholas/email": "a@x.com"},
			identity:  "ec2-user-nicholas",
			attribute: "email",
			expected:  "a@x.com",
		},
		{
			name:      "not found",
			params:    map[string]string{},
			identity:  "ghost-user",
			attribute: "email",
			wantErr:   ErrNotFound,
		},
		{
			name:      "transport error",
			err:       errors.New("dial tcp: i/o timeout"),
			identity:  "ec2-user-nicholas",
			attribute: "email",
			wantErr:   errors.New("dial tcp: i/o timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSSM{params: tt.params, err: tt.err}
			s := NewParameterMetadata(fake)

			got, err := s.Attribute(ctx, tt.identity, tt.attribute)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				} else {
					assert.NotErrorIs(t, err, ErrNotFound)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestParameterMetadataName verifies the "/{identity}/{attribute}" naming
// scheme and that decryption is requested.
func TestParameterMetadataName(t *testing.T) {
	fake := &fakeSSM{params: map[string]string{"/ec2-user-nicholas/email": "a@x.com"}}
	s := NewParameterMetadata(fake)

	_, err := s.Attribute(context.Background(), "ec2-user-nicholas", "email")
	require.NoError(t, err)

	require.NotNil(t, fake.gotIn)
	assert.Equal(t, "/ec2-user-nicholas/email", awsv2.ToString(fake.gotIn.Name))
	assert.True(t, awsv2.ToBool(fake.gotIn.WithDecryption))
}

func TestSecretCredentialsCredential(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		secrets  map[string]string
		err      error
		secret   string
		expected string
		wantErr  error
	}{
		{
			name:     "found",
			secrets:  map[string]string{"temp-password": "Abc12345"},
			secret:   "temp-password",
			expected: "Abc12345",
		},
		{
			name:    "not found",
			secrets: map[string]string{},
			secret:  "temp-password",
			wantErr: ErrNotFound,
		},
		{
			name:    "transport error",
			err:     errors.New("dial tcp: i/o timeout"),
			secret:  "temp-password",
			wantErr: errors.New("dial tcp: i/o timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSecretCredentials(&fakeSecrets{secrets: tt.secrets, err: tt.err})

			got, err := s.Credential(ctx, tt.secret)
			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, ErrNotFound)
				} else {
					assert.NotErrorIs(t, err, ErrNotFound)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestSecretCredentialsBinaryOnly verifies that a secret with no string
// payload maps to ErrNotFound rather than returning an empty credential.
func TestSecretCredentialsBinaryOnly(t *testing.T) {
	api := &fakeSecretsRaw{out: &smv2.GetSecretValueOutput{}}
	s := NewSecretCredentials(api)

	_, err := s.Credential(context.Background(), "temp-password")
	assert.ErrorIs(t, err, ErrNotFound)
}

type fakeSecretsRaw struct {
	out *smv2.GetSecretValueOutput
}

func (f *fakeSecretsRaw) GetSecretValue(_ context.Context, _ *smv2.GetSecretValueInput, _ ...func(*smv2.Options)) (*smv2.GetSecretValueOutput, error) {
	return f.out, nil
}

func TestStatic(t *testing.T) {
	s := &Static{
		Attributes:  map[string]string{"ec2-user-nicholas/email": "a@x.com"},
		Credentials: map[string]string{"temp-password": "Abc12345"},
	}
	ctx := context.Background()

	v, err := s.Attribute(ctx, "ec2-user-nicholas", "email")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", v)

	_, err = s.Attribute(ctx, "ghost-user", "email")
	assert.ErrorIs(t, err, ErrNotFound)

	v, err = s.Credential(ctx, "temp-password")
	assert.NoError(t, err)
	assert.Equal(t, "Abc12345", v)

	_, err = s.Credential(ctx, "other")
	assert.ErrorIs(t, err, ErrNotFound)
}
