// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package sink

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	snsv2 "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	err   error
	gotIn *snsv2.PublishInput
}

func (f *fakeSNS) Publish(_ context.Context, in *snsv2.PublishInput, _ ...func(*snsv2.Options)) (*snsv2.PublishOutput, error) {
	f.gotIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &snsv2.PublishOutput{MessageId: awsv2.String("m-1")}, nil
}

func TestLogEmit(t *testing.T) {
	rec := Record{Identity: "ec2-user-nicholas", Email: "a@x.com", Credential: "Abc12345"}
	assert.NoError(t, Log{}.Emit(context.Background(), rec))
}

func TestTopicEmit(t *testing.T) {
	fake := &fakeSNS{}
	s := NewTopic(fake, "arn:aws:sns:us-east-1:123456789012:creds")

	rec := Record{
		Identity:   "ec2-user-nicholas",
		Email:      "a@x.com",
		Credential: "Abc12345",
		Source:     "iam.amazonaws.com",
		EventTime:  time.Date(2024, 3, 1, 11, 59, 58, 0, time.UTC),
	}
	require.NoError(t, s.Emit(context.Background(), rec))

	require.NotNil(t, fake.gotIn)
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:creds", awsv2.ToString(fake.gotIn.TopicArn))
	assert.Contains(t, awsv2.ToString(fake.gotIn.Subject), "ec2-user-nicholas")

	var got Record
	require.NoError(t, json.Unmarshal([]byte(awsv2.ToString(fake.gotIn.Message)), &got))
	assert.Equal(t, rec, got)
}

func TestTopicEmitPublishError(t *testing.T) {
	s := NewTopic(&fakeSNS{err: errors.New("throttled")}, "arn:topic")

	err := s.Emit(context.Background(), Record{Identity: "ghost-user"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arn:topic")
}
