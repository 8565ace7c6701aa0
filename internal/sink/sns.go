// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package sink

import (
	"context"
	"encoding/json"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	snsv2 "github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/credwatch/credwatch/internal/log"
)

// snsAPI is the slice of the SNS client the topic sink uses.
type snsAPI interface {
	Publish(ctx context.Context, params *snsv2.PublishInput, optFns ...func(*snsv2.Options)) (*snsv2.PublishOutput, error)
}

// Topic is a Sink that publishes the record as a JSON message to an SNS
// topic. Operators subscribe email/chat endpoints to the topic out of band.
type Topic struct {
	api      snsAPI
	topicARN string
}

// NewTopic wraps an SNS client (or a test double satisfying the same Publish
// signature) and the target topic ARN.
func NewTopic(api snsAPI, topicARN string) *Topic {
	return &Topic{api: api, topicARN: topicARN}
}

// Emit implements Sink.
func (t *Topic) Emit(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	out, err := t.api.Publish(ctx, &snsv2.PublishInput{
		TopicArn: awsv2.String(t.topicARN),
		Subject:  awsv2.String("Credentials provisioned for " + rec.Identity),
		Message:  awsv2.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", t.topicARN, err)
	}

	log.Debugf("published: topic=%s messageId=%s", t.topicARN, awsv2.ToString(out.MessageId))
	return nil
}
