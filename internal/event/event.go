// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"errors"
	"time"

	"github.com/tidwall/gjson"

	"github.com/credwatch/credwatch/internal/log"
)

// Kind is the identity-creation event name this service reacts to. Filtering
// happens upstream in the event rule; the decoder only reports a mismatch at
// debug level.
const Kind = "CreateUser"

// Decode errors. ErrNoIdentity covers both a missing requestParameters block
// and an empty userName.
var (
	ErrInvalidJSON = errors.New("event is not valid JSON")
	ErrNoIdentity  = errors.New("event has no identity name")
)

// Event is a decoded identity-creation event. Identity is the only field the
// handler acts on; Name, Source and Time are carried for the notification
// record and logs.
type Event struct {
	Name     string
	Identity string
	Source   string
	Time     time.Time
}

// Decode extracts an Event from a raw JSON document. Two shapes are accepted:
// an EventBridge envelope with the CloudTrail record under "detail", and a
// bare CloudTrail record. The identity name is required; everything else is
// best-effort.
func Decode(raw []byte) (Event, error) {
	if !gjson.ValidBytes(raw) {
		return Event{}, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(raw)

	// Unwrap the EventBridge envelope if present.
	record := doc
	if detail := doc.Get("detail"); detail.IsObject() {
		record = detail
	}

	ev := Event{
		Name:     record.Get("eventName").String(),
		Identity: record.Get("requestParameters.userName").String(),
		Source:   record.Get("eventSource").String(),
	}
	if ev.Source == "" {
		ev.Source = doc.Get("source").String()
	}

	if ts := record.Get("eventTime").String(); ts != "" {
		ev.Time, _ = time.Parse(time.RFC3339, ts)
	} else if ts := doc.Get("time").String(); ts != "" {
		ev.Time, _ = time.Parse(time.RFC3339, ts)
	}

	if ev.Identity == "" {
		return Event{}, ErrNoIdentity
	}

	if ev.Name != "" && ev.Name != Kind {
		log.Debugf("unexpected eventName: name=%s identity=%s", ev.Name, ev.Identity)
	}

	return ev, nil
}
