package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// PushMessage is the envelope Pub/Sub POSTs to push subscriptions.
// The local publisher produces the same shape so the worker handles both.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeStoreChanged extracts the store change event carried by a push message
func (m *PushMessage) DecodeStoreChanged() (*service.StoreChangedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.StoreChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal store changed event")
	}

	if event.RequestID == "" {
		event.RequestID = m.Message.Attributes[attrRequestID]
	}

	return &event, nil
}

const (
	attrStoreID   = "store_id"
	attrOwnerID   = "owner_id"
	attrAction    = "action"
	attrRequestID = "request_id"
)

// eventAttributes builds message attributes used for filtering and tracing
func eventAttributes(event *service.StoreChangedEvent) map[string]string {
	attributes := map[string]string{
		attrStoreID: event.StoreID,
		attrAction:  event.Action,
	}
	if event.OwnerID != "" {
		attributes[attrOwnerID] = event.OwnerID
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return attributes
}
