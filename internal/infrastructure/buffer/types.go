package buffer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Item is an audit event that could not be written to users_log and is
// waiting to be retried.
type Item struct {
	ID        string          `json:"id"`
	UserID    int64           `json:"userid"`
	Action    string          `json:"action"`
	Data      json.RawMessage `json:"data"`
	Retries   int             `json:"retries"`
	Timestamp time.Time       `json:"timestamp"`

	bucketKey []byte
}

func (i *Item) normalize() {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Timestamp.IsZero() {
		i.Timestamp = time.Now()
	}
}
