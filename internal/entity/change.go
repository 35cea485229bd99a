package entity

import "encoding/json"

type ChangeAction string

const (
	ChangeCreated ChangeAction = "created"
	ChangeUpdated ChangeAction = "updated"
	ChangeDeleted ChangeAction = "deleted"
)

// Change is the notification queued for every successful mutation.
type Change struct {
	Action ChangeAction    `json:"action"`
	ID     string          `json:"id"`
	Entity json.RawMessage `json:"entity"`
}
