package models

// Activity event kinds published to the fowra.activity topic.
const (
	ActivityPlantCreated = "plant_created"
	ActivityDiarySaved   = "diary_saved"
)

// ActivityEvent is a best-effort notification about a student action.
// Publishing is optional and never affects the request outcome.
type ActivityEvent struct {
	EventID    string `json:"event_id"`
	UserID     int64  `json:"user_id"`
	Kind       string `json:"kind"`
	ObjectID   int64  `json:"object_id"`
	OccurredAt int64  `json:"occurred_at"`
}
