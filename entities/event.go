package entities

// Event kinds published to the registry feed.
const (
	EventUserRegistered = "user_registered"
	EventProjectCreated = "project_created"
	EventRingUploaded   = "ring_uploaded"
)

// RegistryEvent is a transient feed item describing registry activity.
// It is broadcast over the websocket feed and buffered in memory; it is
// never persisted.
type RegistryEvent struct {
	Kind     string `json:"kind"`
	Name     string `json:"name,omitempty"`
	Version  string `json:"version,omitempty"`
	Platform string `json:"platform,omitempty"`
	At       string `json:"at"`
}
