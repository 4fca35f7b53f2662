package events

import (
	"encoding/json"

	"mojopi/entities"
	"mojopi/ws"
)

// Feed fans registry events out to the recent-events buffer and the
// websocket subscribers. It satisfies the use cases' publisher interface.
type Feed struct {
	recent *Recent
	hub    *ws.Manager
}

func NewFeed(recent *Recent, hub *ws.Manager) *Feed {
	return &Feed{recent: recent, hub: hub}
}

func (f *Feed) Publish(event entities.RegistryEvent) {
	if f.recent != nil {
		f.recent.Add(event)
	}
	if f.hub != nil {
		if payload, err := json.Marshal(event); err == nil {
			f.hub.Broadcast(payload)
		}
	}
}
