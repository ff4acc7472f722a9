package viewer

import (
	"encoding/json"

	"lookout/internal/app/bus"
	"lookout/internal/app/events"
	"lookout/internal/config/logger"
)

// bridgeStream republishes monitor websocket events on the bus so the model reads a single channel.
// The returned func releases every subscription
func bridgeStream(stream events.Stream, b bus.Bus, log logger.Logger) func() {
	subs := []events.Subscription{
		stream.Subscribe(events.EventTaskStatusChanged, func(data json.RawMessage) {
			status, err := events.DecodeTaskStatus(data)
			if err != nil {
				log.Warn().Err(err).Msg("Failed to decode task status event")
				return
			}

			b.Publish(bus.Message{
				Type: bus.EventTaskStatusChanged,
				Data: bus.TaskStatusChanged{ID: status.ID, Running: status.Running},
			})
		}),
		stream.Subscribe(events.EventConnected, func(json.RawMessage) {
			b.Publish(bus.Message{Type: bus.EventStreamConnected})
		}),
		stream.Subscribe(events.EventDisconnected, func(json.RawMessage) {
			b.Publish(bus.Message{Type: bus.EventStreamDisconnected})
		}),
	}

	return func() {
		for _, sub := range subs {
			sub.Unsubscribe()
		}
	}
}
