package system

import (
	"github.com/lixenwraith/shuriken/engine"
	"github.com/lixenwraith/shuriken/event"
)

// AudioSystem consumes sound request events and plays audio
// Decouples game systems from the audio backend
type AudioSystem struct {
	player CuePlayer
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player CuePlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

// HandleEvent plays the requested cue
func (s *AudioSystem) HandleEvent(_ *engine.World, ev event.GameEvent) {
	if s.player == nil {
		return
	}
	if payload, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		s.player.PlayCue(payload.Cue)
	}
}
