package event

// EventType represents the type of game event
type EventType int

const (
	// EventSoundRequest asks the audio layer to play a cue
	// Trigger: LaunchSystem on a successful launch
	// Consumer: AudioSystem | Payload: *SoundRequestPayload
	EventSoundRequest EventType = iota

	// EventProjectileLaunched signals a new projectile in flight
	// Trigger: LaunchSystem | Payload: *ProjectileLaunchedPayload
	EventProjectileLaunched

	// EventMonsterSpawned signals a new monster entering from the right edge
	// Trigger: SpawnSystem | Payload: *MonsterSpawnedPayload
	EventMonsterSpawned

	// EventMonsterDestroyed signals a resolved monster/projectile contact
	// Trigger: ContactSystem | Payload: *MonsterDestroyedPayload
	EventMonsterDestroyed

	// EventEncounterWon signals the kill counter passed the win threshold
	// Trigger: ContactSystem, at most once per encounter
	// Consumer: Encounter | Payload: *OutcomePayload
	EventEncounterWon

	// EventEncounterLost signals a monster reached the left edge
	// Trigger: SpawnSystem arrival continuation, at most once per encounter
	// Consumer: Encounter | Payload: *OutcomePayload
	EventEncounterLost
)

var eventTypeNames = map[EventType]string{
	EventSoundRequest:       "SoundRequest",
	EventProjectileLaunched: "ProjectileLaunched",
	EventMonsterSpawned:     "MonsterSpawned",
	EventMonsterDestroyed:   "MonsterDestroyed",
	EventEncounterWon:       "EncounterWon",
	EventEncounterLost:      "EncounterLost",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
