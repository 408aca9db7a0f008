package core

// EventKind identifies something that happened during a tick which the
// platform may want to react to (sound, persistence, logging).
type EventKind int

const (
	EventNone EventKind = iota
	EventBombSpawned
	EventBombExploded
	EventPlayerHit
	EventScoreTick
	EventMuteToggled
	EventSceneChanged
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "None"
	case EventBombSpawned:
		return "BombSpawned"
	case EventBombExploded:
		return "BombExploded"
	case EventPlayerHit:
		return "PlayerHit"
	case EventScoreTick:
		return "ScoreTick"
	case EventMuteToggled:
		return "MuteToggled"
	case EventSceneChanged:
		return "SceneChanged"
	default:
		return "Unknown"
	}
}

// Event is a single occurrence reported by a game or scene.
type Event struct {
	Kind  EventKind
	X, Y  int    // Screen position where relevant (explosions, hits)
	Value int    // Kind-specific payload (score, mute state as 0/1)
	Name  string // Kind-specific label (scene name)
}

// EventSink receives the events of every tick. Front ends forward them to
// the audio manager.
type EventSink interface {
	HandleEvents(events []Event)
}
