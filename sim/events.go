package sim

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hackolite/cv-minecraft-sub000/voxel"
)

// EventKind discriminates collision events by the other party.
type EventKind uint8

const (
	EventBlock EventKind = iota
	EventPlayer
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	if k == EventPlayer {
		return "player"
	}
	return "block"
}

// Event is a structured collision observation: both parties' bounding boxes
// and a wall-clock timestamp. Events are consumed by the logging
// collaborator and are never part of resolution correctness.
type Event struct {
	Kind EventKind
	Time time.Time

	EntityID  string
	OtherID   string
	EntityBox voxel.BBox
	OtherBox  voxel.BBox
	BlockPos  voxel.Pos

	// Collision is false for checks that found no contact. Sinks with the
	// collision-only filter drop those.
	Collision bool
}

// EventSink receives collision events from the resolver. Implementations
// must not block: they run inside the tick.
type EventSink interface {
	Push(ev Event)
}

// NopSink discards all events.
type NopSink struct{}

// Push implements EventSink.
func (NopSink) Push(Event) {}

// Filters is the event filter contract of the logging configuration.
type Filters struct {
	// Blocks enables entity-vs-block events.
	Blocks bool
	// Players enables entity-vs-entity events.
	Players bool
	// CollisionOnly drops check events that found no contact.
	CollisionOnly bool
}

// LogSink writes collision events to a logrus logger.
type LogSink struct {
	log     *logrus.Logger
	filters Filters
}

// NewLogSink creates an EventSink logging to lg with the filters passed.
func NewLogSink(lg *logrus.Logger, filters Filters) *LogSink {
	return &LogSink{log: lg, filters: filters}
}

// Push implements EventSink.
func (s *LogSink) Push(ev Event) {
	if ev.Kind == EventBlock && !s.filters.Blocks {
		return
	}
	if ev.Kind == EventPlayer && !s.filters.Players {
		return
	}
	if s.filters.CollisionOnly && !ev.Collision {
		return
	}

	fields := logrus.Fields{
		"kind":       ev.Kind.String(),
		"time":       ev.Time,
		"entity":     ev.EntityID,
		"entity_min": ev.EntityBox.Min(),
		"entity_max": ev.EntityBox.Max(),
		"collision":  ev.Collision,
	}
	if ev.Collision {
		fields["other_min"] = ev.OtherBox.Min()
		fields["other_max"] = ev.OtherBox.Max()
	}
	if ev.Kind == EventBlock && ev.Collision {
		fields["block"] = ev.BlockPos
	}
	if ev.OtherID != "" {
		fields["other"] = ev.OtherID
	}
	s.log.WithFields(fields).Debug("collision check")
}
