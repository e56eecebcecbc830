package customer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	IDStrategyTimestamp = "timestamp"
	IDStrategyUUID      = "uuid"
)

// IDGenerator assigns ids to newly registered customers.
type IDGenerator interface {
	NewID() string
}

// TimestampIDs issues the current time in milliseconds as a decimal string.
// Two registrations in the same millisecond get the same id.
type TimestampIDs struct {
	Now func() time.Time
}

func (g TimestampIDs) NewID() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return strconv.FormatInt(now().UnixMilli(), 10)
}

// UUIDIDs issues random version 4 UUIDs.
type UUIDIDs struct{}

func (UUIDIDs) NewID() string { return uuid.NewString() }

// NewIDGenerator maps a configured strategy name to a generator.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", IDStrategyTimestamp:
		return TimestampIDs{}, nil
	case IDStrategyUUID:
		return UUIDIDs{}, nil
	}
	return nil, fmt.Errorf("unknown id strategy %q", strategy)
}
