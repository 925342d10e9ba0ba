package content

import (
	"strconv"

	"github.com/Zachkp/portfolio/internal/common"

	"github.com/google/uuid"
)

// IDGenerator produces record ids. Ids only need to be unique within one
// collection and are not a security boundary.
type IDGenerator interface {
	New() string
}

// TimestampIDGenerator returns the clock's unix milliseconds as a decimal
// string. Two creates in the same millisecond collide; the collection does not
// check for that.
type TimestampIDGenerator struct {
	Clock common.Clock
}

func (g TimestampIDGenerator) New() string {
	return strconv.FormatInt(g.Clock.Now().UnixMilli(), 10)
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }

// NewIDGenerator maps a configured scheme name to a generator.
func NewIDGenerator(scheme string, clock common.Clock) IDGenerator {
	if scheme == "uuid" {
		return UUIDGenerator{}
	}
	return TimestampIDGenerator{Clock: clock}
}
