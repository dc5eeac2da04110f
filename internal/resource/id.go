package resource

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ID uniquely identifies an instance of a resource operation, e.g. a single
// fetch request. Its only purpose is correlating log records.
type ID struct {
	id   uuid.UUID
	kind Kind
}

func NewID(k Kind) ID {
	return ID{
		id:   uuid.New(),
		kind: k,
	}
}

func (id ID) String() string {
	// The first uuid segment is ample for correlating log records.
	return fmt.Sprintf("%s-%s", id.kind, id.id.String()[:8])
}

func (id ID) LogValue() slog.Value {
	return slog.StringValue(id.String())
}
