package audit

import (
	"time"

	"github.com/google/uuid"

	id "vigia/pkg/domain"
)

// Action names the panel operation an event records. The values match the
// coordinator_panel_logs rows produced by the panel, so downstream consumers
// keep working unchanged.
type Action string

const (
	ActionRecalcScore        Action = "recalc_score"
	ActionUpdateAvailability Action = "update_availability"
	ActionUpdateGeo          Action = "update_geo"
	ActionUpdateSkill        Action = "update_skill"
)

// Event is emitted from domain logic to capture key coordinator actions. Keep
// it transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID            uuid.UUID
	CoordinatorID id.CoordinatorID
	Action        Action
	Details       map[string]any
	RequestID     string
	Timestamp     time.Time
}
