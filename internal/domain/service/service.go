// Package service holds the business logic: the holiday service (CRUD, the
// activation decision procedure, the announcement phase tracker) and the
// announcement job scheduler. Services compute intents over persisted
// snapshots; delivery side effects happen outside and are reported back.
package service

import (
	"github.com/rs/zerolog"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
)

type Instance struct {
	Holiday   contract.HolidayService
	Scheduler contract.SchedulerService
}

func NewInstance(dm contract.DataManager, log zerolog.Logger) *Instance {
	return &Instance{
		Holiday:   newHolidayService(dm, log),
		Scheduler: newSchedulerService(dm, log),
	}
}
