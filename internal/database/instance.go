package database

import (
	"context"
	"fmt"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
)

// instance implements the DataManager interface
type instance struct {
	db           *DB
	holidayRepo  contract.HolidayRepo
	statusRepo   contract.StatusRepo
	phaseRepo    contract.PhaseRepo
	optOutRepo   contract.OptOutRepo
	jobRepo      contract.JobRepo
	settingsRepo contract.SettingsRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.repoInstances()
	return i
}

func (i *instance) repoInstances() {
	i.holidayRepo = newHolidayRepo(i.db.conn)
	i.statusRepo = newStatusRepo(i.db.conn)
	i.phaseRepo = newPhaseRepo(i.db.conn)
	i.optOutRepo = newOptOutRepo(i.db.conn)
	i.jobRepo = newJobRepo(i.db.conn)
	i.settingsRepo = newSettingsRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances bound to a custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		holidayRepo:  newHolidayRepo(db),
		statusRepo:   newStatusRepo(db),
		phaseRepo:    newPhaseRepo(db),
		optOutRepo:   newOptOutRepo(db),
		jobRepo:      newJobRepo(db),
		settingsRepo: newSettingsRepo(db),
	}
}

func (i *instance) Holiday() contract.HolidayRepo   { return i.holidayRepo }
func (i *instance) Status() contract.StatusRepo     { return i.statusRepo }
func (i *instance) Phase() contract.PhaseRepo       { return i.phaseRepo }
func (i *instance) OptOut() contract.OptOutRepo     { return i.optOutRepo }
func (i *instance) Job() contract.JobRepo           { return i.jobRepo }
func (i *instance) Settings() contract.SettingsRepo { return i.settingsRepo }

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
