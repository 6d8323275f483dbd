package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

func TestInstance_WithTransaction_Commit(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Holiday().Upsert(&entity.Holiday{GuildID: "guild-1", Name: "Kids Day", Date: "05-05", Color: "#68855A"}); err != nil {
			return err
		}
		return tx.OptOut().Add("guild-1", "member-1")
	})
	require.NoError(t, err, "Failed to commit transaction")

	holidays, err := dm.Holiday().GetByGuild("guild-1")
	require.NoError(t, err)
	assert.Len(t, holidays, 1)

	optOuts, err := dm.OptOut().GetByGuild("guild-1")
	require.NoError(t, err)
	assert.Contains(t, optOuts, "member-1")
}

func TestInstance_WithTransaction_Rollback(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	boom := errors.New("boom")

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Holiday().Upsert(&entity.Holiday{GuildID: "guild-1", Name: "Kids Day", Date: "05-05", Color: "#68855A"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nothing from the failed transaction is visible
	holidays, err := dm.Holiday().GetByGuild("guild-1")
	require.NoError(t, err)
	assert.Empty(t, holidays)
}
