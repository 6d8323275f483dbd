package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/contract"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

const testGuildID = "guild-1"

func defaultTestSettings() *entity.GuildSettings {
	return &entity.GuildSettings{
		GuildID:          testGuildID,
		AnnounceEnabled:  true,
		AnnounceChannel:  "chan-1",
		AnnounceLeadDays: 7,
		Version:          3,
	}
}

func Test_holidayService_AddHoliday(t *testing.T) {
	tests := []struct {
		name      string
		holiday   entity.Holiday
		buildMock func(m allMocks)
		wantErr   error
	}{
		{
			name:    "Should add a valid holiday",
			holiday: entity.Holiday{Name: "Kids Day", Date: "05-05", Color: "#68855A"},
			buildMock: func(m allMocks) {
				m.mockHolidayRepo.EXPECT().
					GetByGuild(testGuildID).
					Return(nil, nil).Times(1)
				m.mockHolidayRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(h *entity.Holiday) error {
						require.Equal(t, testGuildID, h.GuildID)
						require.Equal(t, "Kids Day", h.Name)
						return nil
					}).Times(1)
			},
		},
		{
			name:    "Should reject a duplicate name regardless of case",
			holiday: entity.Holiday{Name: "kids day", Date: "05-05", Color: "#68855A"},
			buildMock: func(m allMocks) {
				m.mockHolidayRepo.EXPECT().
					GetByGuild(testGuildID).
					Return([]entity.Holiday{{Name: "Kids Day", Date: "05-05", Color: "#68855A"}}, nil).
					Times(1)
			},
			wantErr: domain.ErrDuplicateName,
		},
		{
			name:    "Should reject an invalid color before touching storage",
			holiday: entity.Holiday{Name: "Kids Day", Date: "05-05", Color: "68855A"},
		},
		{
			name:    "Should reject an invalid date before touching storage",
			holiday: entity.Holiday{Name: "Kids Day", Date: "02-30", Color: "#68855A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()
			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			svc := newHolidayService(m.mockDataManager, zerolog.Nop())
			err := svc.AddHoliday(context.Background(), testGuildID, tt.holiday)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.buildMock == nil {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_holidayService_EditHoliday(t *testing.T) {
	existing := entity.Holiday{
		ID:      7,
		GuildID: testGuildID,
		Name:    "Kids Day",
		Date:    "05-05",
		Color:   "#68855A",
		Banner:  "https://example.com/banner.png",
	}

	t.Run("Should keep current values for empty update fields", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockHolidayRepo.EXPECT().
			GetByGuild(testGuildID).
			Return([]entity.Holiday{existing}, nil).Times(1)
		m.mockHolidayRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(h *entity.Holiday) error {
				require.Equal(t, int64(7), h.ID)
				require.Equal(t, "Kids Day", h.Name)
				require.Equal(t, "05-05", h.Date)
				require.Equal(t, "#FFCC00", h.Color)
				require.Equal(t, existing.Banner, h.Banner)
				return nil
			}).Times(1)

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		err := svc.EditHoliday(context.Background(), testGuildID, "kids day", entity.Holiday{Color: "#FFCC00"})
		require.NoError(t, err)
	})

	t.Run("Should fail for an unknown holiday", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockHolidayRepo.EXPECT().
			GetByGuild(testGuildID).
			Return(nil, nil).Times(1)

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		err := svc.EditHoliday(context.Background(), testGuildID, "Easter", entity.Holiday{Color: "#FFCC00"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func Test_holidayService_RemoveHoliday(t *testing.T) {
	t.Run("Should remove definition, status and phase history together", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockHolidayRepo.EXPECT().
			GetByGuild(testGuildID).
			Return([]entity.Holiday{{Name: "Kids Day", Date: "05-05", Color: "#68855A"}}, nil).
			Times(1)
		m.mockDataManager.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(dm contract.DataManager) error) error {
				return fn(m.mockDataManager)
			}).Times(1)
		m.mockHolidayRepo.EXPECT().Remove(testGuildID, "Kids Day").Return(nil).Times(1)
		m.mockStatusRepo.EXPECT().Remove(testGuildID, "Kids Day").Return(nil).Times(1)
		m.mockPhaseRepo.EXPECT().ClearHoliday(testGuildID, "Kids Day").Return(nil).Times(1)

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		err := svc.RemoveHoliday(context.Background(), testGuildID, "kids day")
		require.NoError(t, err)
	})

	t.Run("Should fail for an unknown holiday", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockHolidayRepo.EXPECT().
			GetByGuild(testGuildID).
			Return(nil, nil).Times(1)

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		err := svc.RemoveHoliday(context.Background(), testGuildID, "Easter")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

type checkSnapshot struct {
	settings *entity.GuildSettings
	holidays []entity.Holiday
	statuses map[string]entity.HolidayStatus
	records  []entity.PhaseRecord
}

func expectCheckSnapshot(m allMocks, snap checkSnapshot) {
	m.mockSettingsRepo.EXPECT().Get(testGuildID).Return(snap.settings, nil).Times(1)
	m.mockHolidayRepo.EXPECT().GetByGuild(testGuildID).Return(snap.holidays, nil).Times(1)
	m.mockStatusRepo.EXPECT().GetByGuild(testGuildID).Return(snap.statuses, nil).Times(1)
	m.mockPhaseRepo.EXPECT().GetByGuild(testGuildID).Return(snap.records, nil).Times(1)
}

func Test_holidayService_CheckHolidays(t *testing.T) {
	kidsDay := entity.Holiday{GuildID: testGuildID, Name: "Kids Day", Date: "05-05", Color: "#FFCC00"}

	tests := []struct {
		name     string
		asOf     time.Time
		snap     checkSnapshot
		validate func(t *testing.T, eval *entity.Evaluation)
	}{
		{
			name: "Should activate and announce start on the day itself",
			asOf: time.Date(2024, time.May, 5, 9, 0, 0, 0, time.UTC),
			snap: checkSnapshot{
				settings: defaultTestSettings(),
				holidays: []entity.Holiday{kidsDay},
			},
			validate: func(t *testing.T, eval *entity.Evaluation) {
				require.Len(t, eval.Changes, 1)
				change := eval.Changes[0]
				assert.True(t, change.BecameActive)
				assert.Equal(t, 0, change.DaysUntil)
				assert.Equal(t, 2024, change.OccurrenceYear)
				assert.Equal(t, "Kids Day 05-05", change.RoleName)

				require.Len(t, eval.DuePhases, 1)
				phase := eval.DuePhases[0]
				assert.Equal(t, domain.PhaseStart, phase.Phase)
				assert.Equal(t, 2024, phase.OccurrenceYear)
				assert.Equal(t, "chan-1", phase.ChannelID)
				assert.Contains(t, phase.Message, "Happy Kids Day!")
			},
		},
		{
			name: "Should announce the before phase inside the lead window without a role change",
			asOf: time.Date(2024, time.May, 2, 9, 0, 0, 0, time.UTC),
			snap: checkSnapshot{
				settings: defaultTestSettings(),
				holidays: []entity.Holiday{kidsDay},
			},
			validate: func(t *testing.T, eval *entity.Evaluation) {
				assert.Empty(t, eval.Changes)
				require.Len(t, eval.DuePhases, 1)
				phase := eval.DuePhases[0]
				assert.Equal(t, domain.PhaseBefore, phase.Phase)
				assert.Equal(t, 3, phase.DaysUntil)
				assert.Contains(t, phase.Message, "3 days")
			},
		},
		{
			name: "Should stay quiet once the start phase was sent",
			asOf: time.Date(2024, time.May, 5, 15, 0, 0, 0, time.UTC),
			snap: checkSnapshot{
				settings: defaultTestSettings(),
				holidays: []entity.Holiday{kidsDay},
				statuses: map[string]entity.HolidayStatus{
					"Kids Day": {GuildID: testGuildID, HolidayName: "Kids Day", Active: true, OccurrenceYear: 2024},
				},
				records: []entity.PhaseRecord{
					{GuildID: testGuildID, HolidayName: "Kids Day", OccurrenceYear: 2024, Phase: domain.PhaseBefore},
					{GuildID: testGuildID, HolidayName: "Kids Day", OccurrenceYear: 2024, Phase: domain.PhaseStart},
				},
			},
			validate: func(t *testing.T, eval *entity.Evaluation) {
				assert.Empty(t, eval.Changes)
				assert.Empty(t, eval.DuePhases)
			},
		},
		{
			name: "Should deactivate and attribute the end phase to the finished occurrence",
			asOf: time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC),
			snap: checkSnapshot{
				settings: defaultTestSettings(),
				holidays: []entity.Holiday{kidsDay},
				statuses: map[string]entity.HolidayStatus{
					"Kids Day": {GuildID: testGuildID, HolidayName: "Kids Day", Active: true, OccurrenceYear: 2024},
				},
				records: []entity.PhaseRecord{
					{GuildID: testGuildID, HolidayName: "Kids Day", OccurrenceYear: 2024, Phase: domain.PhaseStart},
				},
			},
			validate: func(t *testing.T, eval *entity.Evaluation) {
				require.Len(t, eval.Changes, 1)
				assert.False(t, eval.Changes[0].BecameActive)
				// Next occurrence is 2025; the ended one is 2024.
				assert.Equal(t, 2025, eval.Changes[0].OccurrenceYear)

				require.Len(t, eval.DuePhases, 1)
				phase := eval.DuePhases[0]
				assert.Equal(t, domain.PhaseEnd, phase.Phase)
				assert.Equal(t, 2024, phase.OccurrenceYear)
			},
		},
		{
			name: "Should skip announcements when no channel is configured",
			asOf: time.Date(2024, time.May, 5, 9, 0, 0, 0, time.UTC),
			snap: checkSnapshot{
				settings: &entity.GuildSettings{
					GuildID:          testGuildID,
					AnnounceEnabled:  true,
					AnnounceLeadDays: 7,
					Version:          1,
				},
				holidays: []entity.Holiday{kidsDay},
			},
			validate: func(t *testing.T, eval *entity.Evaluation) {
				require.Len(t, eval.Changes, 1)
				assert.Empty(t, eval.DuePhases)
			},
		},
		{
			name: "Should carry the dry run flag and settings version",
			asOf: time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC),
			snap: checkSnapshot{
				settings: &entity.GuildSettings{
					GuildID:          testGuildID,
					DryRun:           true,
					AnnounceLeadDays: 7,
					Version:          9,
				},
				holidays: []entity.Holiday{kidsDay},
			},
			validate: func(t *testing.T, eval *entity.Evaluation) {
				assert.True(t, eval.DryRun)
				assert.Equal(t, int64(9), eval.SettingsVer)
			},
		},
		{
			name: "Should announce a fresh lifecycle the following year",
			asOf: time.Date(2025, time.May, 5, 9, 0, 0, 0, time.UTC),
			snap: checkSnapshot{
				settings: defaultTestSettings(),
				holidays: []entity.Holiday{kidsDay},
				statuses: map[string]entity.HolidayStatus{
					"Kids Day": {GuildID: testGuildID, HolidayName: "Kids Day", Active: false, OccurrenceYear: 2025},
				},
				records: []entity.PhaseRecord{
					{GuildID: testGuildID, HolidayName: "Kids Day", OccurrenceYear: 2024, Phase: domain.PhaseBefore},
					{GuildID: testGuildID, HolidayName: "Kids Day", OccurrenceYear: 2024, Phase: domain.PhaseStart},
					{GuildID: testGuildID, HolidayName: "Kids Day", OccurrenceYear: 2024, Phase: domain.PhaseEnd},
				},
			},
			validate: func(t *testing.T, eval *entity.Evaluation) {
				require.Len(t, eval.Changes, 1)
				assert.True(t, eval.Changes[0].BecameActive)
				require.Len(t, eval.DuePhases, 1)
				assert.Equal(t, domain.PhaseStart, eval.DuePhases[0].Phase)
				assert.Equal(t, 2025, eval.DuePhases[0].OccurrenceYear)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()
			expectCheckSnapshot(m, tt.snap)

			svc := newHolidayService(m.mockDataManager, zerolog.Nop())
			eval, err := svc.CheckHolidays(context.Background(), testGuildID, tt.asOf)
			require.NoError(t, err)
			require.NotNil(t, eval)
			tt.validate(t, eval)
		})
	}
}

// A failed end announcement must stay due on later checks even after the
// deactivation from the same evaluation was committed.
func Test_holidayService_CheckHolidays_EndPhaseSurvivesFailedSend(t *testing.T) {
	kidsDay := entity.Holiday{GuildID: testGuildID, Name: "Kids Day", Date: "05-05", Color: "#FFCC00"}

	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	svc := newHolidayService(m.mockDataManager, zerolog.Nop())

	// Day after the holiday, role still active, nothing announced yet.
	expectCheckSnapshot(m, checkSnapshot{
		settings: defaultTestSettings(),
		holidays: []entity.Holiday{kidsDay},
		statuses: map[string]entity.HolidayStatus{
			"Kids Day": {GuildID: testGuildID, HolidayName: "Kids Day", Active: true, OccurrenceYear: 2024},
		},
	})

	eval, err := svc.CheckHolidays(context.Background(), testGuildID, time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, eval.Changes, 1)
	require.Len(t, eval.DuePhases, 1)
	require.Equal(t, domain.PhaseEnd, eval.DuePhases[0].Phase)

	// The role sync succeeded but the announcement send failed, so only the
	// deactivation is reported back.
	m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(dm contract.DataManager) error) error {
			return fn(m.mockDataManager)
		}).Times(1)
	m.mockSettingsRepo.EXPECT().
		UpdateVersioned(testGuildID, int64(3), gomock.Any()).
		Return(nil).Times(1)
	m.mockStatusRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(status *entity.HolidayStatus) error {
			require.False(t, status.Active)
			return nil
		}).Times(1)

	err = svc.CommitEvaluation(context.Background(), eval, entity.EvaluationOutcome{
		AppliedChanges: eval.Changes,
	})
	require.NoError(t, err)

	// Next day's snapshot carries the committed inactive status and still no
	// phase record; the end announcement must be offered again.
	expectCheckSnapshot(m, checkSnapshot{
		settings: defaultTestSettings(),
		holidays: []entity.Holiday{kidsDay},
		statuses: map[string]entity.HolidayStatus{
			"Kids Day": {GuildID: testGuildID, HolidayName: "Kids Day", Active: false, OccurrenceYear: 2025},
		},
	})

	retry, err := svc.CheckHolidays(context.Background(), testGuildID, time.Date(2024, time.May, 7, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, retry.Changes)
	require.Len(t, retry.DuePhases, 1)
	assert.Equal(t, domain.PhaseEnd, retry.DuePhases[0].Phase)
	assert.Equal(t, 2024, retry.DuePhases[0].OccurrenceYear)
}

func Test_holidayService_CommitEvaluation(t *testing.T) {
	asOf := time.Date(2024, time.May, 5, 9, 0, 0, 0, time.UTC)
	kidsDay := entity.Holiday{GuildID: testGuildID, Name: "Kids Day", Date: "05-05", Color: "#FFCC00"}

	change := entity.HolidayStateChange{
		Holiday:        kidsDay,
		DaysUntil:      0,
		OccurrenceYear: 2024,
		BecameActive:   true,
		RoleName:       "Kids Day 05-05",
	}
	phase := entity.PhaseAnnouncement{
		Holiday:        kidsDay,
		Phase:          domain.PhaseStart,
		OccurrenceYear: 2024,
		ChannelID:      "chan-1",
	}

	t.Run("Should persist applied changes and sent phases in one transaction", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		eval := &entity.Evaluation{GuildID: testGuildID, AsOf: asOf, SettingsVer: 3}

		m.mockDataManager.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(dm contract.DataManager) error) error {
				return fn(m.mockDataManager)
			}).Times(1)
		m.mockSettingsRepo.EXPECT().
			UpdateVersioned(testGuildID, int64(3), gomock.Any()).
			Return(nil).Times(1)
		m.mockStatusRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(status *entity.HolidayStatus) error {
				require.Equal(t, "Kids Day", status.HolidayName)
				require.True(t, status.Active)
				require.Equal(t, 2024, status.OccurrenceYear)
				require.Equal(t, asOf, status.UpdatedAt)
				return nil
			}).Times(1)
		m.mockPhaseRepo.EXPECT().
			MarkSent(gomock.Any()).
			DoAndReturn(func(record *entity.PhaseRecord) error {
				require.Equal(t, "Kids Day", record.HolidayName)
				require.Equal(t, domain.PhaseStart, record.Phase)
				require.Equal(t, 2024, record.OccurrenceYear)
				return nil
			}).Times(1)

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		err := svc.CommitEvaluation(context.Background(), eval, entity.EvaluationOutcome{
			AppliedChanges: []entity.HolidayStateChange{change},
			SentPhases:     []entity.PhaseAnnouncement{phase},
		})
		require.NoError(t, err)
	})

	t.Run("Should commit nothing on a dry run", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		eval := &entity.Evaluation{GuildID: testGuildID, AsOf: asOf, DryRun: true, SettingsVer: 3}

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		err := svc.CommitEvaluation(context.Background(), eval, entity.EvaluationOutcome{
			AppliedChanges: []entity.HolidayStateChange{change},
		})
		require.NoError(t, err)
	})

	t.Run("Should commit nothing for an empty outcome", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		eval := &entity.Evaluation{GuildID: testGuildID, AsOf: asOf, SettingsVer: 3}

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		err := svc.CommitEvaluation(context.Background(), eval, entity.EvaluationOutcome{})
		require.NoError(t, err)
	})

	t.Run("Should reject a commit against a stale settings version", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		eval := &entity.Evaluation{GuildID: testGuildID, AsOf: asOf, SettingsVer: 2}

		m.mockDataManager.EXPECT().
			WithTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(dm contract.DataManager) error) error {
				return fn(m.mockDataManager)
			}).Times(1)
		m.mockSettingsRepo.EXPECT().
			UpdateVersioned(testGuildID, int64(2), gomock.Any()).
			Return(domain.ErrStaleWrite).Times(1)

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		err := svc.CommitEvaluation(context.Background(), eval, entity.EvaluationOutcome{
			AppliedChanges: []entity.HolidayStateChange{change},
		})
		require.ErrorIs(t, err, domain.ErrStaleWrite)
	})
}

func Test_holidayService_ForceHoliday(t *testing.T) {
	t.Run("Should fabricate an activation regardless of the date", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockHolidayRepo.EXPECT().
			GetByGuild(testGuildID).
			Return([]entity.Holiday{{Name: "Kids Day", Date: "05-05", Color: "#68855A"}}, nil).
			Times(1)

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		change, err := svc.ForceHoliday(context.Background(), testGuildID, "kids day")
		require.NoError(t, err)
		require.NotNil(t, change)
		assert.True(t, change.BecameActive)
		assert.Equal(t, "Kids Day 05-05", change.RoleName)
	})

	t.Run("Should fail for an unknown holiday", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockHolidayRepo.EXPECT().
			GetByGuild(testGuildID).
			Return(nil, nil).Times(1)

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		change, err := svc.ForceHoliday(context.Background(), testGuildID, "Easter")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, change)
	})
}

func Test_holidayService_SetDryRun(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockSettingsRepo.EXPECT().
		Get(testGuildID).
		Return(nil, nil).Times(1)
	m.mockSettingsRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(settings *entity.GuildSettings) error {
			require.Equal(t, testGuildID, settings.GuildID)
			require.True(t, settings.DryRun)
			return nil
		}).Times(1)

	svc := newHolidayService(m.mockDataManager, zerolog.Nop())
	err := svc.SetDryRun(context.Background(), testGuildID, true)
	require.NoError(t, err)
}

func Test_holidayService_ImportDefaults(t *testing.T) {
	t.Run("Should import the catalog and skip existing names", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		existing := []entity.Holiday{{Name: "Christmas", Date: "12-25", Color: "#FF0000"}}

		m.mockHolidayRepo.EXPECT().
			GetByGuild(testGuildID).
			Return(existing, nil).AnyTimes()
		m.mockHolidayRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(h *entity.Holiday) error {
				require.NotEqual(t, "Christmas", h.Name)
				return nil
			}).AnyTimes()

		svc := newHolidayService(m.mockDataManager, zerolog.Nop())
		added, err := svc.ImportDefaults(context.Background(), testGuildID)
		require.NoError(t, err)
		assert.Equal(t, 6, added)
	})
}
