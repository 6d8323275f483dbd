package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zaneriley/seasonal-roles-bot/mocks"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockHolidayRepo  *mocks.MockHolidayRepo
	mockStatusRepo   *mocks.MockStatusRepo
	mockPhaseRepo    *mocks.MockPhaseRepo
	mockOptOutRepo   *mocks.MockOptOutRepo
	mockJobRepo      *mocks.MockJobRepo
	mockSettingsRepo *mocks.MockSettingsRepo
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	holidayRepo := mocks.NewMockHolidayRepo(ctrl)
	dm.EXPECT().Holiday().Return(holidayRepo).AnyTimes()

	statusRepo := mocks.NewMockStatusRepo(ctrl)
	dm.EXPECT().Status().Return(statusRepo).AnyTimes()

	phaseRepo := mocks.NewMockPhaseRepo(ctrl)
	dm.EXPECT().Phase().Return(phaseRepo).AnyTimes()

	optOutRepo := mocks.NewMockOptOutRepo(ctrl)
	dm.EXPECT().OptOut().Return(optOutRepo).AnyTimes()

	jobRepo := mocks.NewMockJobRepo(ctrl)
	dm.EXPECT().Job().Return(jobRepo).AnyTimes()

	settingsRepo := mocks.NewMockSettingsRepo(ctrl)
	dm.EXPECT().Settings().Return(settingsRepo).AnyTimes()

	m = allMocks{
		mockDataManager:  dm,
		mockHolidayRepo:  holidayRepo,
		mockStatusRepo:   statusRepo,
		mockPhaseRepo:    phaseRepo,
		mockOptOutRepo:   optOutRepo,
		mockJobRepo:      jobRepo,
		mockSettingsRepo: settingsRepo,
	}

	// validate service creation
	holidaySvc := newHolidayService(dm, zerolog.Nop())
	require.NotNil(t, holidaySvc)

	return
}
