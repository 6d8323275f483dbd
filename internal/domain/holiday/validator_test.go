package holiday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaneriley/seasonal-roles-bot/internal/domain"
	"github.com/zaneriley/seasonal-roles-bot/internal/domain/entity"
)

func TestValidateColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		wantErr bool
	}{
		{name: "Should accept lowercase hex", color: "#1a2b3c"},
		{name: "Should accept uppercase hex", color: "#FFCC00"},
		{name: "Should reject missing hash", color: "1a2b3c", wantErr: true},
		{name: "Should reject short hex", color: "#1a2b3", wantErr: true},
		{name: "Should reject long hex", color: "#1a2b3c4", wantErr: true},
		{name: "Should reject non-hex characters", color: "#1a2b3g", wantErr: true},
		{name: "Should reject empty", color: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColor(tt.color)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "Should accept a normal date", date: "05-05"},
		{name: "Should accept Feb 29", date: "02-29"},
		{name: "Should accept year boundaries", date: "12-31"},
		{name: "Should reject month zero", date: "00-10", wantErr: true},
		{name: "Should reject month thirteen", date: "13-01", wantErr: true},
		{name: "Should reject day zero", date: "05-00", wantErr: true},
		{name: "Should reject Feb 30", date: "02-30", wantErr: true},
		{name: "Should reject Apr 31", date: "04-31", wantErr: true},
		{name: "Should reject missing leading zeros", date: "5-5", wantErr: true},
		{name: "Should reject other formats", date: "2024-05-05", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Kids Day"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
}

func TestFind(t *testing.T) {
	holidays := []entity.Holiday{
		{Name: "Kids Day", Date: "05-05"},
		{Name: "Christmas", Date: "12-25"},
	}

	t.Run("Should match exact name", func(t *testing.T) {
		got := Find(holidays, "Kids Day")
		require.NotNil(t, got)
		assert.Equal(t, "05-05", got.Date)
	})

	t.Run("Should match case-insensitively", func(t *testing.T) {
		got := Find(holidays, "kids day")
		require.NotNil(t, got)
		assert.Equal(t, "Kids Day", got.Name)
	})

	t.Run("Should return nil when absent", func(t *testing.T) {
		assert.Nil(t, Find(holidays, "Easter"))
	})
}
