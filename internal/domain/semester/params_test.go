package semester

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultParams(t *testing.T) {
	params := NewDefaultParams()

	if params.MinRandomYear != ZeroYear {
		t.Errorf("MinRandomYear should default to %d, got %d", ZeroYear, params.MinRandomYear)
	}
	if params.MaxRandomYear != 2899 {
		t.Errorf("MaxRandomYear should default to 2899, got %d", params.MaxRandomYear)
	}
	if params.Terms != DefaultTermTable() {
		t.Errorf("Terms should default to the default term table, got %v", params.Terms.Terms())
	}
}

func TestNewParams(t *testing.T) {
	t.Run("zero config keeps defaults", func(t *testing.T) {
		params, err := NewParams(ParamsConfig{})
		require.NoError(t, err)
		assert.Equal(t, NewDefaultParams(), params)
	})

	t.Run("overrides", func(t *testing.T) {
		params, err := NewParams(ParamsConfig{
			Terms: []TermDef{
				{Name: "spring", Digit: 2, StartDay: 1},
				{Name: "summer", Digit: 4, StartDay: 150},
				{Name: "fall", Digit: 6, StartDay: 240},
			},
			MinRandomYear: 2000,
			MaxRandomYear: 2030,
		})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4, 6}, params.Terms.Digits())
		assert.Equal(t, []Term{Spring, Summer, Fall}, params.Terms.Terms())
		assert.Equal(t, 2000, params.MinRandomYear)
		assert.Equal(t, 2030, params.MaxRandomYear)
	})

	t.Run("invalid terms", func(t *testing.T) {
		_, err := NewParams(ParamsConfig{Terms: []TermDef{{Name: "Spring", Digit: 4, StartDay: 1}}})
		assert.ErrorIs(t, err, ErrInvalidTermTable)
	})

	t.Run("invalid year range", func(t *testing.T) {
		_, err := NewParams(ParamsConfig{MinRandomYear: 2500, MaxRandomYear: 2400})
		assert.ErrorIs(t, err, ErrInvalidYearRange)

		_, err = NewParams(ParamsConfig{MinRandomYear: 1800})
		assert.ErrorIs(t, err, ErrInvalidYearRange)
	})
}
