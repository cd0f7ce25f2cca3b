package parcel_test

import (
	"testing"

	"parceltracking/internal/core/domain/model/parcel"
	"parceltracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeliveryService(t *testing.T) {
	t.Run("should parse known tiers", func(t *testing.T) {
		s, err := parcel.ParseDeliveryService("Standard")
		require.NoError(t, err)
		assert.Equal(t, parcel.Standard, s)

		s, err = parcel.ParseDeliveryService("Express")
		require.NoError(t, err)
		assert.Equal(t, parcel.Express, s)
	})

	t.Run("should reject anything else", func(t *testing.T) {
		for _, input := range []string{"", "standard", "EXPRESS", "Overnight", "Unknown"} {
			s, err := parcel.ParseDeliveryService(input)

			require.ErrorIs(t, err, errs.ErrInvalidService, input)
			assert.Equal(t, parcel.UnknownService, s)
		}
	})
}

func TestDeliveryService_Validate(t *testing.T) {
	require.NoError(t, parcel.Standard.Validate())
	require.NoError(t, parcel.Express.Validate())

	err := parcel.UnknownService.Validate()
	require.ErrorIs(t, err, errs.ErrInvalidService)

	err = parcel.DeliveryService(9).Validate()
	require.ErrorIs(t, err, errs.ErrInvalidService)
	assert.Contains(t, err.Error(), "9 is not a known delivery service")
}

func TestDeliveryService_String(t *testing.T) {
	assert.Equal(t, "Standard", parcel.Standard.String())
	assert.Equal(t, "Express", parcel.Express.String())
	assert.Equal(t, "Unknown", parcel.UnknownService.String())
}
