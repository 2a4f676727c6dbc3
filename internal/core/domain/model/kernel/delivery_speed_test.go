package kernel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverySpeedFromString(t *testing.T) {
	t.Run("parses all known tiers", func(t *testing.T) {
		testCases := map[string]kernel.DeliverySpeed{
			"overnight": kernel.Overnight,
			"two_day":   kernel.TwoDay,
			"standard":  kernel.Standard,
			"economy":   kernel.Economy,
		}

		for name, expected := range testCases {
			speed, err := kernel.DeliverySpeedFromString(name)

			require.NoError(t, err)
			assert.Equal(t, expected, speed)
			assert.Equal(t, name, speed.String())
		}
	})

	t.Run("rejects unknown names without a fallback", func(t *testing.T) {
		for _, name := range []string{"", "OVERNIGHT", "same_day", "unknown"} {
			_, err := kernel.DeliverySpeedFromString(name)

			require.Error(t, err, name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestDeliverySpeed_TransitDays(t *testing.T) {
	testCases := map[kernel.DeliverySpeed]int{
		kernel.Overnight: 1,
		kernel.TwoDay:    2,
		kernel.Standard:  5,
		kernel.Economy:   7,
	}

	for speed, days := range testCases {
		assert.Equal(t, days, speed.TransitDays(), speed.String())
	}
}

func TestDeliverySpeed_Validate(t *testing.T) {
	require.NoError(t, kernel.Standard.Validate())
	require.Error(t, kernel.DeliverySpeedUnknown.Validate())
	require.Error(t, kernel.DeliverySpeed(42).Validate())
	assert.Equal(t, "unknown", kernel.DeliverySpeed(42).String())
}
