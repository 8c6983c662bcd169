package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphlite/temporal/errs"
	"github.com/graphlite/temporal/format"
)

func TestTemporalHeader_RoundTrip(t *testing.T) {
	kinds := []format.Kind{
		format.KindDate,
		format.KindLocalTime,
		format.KindLocalDateTime,
		format.KindOffsetTime,
		format.KindZonedDateTime,
		format.KindDuration,
	}

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			buf := make([]byte, TemporalHeaderSize)
			NewTemporalHeader(kind).WriteTo(buf)

			require.Equal(t, byte(StoreTagTemporal), buf[0])
			require.Equal(t, byte(kind), buf[1])

			parsed, err := ParseTemporalHeader(buf)
			require.NoError(t, err)
			require.Equal(t, kind, parsed.Kind)
		})
	}
}

func TestParseTemporalHeader(t *testing.T) {
	t.Run("Too short", func(t *testing.T) {
		_, err := ParseTemporalHeader([]byte{StoreTagTemporal})
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

		_, err = ParseTemporalHeader(nil)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Wrong store tag", func(t *testing.T) {
		_, err := ParseTemporalHeader([]byte{StoreTagArray, byte(format.KindDate)})
		require.ErrorIs(t, err, errs.ErrNotTemporalArray)
	})

	t.Run("Corrupt kind tag degrades to invalid", func(t *testing.T) {
		parsed, err := ParseTemporalHeader([]byte{StoreTagTemporal, 0xC7})
		require.NoError(t, err)
		require.Equal(t, format.KindInvalid, parsed.Kind)
	})

	t.Run("Extra data ignored", func(t *testing.T) {
		buf := []byte{StoreTagTemporal, byte(format.KindDuration), 1, 2, 3}
		parsed, err := ParseTemporalHeader(buf)
		require.NoError(t, err)
		require.Equal(t, format.KindDuration, parsed.Kind)
	})
}
