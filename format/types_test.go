package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Run("In-range tags", func(t *testing.T) {
		require.Equal(t, KindInvalid, KindOf(0))
		require.Equal(t, KindDate, KindOf(1))
		require.Equal(t, KindLocalTime, KindOf(2))
		require.Equal(t, KindLocalDateTime, KindOf(3))
		require.Equal(t, KindOffsetTime, KindOf(4))
		require.Equal(t, KindZonedDateTime, KindOf(5))
		require.Equal(t, KindDuration, KindOf(6))
	})

	t.Run("Total over all integers", func(t *testing.T) {
		// Out-of-range tags resolve to KindInvalid, never fail.
		for _, tag := range []int{-1000, -1, 7, 8, 255, 1 << 20} {
			require.Equal(t, KindInvalid, KindOf(tag), "tag %d", tag)
		}
	})

	t.Run("Only in-range tags are valid kinds", func(t *testing.T) {
		for tag := 1; tag < KindCount; tag++ {
			require.NotEqual(t, KindInvalid, KindOf(tag))
		}
	})
}

func TestKindByName(t *testing.T) {
	t.Run("All declared names", func(t *testing.T) {
		for tag := 0; tag < KindCount; tag++ {
			kind := Kind(tag)
			found, err := KindByName(kind.String())
			require.NoError(t, err)
			require.Equal(t, kind, found)
		}
	})

	t.Run("Historical names", func(t *testing.T) {
		offsetTime, err := KindByName("Time")
		require.NoError(t, err)
		require.Equal(t, KindOffsetTime, offsetTime)

		zoned, err := KindByName("DateTime")
		require.NoError(t, err)
		require.Equal(t, KindZonedDateTime, zoned)
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := KindByName("Instant")
		require.Error(t, err)
		require.Contains(t, err.Error(), "Instant")
	})

	t.Run("Lookup is case sensitive", func(t *testing.T) {
		_, err := KindByName("date")
		require.Error(t, err)
	})
}

func TestKindString(t *testing.T) {
	require.Equal(t, "Invalid", KindInvalid.String())
	require.Equal(t, "Date", KindDate.String())
	require.Equal(t, "LocalTime", KindLocalTime.String())
	require.Equal(t, "LocalDateTime", KindLocalDateTime.String())
	require.Equal(t, "Time", KindOffsetTime.String())
	require.Equal(t, "DateTime", KindZonedDateTime.String())
	require.Equal(t, "Duration", KindDuration.String())
	require.Equal(t, "Unknown", Kind(42).String())
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xF).String())
}

func TestPayloadTypeString(t *testing.T) {
	require.Equal(t, "Words", PayloadWords.String())
	require.Equal(t, "Bytes", PayloadBytes.String())
	require.Equal(t, "Unknown", PayloadType(9).String())
}
