package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateOf(t *testing.T) {
	t.Run("Epoch", func(t *testing.T) {
		d := DateOf(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC))
		require.Equal(t, int64(0), d.EpochDay)
	})

	t.Run("Modern date", func(t *testing.T) {
		d := DateOf(time.Date(2022, 1, 8, 15, 30, 0, 0, time.UTC))
		require.Equal(t, int64(19000), d.EpochDay)
	})

	t.Run("Before epoch", func(t *testing.T) {
		d := DateOf(time.Date(1969, 12, 31, 23, 0, 0, 0, time.UTC))
		require.Equal(t, int64(-1), d.EpochDay)
	})

	t.Run("Uses wall date of the location", func(t *testing.T) {
		// 23:30 at +02:00 is 21:30 UTC on the same day; the local date
		// is what counts.
		loc := time.FixedZone("", 2*3600)
		d := DateOf(time.Date(2022, 1, 8, 23, 30, 0, 0, loc))
		require.Equal(t, int64(19000), d.EpochDay)
	})
}

func TestDate_Time(t *testing.T) {
	d := Date{EpochDay: 19000}
	require.Equal(t, time.Date(2022, 1, 8, 0, 0, 0, 0, time.UTC), d.Time())

	require.Equal(t, d, DateOf(d.Time()))
}

func TestLocalTimeOf(t *testing.T) {
	lt := LocalTimeOf(time.Date(2024, 6, 1, 13, 37, 11, 500, time.UTC))
	want := int64(13)*3600*1e9 + int64(37)*60*1e9 + int64(11)*1e9 + 500
	require.Equal(t, want, lt.NanoOfDay)

	hour, minute, sec, nano := lt.Clock()
	require.Equal(t, 13, hour)
	require.Equal(t, 37, minute)
	require.Equal(t, 11, sec)
	require.Equal(t, 500, nano)
}

func TestLocalDateTimeOf(t *testing.T) {
	t.Run("UTC instant", func(t *testing.T) {
		at := time.Date(2024, 6, 1, 13, 37, 11, 42, time.UTC)
		ldt := LocalDateTimeOf(at)
		require.Equal(t, at.Unix(), ldt.EpochSecond)
		require.Equal(t, int32(42), ldt.Nano)
		require.Equal(t, at, ldt.Time())
	})

	t.Run("Wall clock kept, zone dropped", func(t *testing.T) {
		loc := time.FixedZone("", -5*3600)
		ldt := LocalDateTimeOf(time.Date(2024, 6, 1, 13, 37, 11, 0, loc))
		require.Equal(t, time.Date(2024, 6, 1, 13, 37, 11, 0, time.UTC), ldt.Time())
	})
}

func TestOffsetTimeOf(t *testing.T) {
	loc := time.FixedZone("", 5*3600+30*60)
	ot := OffsetTimeOf(time.Date(2024, 6, 1, 9, 0, 0, 0, loc))

	require.Equal(t, int64(9)*3600*1e9, ot.NanoOfDay)
	require.Equal(t, int16(330), ot.OffsetMinutes)

	_, offset := time.Now().In(ot.Location()).Zone()
	require.Equal(t, 330*60, offset)
}

func TestZonedDateTimeOf(t *testing.T) {
	loc := time.FixedZone("", -3*3600)
	at := time.Date(2024, 6, 1, 9, 0, 0, 777, loc)
	zdt := ZonedDateTimeOf(at)

	require.Equal(t, at.Unix(), zdt.EpochSecond)
	require.Equal(t, int32(777), zdt.Nano)
	require.Equal(t, int16(-180), zdt.OffsetMinutes)
	require.Empty(t, zdt.ZoneName)

	require.True(t, zdt.Time().Equal(at))
}

func TestFloorDiv(t *testing.T) {
	require.Equal(t, int64(0), floorDiv(0, 86400))
	require.Equal(t, int64(0), floorDiv(86399, 86400))
	require.Equal(t, int64(1), floorDiv(86400, 86400))
	require.Equal(t, int64(-1), floorDiv(-1, 86400))
	require.Equal(t, int64(-1), floorDiv(-86400, 86400))
	require.Equal(t, int64(-2), floorDiv(-86401, 86400))
}
