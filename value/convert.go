package value

import (
	"time"
)

const secondsPerDay = 86_400

// DateOf returns the Date of the instant t in t's location.
func DateOf(t time.Time) Date {
	sec := t.Unix() + int64(zoneOffsetSeconds(t))

	return Date{EpochDay: floorDiv(sec, secondsPerDay)}
}

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Unix(d.EpochDay*secondsPerDay, 0).UTC()
}

// LocalTimeOf returns the LocalTime of the instant t in t's location.
func LocalTimeOf(t time.Time) LocalTime {
	hour, minute, sec := t.Clock()
	nanos := int64(hour)*int64(time.Hour) +
		int64(minute)*int64(time.Minute) +
		int64(sec)*int64(time.Second) +
		int64(t.Nanosecond())

	return LocalTime{NanoOfDay: nanos}
}

// Clock returns the hour, minute, second and nanosecond of the time of day.
func (lt LocalTime) Clock() (hour, minute, sec, nano int) {
	rem := lt.NanoOfDay
	hour = int(rem / int64(time.Hour))
	rem %= int64(time.Hour)
	minute = int(rem / int64(time.Minute))
	rem %= int64(time.Minute)
	sec = int(rem / int64(time.Second))
	nano = int(rem % int64(time.Second))

	return hour, minute, sec, nano
}

// LocalDateTimeOf returns the LocalDateTime with the wall-clock components of
// t, interpreted in UTC.
func LocalDateTimeOf(t time.Time) LocalDateTime {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	utc := time.Date(year, month, day, hour, minute, sec, 0, time.UTC)

	return LocalDateTime{EpochSecond: utc.Unix(), Nano: int32(t.Nanosecond())}
}

// Time returns the local date-time as a time.Time in UTC.
func (ldt LocalDateTime) Time() time.Time {
	return time.Unix(ldt.EpochSecond, int64(ldt.Nano)).UTC()
}

// OffsetTimeOf returns the OffsetTime of the instant t, using the zone offset
// in effect at t.
func OffsetTimeOf(t time.Time) OffsetTime {
	return OffsetTime{
		NanoOfDay:     LocalTimeOf(t).NanoOfDay,
		OffsetMinutes: int16(zoneOffsetSeconds(t) / 60),
	}
}

// Location returns the fixed-offset location of the time.
func (ot OffsetTime) Location() *time.Location {
	return fixedZone(ot.OffsetMinutes)
}

// ZonedDateTimeOf returns the ZonedDateTime of the instant t, reducing t's
// zone to its fixed offset in effect at t.
func ZonedDateTimeOf(t time.Time) ZonedDateTime {
	return ZonedDateTime{
		EpochSecond:   t.Unix(),
		Nano:          int32(t.Nanosecond()),
		OffsetMinutes: int16(zoneOffsetSeconds(t) / 60),
	}
}

// Time returns the zoned date-time as a time.Time in its fixed-offset
// location. The ZoneName, if any, is not resolved.
func (zdt ZonedDateTime) Time() time.Time {
	return time.Unix(zdt.EpochSecond, int64(zdt.Nano)).In(fixedZone(zdt.OffsetMinutes))
}

func zoneOffsetSeconds(t time.Time) int {
	_, offset := t.Zone()

	return offset
}

func fixedZone(offsetMinutes int16) *time.Location {
	if offsetMinutes == 0 {
		return time.UTC
	}

	return time.FixedZone("", int(offsetMinutes)*60)
}

// floorDiv divides rounding toward negative infinity, so dates before 1970
// map to negative epoch days consistently.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
