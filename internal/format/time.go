package format

import (
	"time"
)

const (
	ticksPerSecond      = 10_000_000 // FILETIME units are 100ns
	ticksPerMillisecond = 10_000
	secondsPerDay       = 86_400

	// filetimeUnixOffset is the difference between the FILETIME epoch and the
	// Unix epoch in seconds.
	filetimeUnixOffset = 11_644_473_600

	// marchEraOffset shifts days since 1601-01-01 to days since 0000-03-01,
	// the origin the civil-from-days breakdown below works from.
	marchEraOffset = 584_694

	daysPer400Years = 146_097
)

// Filetime is a Windows FILETIME: 100ns ticks since 1601-01-01T00:00:00 UTC.
type Filetime uint64

// NewFiletime combines the on-disk low and high halves.
func NewFiletime(low, high uint32) Filetime {
	return Filetime(uint64(high)<<32 | uint64(low))
}

// Low returns dwLowDateTime.
func (ft Filetime) Low() uint32 { return uint32(ft) }

// High returns dwHighDateTime.
func (ft Filetime) High() uint32 { return uint32(ft >> 32) }

// SystemTime is the calendar breakdown of a Filetime, always in UTC.
type SystemTime struct {
	Year        int
	Month       time.Month
	DayOfWeek   time.Weekday
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// SystemTime converts ft into calendar fields. Every uint64 value is
// accepted; the largest lands in the year 60056.
func (ft Filetime) SystemTime() SystemTime {
	ticks := uint64(ft)
	secs := ticks / ticksPerSecond
	ms := (ticks % ticksPerSecond) / ticksPerMillisecond

	days := secs / secondsPerDay
	sod := secs % secondsPerDay

	y, m, d := civilFromDays(days)

	return SystemTime{
		Year:  y,
		Month: time.Month(m),
		// 1601-01-01 was a Monday.
		DayOfWeek:   time.Weekday((days + 1) % 7),
		Day:         d,
		Hour:        int(sod / 3600),
		Minute:      int(sod % 3600 / 60),
		Second:      int(sod % 60),
		Millisecond: int(ms),
	}
}

// Time returns ft as a UTC time.Time with 100ns precision.
func (ft Filetime) Time() time.Time {
	ticks := uint64(ft)
	secs := int64(ticks/ticksPerSecond) - filetimeUnixOffset
	nsec := int64(ticks%ticksPerSecond) * 100
	return time.Unix(secs, nsec).UTC()
}

// TimeToFiletime converts t to a Filetime, clamping instants before 1601 to 0.
func TimeToFiletime(t time.Time) Filetime {
	secs := t.Unix() + filetimeUnixOffset
	if secs < 0 {
		return 0
	}
	return Filetime(uint64(secs)*ticksPerSecond + uint64(t.Nanosecond())/100)
}

// civilFromDays maps days since 1601-01-01 to a proleptic Gregorian date.
// Unsigned arithmetic throughout: the input is never negative.
func civilFromDays(days uint64) (year, month, day int) {
	z := days + marchEraOffset
	era := z / daysPer400Years
	doe := z - era*daysPer400Years                        // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	doy := doe - (365*yoe + yoe/4 - yoe/100)               // [0, 365], March-based
	mp := (5*doy + 2) / 153                                // [0, 11]

	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp + 3)
	} else {
		month = int(mp - 9)
	}
	year = int(yoe + era*400)
	if month <= 2 {
		year++
	}
	return year, month, day
}
