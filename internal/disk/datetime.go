package disk

import "fmt"

// Packed FAT date layout (bit 0 is the LSB of the 16-bit word):
//
//	bits 0-4   day of month, 1-31
//	bits 5-8   month of year, 1 = January
//	bits 9-15  years since 1980
//
// Packed FAT time layout:
//
//	bits 0-4   seconds in 2-second ticks, 0-29
//	bits 5-10  minutes, 0-59
//	bits 11-15 hours, 0-23
const (
	dayMask    = 0x001F
	monthMask  = 0x01E0
	monthShift = 5
	yearMask   = 0xFE00
	yearShift  = 9

	secTickMask = 0x001F
	minuteMask  = 0x07E0
	minuteShift = 5
	hourMask    = 0xF800
	hourShift   = 11

	epochYear = 1980
)

// FormatDateTime renders a packed FAT date/time pair as an ISO-8601-like
// string. Month and day are 1-based and printed without zero padding.
// The stored seconds sub-field has 2-second granularity and is doubled
// on output.
func FormatDateTime(date, tm uint16) string {
	day := date & dayMask
	month := (date & monthMask) >> monthShift
	year := epochYear + int((date&yearMask)>>yearShift)

	secs := (tm & secTickMask) * 2
	mins := (tm & minuteMask) >> minuteShift
	hours := (tm & hourMask) >> hourShift

	return fmt.Sprintf("%d-%d-%dT%d:%d:%d", year, month, day, hours, mins, secs)
}
