package calendar

// DaysFromCivil converts a proleptic-Gregorian (y, m, d) into a day count
// since 1970-01-01 (the DAISY serial). m is 1-12, d is 1-31.
//
// This is the era/year-of-era decomposition widely used for civil-calendar
// arithmetic (the same family of algorithm the standard library's time
// package and Gregorian date libraries such as Merovius-go-date implement);
// it avoids a month-length lookup table by treating March as the first
// month of its "civil year".
func DaysFromCivil(y, m, d int) int32 {
	yy := int64(y)
	if m <= 2 {
		yy--
	}
	var era int64
	if yy >= 0 {
		era = yy / 400
	} else {
		era = (yy - 399) / 400
	}
	yoe := yy - era*400 // [0, 399]
	var mp int64
	if m > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return int32(era*146097 + doe - 719468)
}

// CivilFromDays converts a DAISY serial back into (y, m, d).
func CivilFromDays(z int32) (y, m, d int) {
	zz := int64(z) + 719468
	var era int64
	if zz >= 0 {
		era = zz / 146097
	} else {
		era = (zz - 146096) / 146097
	}
	doe := zz - era*146097 // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	yy := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	dd := doy - (153*mp+2)/5 + 1
	var mm int64
	if mp < 10 {
		mm = mp + 3
	} else {
		mm = mp - 9
	}
	if mm <= 2 {
		yy++
	}
	return int(yy), int(mm), int(dd)
}

// IsLeap reports whether y is a Gregorian leap year.
func IsLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Ultimo returns the last valid day of the given Gregorian month.
func Ultimo(y, m int) int {
	for m < 1 {
		m += 12
	}
	for m > 12 {
		m -= 12
	}
	if m == 2 && IsLeap(y) {
		return 29
	}
	return daysInMonth[m-1]
}

// IsoWeekday returns the ISO-8601 weekday of the day with the given serial:
// 1 (Monday) through 7 (Sunday).
func IsoWeekday(z int32) int {
	// 1970-01-01 (serial 0) was a Thursday (ISO weekday 4).
	d := ((int(z) % 7) + 7) % 7
	return ((d+3)%7 + 1)
}

// BdaysInMonth returns the number of weekdays (Mon-Fri) in the given month.
func BdaysInMonth(y, m int) int {
	count := 0
	ult := Ultimo(y, m)
	for d := 1; d <= ult; d++ {
		if IsoWeekday(DaysFromCivil(y, m, d)) <= 5 {
			count++
		}
	}
	return count
}

// BizdaToDaisy returns the serial of the bd-th business day of (y, m),
// clamped to the month's business-day count.
func BizdaToDaisy(y, m, bd int) int32 {
	max := BdaysInMonth(y, m)
	if bd > max {
		bd = max
	}
	if bd < 1 {
		bd = 1
	}
	count := 0
	ult := Ultimo(y, m)
	for d := 1; d <= ult; d++ {
		z := DaysFromCivil(y, m, d)
		if IsoWeekday(z) <= 5 {
			count++
			if count == bd {
				return z
			}
		}
	}
	return DaysFromCivil(y, m, ult) // unreachable for bd in [1, max]
}

// DaisyToBizda returns the (y, m, bd) business-day position of serial z.
// If z falls on a weekend, bd is the count of business days up to and
// including the preceding weekday.
func DaisyToBizda(z int32) (y, m, bd int) {
	y, m, d := CivilFromDays(z)
	count := 0
	for dd := 1; dd <= d; dd++ {
		if IsoWeekday(DaysFromCivil(y, m, dd)) <= 5 {
			count++
		}
	}
	return y, m, count
}

// YmcwToDaisy returns the serial of the c-th occurrence of ISO weekday w in
// month (y, m). If c overruns the month, the result clamps to the last
// occurrence of w in that month.
func YmcwToDaisy(y, m, c, w int) int32 {
	first := DaysFromCivil(y, m, 1)
	firstWd := IsoWeekday(first)
	offset := (w - firstWd + 7) % 7
	candidate := first + int32(offset) + int32((c-1)*7)
	cy, cm, _ := CivilFromDays(candidate)
	for cy != y || cm != m {
		candidate -= 7
		cy, cm, _ = CivilFromDays(candidate)
	}
	return candidate
}

// DaisyToYmcw returns the (y, m, c, w) nth-weekday-of-month position of
// serial z.
func DaisyToYmcw(z int32) (y, m, c, w int) {
	y, m, d := CivilFromDays(z)
	w = IsoWeekday(z)
	c = (d-1)/7 + 1
	return
}

// IsoWeek returns the ISO-8601 week-numbering year and week number
// containing serial z.
func IsoWeek(z int32) (isoYear, week int) {
	wd := IsoWeekday(z)
	thursday := z - int32(wd) + 4
	ty, _, _ := CivilFromDays(thursday)
	jan1 := DaysFromCivil(ty, 1, 1)
	week = int(thursday-jan1)/7 + 1
	return ty, week
}

// IsoWeeksInYear returns 52 or 53, the number of ISO weeks in isoYear. Dec 28
// always falls in the last ISO week of its ISO year, so its week number is
// that count.
func IsoWeeksInYear(isoYear int) int {
	_, week := IsoWeek(DaysFromCivil(isoYear, 12, 28))
	return week
}

// YwdToDaisy returns the serial of ISO weekday w of ISO week c of isoYear.
func YwdToDaisy(isoYear, c, w int) int32 {
	jan4 := DaysFromCivil(isoYear, 1, 4) // always in week 1
	jan4Wd := IsoWeekday(jan4)
	week1Monday := jan4 - int32(jan4Wd) + 1
	return week1Monday + int32((c-1)*7+(w-1))
}

// DaisyToYwd returns the (isoYear, week, weekday) for serial z.
func DaisyToYwd(z int32) (isoYear, week, weekday int) {
	isoYear, week = IsoWeek(z)
	weekday = IsoWeekday(z)
	return
}
