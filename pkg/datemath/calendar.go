package datemath

import "time"

// daysIn returns the number of days in month m of year y.
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func lastDayOfMonth(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: daysIn(d.Year, d.Month)}
}

// mondayIndex maps a weekday to its Monday-origin index (Mon=0 ... Sun=6).
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// nextWeekday returns the first date on or after from that falls on target.
// When allowSame is false a match on from itself moves one week ahead.
func nextWeekday(from Date, target time.Weekday, allowSame bool) Date {
	diff := (int(target) - int(from.Weekday()) + 7) % 7
	if diff == 0 && !allowSame {
		diff = 7
	}
	return from.AddDays(diff)
}

// ensureFuture moves d forward exactly one year when it is before base.
// Feb 29 rolled into a common year becomes Feb 28.
func ensureFuture(base, d Date) Date {
	if !d.Before(base) {
		return d
	}
	year := d.Year + 1
	day := d.Day
	if last := daysIn(year, d.Month); day > last {
		day = last
	}
	return Date{Year: year, Month: d.Month, Day: day}
}
