// Copyright 2016 - 2024 The excelize Authors. All rights reserved. Use of
// this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package xlsxwriter

import (
	"strconv"
	"strings"
	"time"
)

// daysFromCivil converts a proleptic-Gregorian (y, m, d) date into a day
// count relative to 1970-01-01, using Howard Hinnant's well-known
// constant-time civil-calendar algorithm. It is valid for any year,
// including the ones Excel's serial-date arithmetic cares about.
func daysFromCivil(y int, m int, d int) int64 {
	yy := int64(y)
	if m <= 2 {
		yy--
	}
	era := yy
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := yy - era*400
	var mp int64
	if int64(m) > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// excel1900Epoch is daysFromCivil(1899, 12, 31): the zero point of Excel's
// default date system, before applying the false-1900-leap-year offset.
var excel1900Epoch = daysFromCivil(1899, 12, 31)

// SerialDateTime converts a (year, month, day, hour, minute, second) civil
// time to an Excel serial date-time: the integer part counts days since
// the 1900 epoch (with Excel's false Feb-29-1900 leap day reproduced
// exactly), the fractional part is the time of day as a fraction of 24
// hours. Hour may exceed 23 to express a duration.
func SerialDateTime(year, month, day, hour, minute int, second float64) (float64, error) {
	if err := validateYMD(year, month, day); err != nil {
		return 0, err
	}
	if minute < 0 || minute > 59 {
		return 0, &XlsxError{Kind: ErrDateTimeRange, Message: "minute out of range"}
	}
	if second < 0 || second >= 60 {
		return 0, &XlsxError{Kind: ErrDateTimeRange, Message: "second out of range"}
	}

	serial := serialDateOnly(year, month, day)
	frac := (float64(hour)*3600 + float64(minute)*60 + second) / 86400.0
	return float64(serial) + frac, nil
}

// serialDateOnly returns the integer day count for (year, month, day),
// including the Excel 1900 false-leap-day quirk: Feb-29-1900 is treated as
// real (serial 60), and every date from Mar-1-1900 onward is shifted by
// one day relative to the real proleptic Gregorian calendar.
func serialDateOnly(year, month, day int) int64 {
	if year == 1900 && month == 2 && day == 29 {
		return 60
	}
	serial := daysFromCivil(year, month, day) - excel1900Epoch
	if year > 1900 || (year == 1900 && month >= 3) {
		serial++
	}
	return serial
}

func validateYMD(year, month, day int) error {
	if year == 1899 && month == 12 && day == 31 {
		return nil
	}
	if year < 1900 || year > 9999 {
		return &XlsxError{Kind: ErrDateTimeRange, Message: "year outside Excel range of 1900-9999"}
	}
	if month < 1 || month > 12 {
		return &XlsxError{Kind: ErrDateTimeRange, Message: "month out of range"}
	}
	if day < 1 || day > daysInMonth(year, month) {
		return &XlsxError{Kind: ErrDateTimeRange, Message: "day out of range"}
	}
	return nil
}

var daysInMonthTable = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	if month == 2 && (isLeapYear(year) || year == 1900) {
		// Excel's 1900 epoch treats February 1900 as having 29 days
		// (the false leap day); real leap years also get 29.
		return 29
	}
	return daysInMonthTable[month-1]
}

// SerialTime converts a time-of-day to an Excel serial value with a zero
// integer part, using 1899-12-31 as the implicit date.
func SerialTime(hour, minute int, second float64) (float64, error) {
	return SerialDateTime(1899, 12, 31, hour, minute, second)
}

// SerialFromUnix converts a Unix timestamp (seconds since 1970-01-01
// UTC) to an Excel serial date-time.
func SerialFromUnix(timestamp int64) (float64, error) {
	t := time.Unix(timestamp, 0).UTC()
	return SerialDateTime(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), float64(t.Second()))
}

// ParseISO8601 parses a date, time, or date-time string in one of:
//
//	YYYY-MM-DD
//	HH:MM[:SS[.sss]]
//	YYYY-MM-DD[T ]HH:MM:SS[.sss][Z]
//
// and returns the equivalent Excel serial value.
func ParseISO8601(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	var datePart, timePart string
	switch {
	case len(s) >= 10 && s[4] == '-' && s[7] == '-':
		datePart = s[:10]
		if len(s) > 10 {
			rest := s[10:]
			if rest[0] == 'T' || rest[0] == ' ' {
				timePart = rest[1:]
			} else {
				return 0, &XlsxError{Kind: ErrDateTimeParse, Message: "invalid date-time separator in " + s}
			}
		}
	case strings.Contains(s, ":"):
		timePart = s
	default:
		return 0, &XlsxError{Kind: ErrDateTimeParse, Message: "unrecognized date-time format: " + s}
	}

	year, month, day := 1899, 12, 31
	if datePart != "" {
		var err error
		year, err = atoiStrict(datePart[0:4])
		if err != nil {
			return 0, dateParseErr(s)
		}
		month, err = atoiStrict(datePart[5:7])
		if err != nil {
			return 0, dateParseErr(s)
		}
		day, err = atoiStrict(datePart[8:10])
		if err != nil {
			return 0, dateParseErr(s)
		}
	}

	hour, minute, sec := 0, 0, 0.0
	if timePart != "" {
		fields := strings.Split(timePart, ":")
		if len(fields) < 2 {
			return 0, dateParseErr(s)
		}
		var err error
		hour, err = atoiStrict(fields[0])
		if err != nil {
			return 0, dateParseErr(s)
		}
		minute, err = atoiStrict(fields[1])
		if err != nil {
			return 0, dateParseErr(s)
		}
		if len(fields) == 3 {
			sec, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return 0, dateParseErr(s)
			}
		}
	}

	return SerialDateTime(year, month, day, hour, minute, sec)
}

func dateParseErr(s string) error {
	return &XlsxError{Kind: ErrDateTimeParse, Message: "could not parse date-time: " + s}
}

func atoiStrict(s string) (int, error) {
	return strconv.Atoi(s)
}

// NowUTC returns the current UTC time formatted per the RFC-3339 style
// docProps/core.xml expects for dcterms:created and dcterms:modified.
func NowUTC() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}
