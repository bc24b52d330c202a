/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package dateutil holds the date helpers used by the ledger. Dates travel as
// fixed-width YYYYMMDD strings and months as YYYYMM strings, so ordering is a
// plain string comparison.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blnkfinance/gicbank/internal/apierror"
)

const (
	DateLength  = 8
	MonthLength = 6
)

func wrongInput(input string) error {
	return apierror.NewAPIError(apierror.ErrWrongInput, apierror.MsgWrongInput, input)
}

// positiveInt parses s[from:to] as a positive integer, tolerating inputs
// shorter than the requested window.
func positiveInt(s string, from, to int) (int, bool) {
	if from >= len(s) {
		return 0, false
	}
	if to > len(s) {
		to = len(s)
	}
	n, err := strconv.Atoi(s[from:to])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func isLeapYear(year int) bool {
	return year%400 == 0 || (year%100 != 0 && year%4 == 0)
}

// DaysInYear returns 366 or 365 for the year in the first four characters of
// a date or month.
func DaysInYear(input string) (int, error) {
	year, ok := positiveInt(input, 0, 4)
	if !ok {
		return 0, wrongInput(input)
	}
	if isLeapYear(year) {
		return 366, nil
	}
	return 365, nil
}

// LastDayOfMonth returns the number of days in the month named by the first
// six characters of input. Months past December roll into the next year.
func LastDayOfMonth(input string) (int, error) {
	year, ok := positiveInt(input, 0, 4)
	if !ok {
		return 0, wrongInput(input)
	}
	month, ok := positiveInt(input, 4, 6)
	if !ok {
		return 0, wrongInput(input)
	}
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsValidDate is a structural check only: eight digits. Calendar validity is
// not checked, so 20230632 passes.
func IsValidDate(input string) bool {
	return len(input) == DateLength && isDigits(input)
}

// IsValidMonth reports whether input is six digits.
func IsValidMonth(input string) bool {
	return len(input) == MonthLength && isDigits(input)
}

func NormalizeWhitespace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// Day returns the day-of-month part of a YYYYMMDD date.
func Day(date string) int {
	day, _ := strconv.Atoi(date[MonthLength:DateLength])
	return day
}

// Month is a parsed YYYYMM value.
type Month struct {
	raw        string
	lastDay    int
	daysInYear int
}

// ParseMonth accepts a month or a full date and keeps the YYYYMM prefix.
func ParseMonth(input string) (Month, error) {
	if len(input) < MonthLength || !isDigits(input[:MonthLength]) {
		return Month{}, wrongInput(input)
	}
	raw := input[:MonthLength]
	lastDay, err := LastDayOfMonth(raw)
	if err != nil {
		return Month{}, err
	}
	daysInYear, err := DaysInYear(raw)
	if err != nil {
		return Month{}, err
	}
	return Month{raw: raw, lastDay: lastDay, daysInYear: daysInYear}, nil
}

func (m Month) String() string {
	return m.raw
}

func (m Month) LastDay() int {
	return m.lastDay
}

func (m Month) DaysInYear() int {
	return m.daysInYear
}

// Date formats day as a YYYYMMDD date in this month.
func (m Month) Date(day int) string {
	return fmt.Sprintf("%s%02d", m.raw, day)
}

func (m Month) FirstDate() string {
	return m.Date(1)
}

func (m Month) LastDate() string {
	return m.Date(m.lastDay)
}

func (m Month) Contains(date string) bool {
	return strings.HasPrefix(date, m.raw)
}
