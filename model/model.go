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

package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseTransactionType maps the single-letter command code to a TransactionType.
// Only an upper case "D" or "W" is accepted; interest rows cannot be entered by hand.
func ParseTransactionType(code string) (TransactionType, bool) {
	switch TransactionType(code) {
	case Deposit, Withdrawal:
		return TransactionType(code), true
	}
	return "", false
}

// ParseAmount parses a transaction amount. The amount must be a decimal
// strictly greater than zero.
func ParseAmount(input string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(input)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// ParseRate parses an annual rate in percent. The (0, 100) range is enforced
// by the rule book, not here.
func ParseRate(input string) (decimal.Decimal, bool) {
	rate, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, false
	}
	return rate, true
}

// FormatAmount renders a value the way statements print money and rates:
// two decimal places, rounded half away from zero.
func FormatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}

// SequencedID builds a transaction id from its date and its 1-based position
// among the account's transactions on that date.
func SequencedID(date string, sequence int) string {
	return fmt.Sprintf("%s-%02d", date, sequence)
}
