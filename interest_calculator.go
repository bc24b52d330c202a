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

package gicbank

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/blnkfinance/gicbank/internal/dateutil"
	"github.com/blnkfinance/gicbank/model"
)

// InterestCalculator computes simple daily interest for one account over one
// calendar month, splitting the month wherever a new rule takes effect before
// a transaction.
type InterestCalculator struct {
	rules *RuleBook
}

func NewInterestCalculator(rules *RuleBook) *InterestCalculator {
	return &InterestCalculator{rules: rules}
}

// accrual is the walk state: the rule currently applied and the first day of
// the interval that is still open.
type accrual struct {
	account   *Account
	month     dateutil.Month
	rule      *model.InterestRule
	start     int
	intervals []model.RateInterval
}

// close emits [a.start, end] under the current rule, priced at the
// end-of-day balance of its closing day, and opens the next interval at end+1.
func (a *accrual) close(end int) {
	endDate := a.month.Date(end)
	a.intervals = append(a.intervals, model.RateInterval{
		Start:   a.month.Date(a.start),
		End:     endDate,
		Days:    end - a.start + 1,
		Balance: a.account.EndOfDayBalance(endDate),
		Rate:    a.rule.Rate,
		RuleID:  a.rule.RuleID,
	})
	a.start = end + 1
}

// pendingRule returns the next rule if it changes the rate strictly before
// the month's last day, nil otherwise.
func (c *InterestCalculator) pendingRule(a *accrual) *model.InterestRule {
	next := c.rules.RuleAfter(a.rule)
	if next == nil || next.Date >= a.month.LastDate() {
		return nil
	}
	return next
}

// Intervals partitions month into rate intervals. The walk consumes distinct
// transaction dates in order; a rule change only splits the month once a
// later transaction date is reached. It returns nil when no rule is in
// effect on the month's first day.
func (c *InterestCalculator) Intervals(account *Account, month dateutil.Month) []model.RateInterval {
	rule, err := c.rules.RuleInEffectOn(month.FirstDate())
	if err != nil || rule == nil {
		return nil
	}

	a := &accrual{account: account, month: month, rule: rule, start: 1}

	for _, date := range distinctDates(account.TransactionsInMonth(month)) {
		next := c.pendingRule(a)
		if next == nil {
			break
		}
		if date <= next.Date {
			continue
		}

		for next != nil && next.Date < date {
			a.close(dateutil.Day(next.Date) - 1)
			a.rule = next
			next = c.pendingRule(a)
		}
		a.close(dateutil.Day(date) - 1)
	}

	a.close(month.LastDay())
	return a.intervals
}

// Calculate returns the total interest accrued by account in month.
func (c *InterestCalculator) Calculate(account *Account, month dateutil.Month) decimal.Decimal {
	intervals := c.Intervals(account, month)
	daysInYear := decimal.NewFromInt(int64(month.DaysInYear()))

	total := decimal.Zero
	for _, interval := range intervals {
		dailyRate := interval.Rate.Div(hundred).Div(daysInYear)
		total = total.Add(interval.Balance.Mul(dailyRate).Mul(decimal.NewFromInt(int64(interval.Days))))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.AccountID,
		"month":      month.String(),
		"intervals":  len(intervals),
		"interest":   total.String(),
	}).Debug("interest calculated")

	return total
}

func distinctDates(transactions []model.Transaction) []string {
	var dates []string
	for _, txn := range transactions {
		if len(dates) > 0 && dates[len(dates)-1] == txn.Date {
			continue
		}
		dates = append(dates, txn.Date)
	}
	return dates
}
