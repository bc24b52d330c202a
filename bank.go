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
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/blnkfinance/gicbank/internal/apierror"
	"github.com/blnkfinance/gicbank/internal/dateutil"
	"github.com/blnkfinance/gicbank/model"
)

// Bank owns every account ledger and the bank-wide rule book. It is not safe
// for concurrent use; callers serving several goroutines must serialise.
type Bank struct {
	accounts   map[string]*Account
	rules      *RuleBook
	calculator *InterestCalculator
}

// NewBank creates an empty bank with no accounts and no interest rules.
func NewBank() *Bank {
	rules := NewRuleBook()
	return &Bank{
		accounts:   make(map[string]*Account),
		rules:      rules,
		calculator: NewInterestCalculator(rules),
	}
}

// commandFields normalises a raw command and splits it into exactly n
// positional fields. Missing fields come back empty; extra ones are ignored.
func commandFields(raw string, n int) ([]string, bool) {
	normalized := dateutil.NormalizeWhitespace(raw)
	if normalized == "" {
		return nil, false
	}
	fields := make([]string, n)
	copy(fields, strings.Split(normalized, " "))
	return fields, true
}

// SubmitTransaction parses "<Date> <Account> <Type> <Amount>" and records it
// against the account, creating the account on first use.
func (b *Bank) SubmitTransaction(raw string) (*model.Transaction, error) {
	fields, ok := commandFields(raw, 4)
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, apierror.MsgInvalidInput, raw)
	}
	date, accountID, typeCode, amountStr := fields[0], fields[1], fields[2], fields[3]

	if !dateutil.IsValidDate(date) {
		return nil, apierror.NewAPIError(apierror.ErrInvalidDate, apierror.MsgInvalidDate, date)
	}

	amount, ok := model.ParseAmount(amountStr)
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrInvalidAmount, apierror.MsgInvalidAmount, amountStr)
	}

	txnType, ok := model.ParseTransactionType(typeCode)
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrInvalidType, apierror.MsgInvalidType, typeCode)
	}

	txn, err := b.GetOrCreateAccount(accountID).Record(date, txnType, amount)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": txn.AccountID,
		"txn_id":     txn.TransactionID,
		"type":       txn.Type,
		"amount":     txn.Amount.String(),
		"balance":    txn.Balance.String(),
	}).Debug("transaction recorded")

	return txn, nil
}

// DefineInterestRule parses "<Date> <RuleId> <Rate>" and upserts the rule.
func (b *Bank) DefineInterestRule(raw string) error {
	fields, ok := commandFields(raw, 3)
	if !ok {
		return apierror.NewAPIError(apierror.ErrInvalidInput, apierror.MsgInvalidInput, raw)
	}
	date, ruleID, rateStr := fields[0], fields[1], fields[2]

	if !dateutil.IsValidDate(date) {
		return apierror.NewAPIError(apierror.ErrInvalidDate, apierror.MsgInvalidDate, date)
	}

	rate, ok := model.ParseRate(rateStr)
	if !ok {
		return apierror.NewAPIError(apierror.ErrInvalidRate, apierror.MsgInvalidRate, rateStr)
	}

	if err := b.rules.Upsert(date, ruleID, rate); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"date":    date,
		"rule_id": ruleID,
		"rate":    rate.String(),
		"rules":   b.rules.Len(),
	}).Debug("interest rule defined")

	return nil
}

func (b *Bank) GetAccount(accountID string) (*Account, error) {
	account, ok := b.accounts[accountID]
	if !ok {
		return nil, apierror.NewAPIError(apierror.ErrAccountNotFound, apierror.MsgAccountNotFound, accountID)
	}
	return account, nil
}

func (b *Bank) GetOrCreateAccount(accountID string) *Account {
	account, ok := b.accounts[accountID]
	if !ok {
		account = NewAccount(accountID)
		b.accounts[accountID] = account
		logrus.WithField("account_id", accountID).Debug("account opened")
	}
	return account
}

// Accounts returns the known account ids in sorted order.
func (b *Bank) Accounts() []string {
	ids := make([]string, 0, len(b.accounts))
	for id := range b.accounts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (b *Bank) Rules() []model.InterestRule {
	return b.rules.Rules()
}

// RuleInEffectOn exposes the rule book lookup for a single date.
func (b *Bank) RuleInEffectOn(date string) (*model.InterestRule, error) {
	return b.rules.RuleInEffectOn(date)
}

// RulesListing renders every rule in effective-date order.
func (b *Bank) RulesListing() string {
	return FormatRules(b.rules.Rules())
}

// accountMonth resolves the account and month a statement query refers to.
func (b *Bank) accountMonth(accountID, month string) (*Account, dateutil.Month, error) {
	account, err := b.GetAccount(accountID)
	if err != nil {
		return nil, dateutil.Month{}, err
	}
	if !dateutil.IsValidMonth(month) {
		return nil, dateutil.Month{}, apierror.NewAPIError(apierror.ErrInvalidMonth, apierror.MsgInvalidMonth, month)
	}
	m, err := dateutil.ParseMonth(month)
	if err != nil {
		return nil, dateutil.Month{}, err
	}
	return account, m, nil
}

func (b *Bank) EndOfDayBalance(accountID, date string) (decimal.Decimal, error) {
	account, err := b.GetAccount(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.EndOfDayBalance(date), nil
}

func (b *Bank) CalculateInterest(accountID, month string) (decimal.Decimal, error) {
	account, m, err := b.accountMonth(accountID, month)
	if err != nil {
		return decimal.Zero, err
	}
	return b.calculator.Calculate(account, m), nil
}

// InterestIntervals returns the rate intervals the month's interest is
// accrued over.
func (b *Bank) InterestIntervals(accountID, month string) ([]model.RateInterval, error) {
	account, m, err := b.accountMonth(accountID, month)
	if err != nil {
		return nil, err
	}
	return b.calculator.Intervals(account, m), nil
}

// Statement lists the account's transactions for month and closes with the
// interest accrued over the month, dated the month's last day.
func (b *Bank) Statement(accountID, month string) (*model.Statement, error) {
	account, m, err := b.accountMonth(accountID, month)
	if err != nil {
		return nil, err
	}

	interest := b.calculator.Calculate(account, m)
	transactions := account.TransactionsInMonth(m)

	// The interest row closes on the last balance printed above it, or zero
	// when the month has no transactions.
	closing := decimal.Zero
	if len(transactions) > 0 {
		closing = transactions[len(transactions)-1].Balance
	}

	return &model.Statement{
		AccountID:    account.AccountID,
		Month:        m.String(),
		Transactions: transactions,
		InterestDate: m.LastDate(),
		Interest:     interest,
		Balance:      closing.Add(interest),
	}, nil
}

// PrintStatement renders Statement as the fixed-width table.
func (b *Bank) PrintStatement(accountID, month string) (string, error) {
	statement, err := b.Statement(accountID, month)
	if err != nil {
		return "", err
	}
	return FormatStatement(statement), nil
}
