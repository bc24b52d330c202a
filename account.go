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

	"github.com/shopspring/decimal"

	"github.com/blnkfinance/gicbank/internal/apierror"
	"github.com/blnkfinance/gicbank/internal/dateutil"
	"github.com/blnkfinance/gicbank/model"
)

// Account is one customer's ledger: the date-ordered transaction history and
// the running balance.
type Account struct {
	AccountID    string
	balance      decimal.Decimal
	transactions []*model.Transaction
}

func NewAccount(accountID string) *Account {
	return &Account{AccountID: accountID, balance: decimal.Zero}
}

// Balance returns the running balance, i.e. the snapshot of the most recently
// recorded transaction.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// nextTransactionID numbers the transaction among those already recorded on
// the same date for this account.
func (a *Account) nextTransactionID(date string) string {
	count := 0
	for _, txn := range a.transactions {
		if txn.Date == date {
			count++
		}
	}
	return model.SequencedID(date, count+1)
}

// Record applies a deposit or withdrawal and inserts it into the history.
// Amount validation happens in Bank; solvency is enforced here. A withdrawal
// is rejected when the balance is less than or equal to the amount, so an
// account can never be drawn down to exactly zero.
func (a *Account) Record(date string, txnType model.TransactionType, amount decimal.Decimal) (*model.Transaction, error) {
	if txnType == model.Withdrawal && a.balance.LessThanOrEqual(amount) {
		return nil, apierror.NewAPIError(apierror.ErrInsufficientFunds, apierror.MsgInsufficientFunds, map[string]string{
			"account_id": a.AccountID,
			"balance":    a.balance.String(),
			"amount":     amount.String(),
		})
	}

	newBalance := a.balance.Add(amount)
	if txnType == model.Withdrawal {
		newBalance = a.balance.Sub(amount)
	}

	txn := &model.Transaction{
		TransactionID: a.nextTransactionID(date),
		AccountID:     a.AccountID,
		Date:          date,
		Type:          txnType,
		Amount:        amount,
		Balance:       newBalance,
	}

	a.transactions = append(a.transactions, txn)
	sort.SliceStable(a.transactions, func(i, j int) bool {
		return a.transactions[i].Date < a.transactions[j].Date
	})
	a.balance = newBalance

	return txn, nil
}

// Transactions returns a copy of the full history in date order.
func (a *Account) Transactions() []model.Transaction {
	out := make([]model.Transaction, 0, len(a.transactions))
	for _, txn := range a.transactions {
		out = append(out, *txn)
	}
	return out
}

// TransactionsInMonth returns the transactions dated in month, in date order.
func (a *Account) TransactionsInMonth(month dateutil.Month) []model.Transaction {
	var out []model.Transaction
	for _, txn := range a.transactions {
		if month.Contains(txn.Date) {
			out = append(out, *txn)
		}
	}
	return out
}

// EndOfDayBalance returns the balance snapshot of the last transaction dated
// on or before date, or zero when there is none.
func (a *Account) EndOfDayBalance(date string) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range a.transactions {
		if txn.Date > date {
			break
		}
		balance = txn.Balance
	}
	return balance
}
