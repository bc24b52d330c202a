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
	"fmt"
	"strings"

	"github.com/blnkfinance/gicbank/model"
)

const (
	receiptHeader   = "| Date     | Txn Id      | Type | Amount |"
	statementHeader = "| Date     | Txn Id      | Type | Amount | Balance |"
	rulesTitle      = "Interest rules:"
	rulesHeader     = "| Date     | RuleId | Rate (%) |"

	// blankTxnID fills the Txn Id column of the interest row.
	blankTxnID = "           "
)

// FormatReceipt renders the confirmation printed after a transaction is
// accepted.
func FormatReceipt(txn *model.Transaction) string {
	lines := []string{
		fmt.Sprintf("Account: %s", txn.AccountID),
		receiptHeader,
		fmt.Sprintf("| %s | %s | %-3s  | %6s |", txn.Date, txn.TransactionID, txn.Type, model.FormatAmount(txn.Amount)),
	}
	return strings.Join(lines, "\n")
}

func formatStatementRow(txn model.Transaction) string {
	txnID := txn.TransactionID
	if txnID == "" {
		txnID = blankTxnID
	}
	return fmt.Sprintf("| %s | %s | %-4s | %6s | %7s |",
		txn.Date, txnID, txn.Type, model.FormatAmount(txn.Amount), model.FormatAmount(txn.Balance))
}

// FormatStatement renders a monthly statement followed by its interest row.
func FormatStatement(statement *model.Statement) string {
	lines := []string{
		fmt.Sprintf("Account: %s", statement.AccountID),
		statementHeader,
	}
	for _, txn := range statement.Transactions {
		lines = append(lines, formatStatementRow(txn))
	}
	lines = append(lines, formatStatementRow(statement.InterestLine()))
	return strings.Join(lines, "\n")
}

func FormatRules(rules []model.InterestRule) string {
	lines := []string{rulesTitle, rulesHeader}
	for _, rule := range rules {
		lines = append(lines, fmt.Sprintf("| %s | %s | %8s |", rule.Date, rule.RuleID, model.FormatAmount(rule.Rate)))
	}
	return strings.Join(lines, "\n")
}
