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

import "github.com/shopspring/decimal"

type Statement struct {
	AccountID    string          `json:"account_id"`
	Month        string          `json:"month"`
	Transactions []Transaction   `json:"transactions"`
	InterestDate string          `json:"interest_date"`
	Interest     decimal.Decimal `json:"interest"`
	Balance      decimal.Decimal `json:"balance"`
}

// InterestLine returns the synthetic interest row closing the statement.
func (s *Statement) InterestLine() Transaction {
	return Transaction{
		AccountID: s.AccountID,
		Date:      s.InterestDate,
		Type:      Interest,
		Amount:    s.Interest,
		Balance:   s.Balance,
	}
}
