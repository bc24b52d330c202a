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
	"encoding/json"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RecordTransaction accepts the amount either as a JSON number or as a
// numeric string so that values such as "100.00" keep their scale.
type RecordTransaction struct {
	Date      string      `json:"date"`
	AccountID string      `json:"account_id"`
	Type      string      `json:"type"`
	Amount    json.Number `json:"amount"`
}

func (t *RecordTransaction) ValidateRecordTransaction() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Date, validation.Required, dateRule),
		validation.Field(&t.AccountID, validation.Required, idRule),
		validation.Field(&t.Type, validation.Required, validation.In("D", "W").Error("must be D or W")),
		validation.Field(&t.Amount, validation.Required),
	)
}

// Command renders the payload as the "<Date> <Account> <Type> <Amount>" line
// the bank parses.
func (t *RecordTransaction) Command() string {
	return strings.Join([]string{t.Date, t.AccountID, t.Type, t.Amount.String()}, " ")
}
