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

type CreateInterestRule struct {
	Date   string      `json:"date"`
	RuleID string      `json:"rule_id"`
	Rate   json.Number `json:"rate"`
}

func (r *CreateInterestRule) ValidateCreateInterestRule() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Date, validation.Required, dateRule),
		validation.Field(&r.RuleID, validation.Required, idRule),
		validation.Field(&r.Rate, validation.Required),
	)
}

// Command renders the payload as the "<Date> <RuleId> <Rate>" line the bank
// parses.
func (r *CreateInterestRule) Command() string {
	return strings.Join([]string{r.Date, r.RuleID, r.Rate.String()}, " ")
}
