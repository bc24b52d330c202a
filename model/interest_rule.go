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

// InterestRule is the annual rate, in percent, effective from Date until the
// next rule takes over.
type InterestRule struct {
	Date   string          `json:"date"`
	RuleID string          `json:"rule_id"`
	Rate   decimal.Decimal `json:"rate"`
}

// RateInterval is a stretch of days inside one month over which both the
// balance and the rate stay constant. Start and End are inclusive.
type RateInterval struct {
	Start   string          `json:"start"`
	End     string          `json:"end"`
	Days    int             `json:"days"`
	Balance decimal.Decimal `json:"balance"`
	Rate    decimal.Decimal `json:"rate"`
	RuleID  string          `json:"rule_id"`
}
