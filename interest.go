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

var hundred = decimal.NewFromInt(100)

// RuleBook holds the bank-wide interest rules, at most one per effective
// date, kept in ascending date order.
type RuleBook struct {
	rules []*model.InterestRule
}

func NewRuleBook() *RuleBook {
	return &RuleBook{}
}

// Upsert defines the rule effective on date, replacing any rule already
// defined for that date.
func (rb *RuleBook) Upsert(date, ruleID string, rate decimal.Decimal) error {
	if !rate.IsPositive() || rate.GreaterThanOrEqual(hundred) {
		return apierror.NewAPIError(apierror.ErrInvalidRate, apierror.MsgInvalidRate, rate.String())
	}

	rule := &model.InterestRule{Date: date, RuleID: ruleID, Rate: rate}
	replaced := false
	for i, existing := range rb.rules {
		if existing.Date == date {
			rb.rules[i] = rule
			replaced = true
			break
		}
	}
	if !replaced {
		rb.rules = append(rb.rules, rule)
	}

	sort.SliceStable(rb.rules, func(i, j int) bool {
		return rb.rules[i].Date < rb.rules[j].Date
	})
	return nil
}

// RuleInEffectOn returns the latest rule dated on or before date. Rules dated
// after the last day of date's month are never considered. It returns nil
// when no rule qualifies.
func (rb *RuleBook) RuleInEffectOn(date string) (*model.InterestRule, error) {
	if len(rb.rules) == 0 {
		return nil, nil
	}
	month, err := dateutil.ParseMonth(date)
	if err != nil {
		return nil, err
	}
	lastDate := month.LastDate()

	for i := len(rb.rules) - 1; i >= 0; i-- {
		rule := rb.rules[i]
		if rule.Date > lastDate || rule.Date > date {
			continue
		}
		return rule, nil
	}
	return nil, nil
}

// RuleAfter returns the rule that follows rule in date order, or nil when
// rule is the latest one.
func (rb *RuleBook) RuleAfter(rule *model.InterestRule) *model.InterestRule {
	if rule == nil {
		return nil
	}
	idx := sort.Search(len(rb.rules), func(i int) bool {
		return rb.rules[i].Date > rule.Date
	})
	if idx >= len(rb.rules) {
		return nil
	}
	return rb.rules[idx]
}

// Rules returns a copy of the book in date order.
func (rb *RuleBook) Rules() []model.InterestRule {
	out := make([]model.InterestRule, 0, len(rb.rules))
	for _, rule := range rb.rules {
		out = append(out, *rule)
	}
	return out
}

func (rb *RuleBook) Len() int {
	return len(rb.rules)
}
