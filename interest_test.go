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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blnkfinance/gicbank/internal/apierror"
)

func referenceRuleBook(t *testing.T) *RuleBook {
	t.Helper()
	rb := NewRuleBook()
	require.NoError(t, rb.Upsert("20230101", "RULE01", dec("1.95")))
	require.NoError(t, rb.Upsert("20230520", "RULE02", dec("1.90")))
	require.NoError(t, rb.Upsert("20230615", "RULE03", dec("2.20")))
	require.NoError(t, rb.Upsert("20230701", "RULE03", dec("2.40")))
	return rb
}

func TestRuleBookUpsert(t *testing.T) {
	rb := NewRuleBook()
	require.NoError(t, rb.Upsert("20230101", "RULE01", dec("1.95")))
	require.Equal(t, 1, rb.Len())

	rules := rb.Rules()
	assert.Equal(t, "20230101", rules[0].Date)
	assert.Equal(t, "RULE01", rules[0].RuleID)
	assert.True(t, rules[0].Rate.Equal(dec("1.95")))

	require.NoError(t, rb.Upsert("20230101", "RULE01B", dec("2.10")))
	assert.Equal(t, 1, rb.Len(), "same date replaces")
	rules = rb.Rules()
	assert.Equal(t, "RULE01B", rules[0].RuleID)
	assert.True(t, rules[0].Rate.Equal(dec("2.1")))
}

func TestRuleBookKeepsDateOrder(t *testing.T) {
	rb := NewRuleBook()
	for _, date := range []string{"20230615", "20230101", "20231231", "20230520"} {
		require.NoError(t, rb.Upsert(date, "R"+date, dec("1")))
	}

	var dates []string
	for _, rule := range rb.Rules() {
		dates = append(dates, rule.Date)
	}
	assert.Equal(t, []string{"20230101", "20230520", "20230615", "20231231"}, dates)
}

func TestRuleBookUpsertRejectsRate(t *testing.T) {
	rb := NewRuleBook()
	for _, rate := range []string{"0", "-1", "100", "100.01"} {
		err := rb.Upsert("20230101", "RULE01", dec(rate))
		assert.Equal(t, apierror.ErrInvalidRate, apierror.CodeOf(err), rate)
	}
	assert.Equal(t, 0, rb.Len())

	assert.NoError(t, rb.Upsert("20230101", "RULE01", dec("0.01")))
	assert.NoError(t, rb.Upsert("20230102", "RULE02", dec("99.99")))
}

func TestRuleBookRuleInEffectOn(t *testing.T) {
	rb := referenceRuleBook(t)

	tests := []struct {
		date   string
		wantID string
		rate   string
	}{
		{"20230601", "RULE02", "1.90"},
		{"20230615", "RULE03", "2.20"},
		{"20230626", "RULE03", "2.20"},
		{"20230701", "RULE03", "2.40"},
		{"20230101", "RULE01", "1.95"},
		{"20240101", "RULE03", "2.40"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			rule, err := rb.RuleInEffectOn(tt.date)
			require.NoError(t, err)
			require.NotNil(t, rule)
			assert.Equal(t, tt.wantID, rule.RuleID)
			assert.True(t, rule.Rate.Equal(dec(tt.rate)))
		})
	}

	rule, err := rb.RuleInEffectOn("20221231")
	require.NoError(t, err)
	assert.Nil(t, rule)
}

func TestRuleBookRuleInEffectOnEmpty(t *testing.T) {
	rule, err := NewRuleBook().RuleInEffectOn("20230601")
	assert.NoError(t, err)
	assert.Nil(t, rule)
}

func TestRuleBookRuleAfter(t *testing.T) {
	rb := referenceRuleBook(t)

	first, err := rb.RuleInEffectOn("20230101")
	require.NoError(t, err)

	next := rb.RuleAfter(first)
	require.NotNil(t, next)
	assert.Equal(t, "20230520", next.Date)

	last, err := rb.RuleInEffectOn("20230701")
	require.NoError(t, err)
	assert.Nil(t, rb.RuleAfter(last))
	assert.Nil(t, rb.RuleAfter(nil))
}
