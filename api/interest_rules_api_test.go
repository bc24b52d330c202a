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
package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model2 "github.com/blnkfinance/gicbank/api/model"
	"github.com/blnkfinance/gicbank/model"
)

func TestCreateInterestRule(t *testing.T) {
	router, _ := setupRouter()

	for _, rule := range []model2.CreateInterestRule{
		{Date: "20230615", RuleID: "RULE03", Rate: "2.20"},
		{Date: "20230101", RuleID: "RULE01", Rate: "1.95"},
	} {
		resp, err := SetUpTestRequest(TestRequest{
			Router:  router,
			Method:  http.MethodPost,
			Route:   "/interest-rules",
			Payload: payload(t, rule),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	var rules []model.InterestRule
	resp, err := SetUpTestRequest(TestRequest{
		Router:   router,
		Method:   http.MethodGet,
		Route:    "/interest-rules",
		Response: &rules,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Code)

	require.Len(t, rules, 2)
	assert.Equal(t, "RULE01", rules[0].RuleID)
	assert.Equal(t, "RULE03", rules[1].RuleID)
	assert.Equal(t, "2.20", model.FormatAmount(rules[1].Rate))
}

func TestCreateInterestRuleErrors(t *testing.T) {
	tests := []struct {
		name         string
		payload      model2.CreateInterestRule
		expectedCode int
	}{
		{"Missing rule id", model2.CreateInterestRule{Date: "20230615", Rate: "2.20"}, http.StatusBadRequest},
		{"Bad date", model2.CreateInterestRule{Date: "June", RuleID: "RULE03", Rate: "2.20"}, http.StatusBadRequest},
		{"Rate out of range", model2.CreateInterestRule{Date: "20230615", RuleID: "RULE03", Rate: "100"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, bank := setupRouter()

			resp, err := SetUpTestRequest(TestRequest{
				Router:  router,
				Method:  http.MethodPost,
				Route:   "/interest-rules",
				Payload: payload(t, tt.payload),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.Code)
			assert.Empty(t, bank.Rules())
		})
	}
}
