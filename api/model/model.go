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
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/blnkfinance/gicbank/model"
)

var (
	dateRule = validation.Match(regexp.MustCompile(`^\d{8}$`)).Error("must be formatted as YYYYMMDD")
	idRule   = validation.Match(regexp.MustCompile(`^\S+$`)).Error("must not contain whitespace")
)

type AccountResponse struct {
	AccountID    string              `json:"account_id"`
	Balance      decimal.Decimal     `json:"balance"`
	Transactions []model.Transaction `json:"transactions"`
}

type InterestResponse struct {
	AccountID string               `json:"account_id"`
	Month     string               `json:"month"`
	Interest  decimal.Decimal      `json:"interest"`
	Intervals []model.RateInterval `json:"intervals"`
}
