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

	"github.com/gin-gonic/gin"

	gicbank "github.com/blnkfinance/gicbank"
	model2 "github.com/blnkfinance/gicbank/api/model"
	"github.com/blnkfinance/gicbank/model"
)

func (a *Api) CreateInterestRule(c *gin.Context) {
	var newRule model2.CreateInterestRule
	if err := c.ShouldBindJSON(&newRule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := newRule.ValidateCreateInterestRule(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	var (
		rules []model.InterestRule
		err   error
	)
	a.withBank(func(b *gicbank.Bank) {
		if err = b.DefineInterestRule(newRule.Command()); err == nil {
			rules = b.Rules()
		}
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rules)
}

func (a *Api) GetInterestRules(c *gin.Context) {
	var rules []model.InterestRule
	a.withBank(func(b *gicbank.Bank) {
		rules = b.Rules()
	})

	c.JSON(http.StatusOK, rules)
}
