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

func (a *Api) GetAllAccounts(c *gin.Context) {
	var ids []string
	a.withBank(func(b *gicbank.Bank) {
		ids = b.Accounts()
	})

	c.JSON(http.StatusOK, ids)
}

func (a *Api) GetAccount(c *gin.Context) {
	id, passed := c.Params.Get("id")
	if !passed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required. pass id in the route /:id"})
		return
	}

	var (
		resp model2.AccountResponse
		err  error
	)
	a.withBank(func(b *gicbank.Bank) {
		var account *gicbank.Account
		if account, err = b.GetAccount(id); err == nil {
			resp = model2.AccountResponse{
				AccountID:    account.AccountID,
				Balance:      account.Balance(),
				Transactions: account.Transactions(),
			}
		}
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetStatement returns the monthly statement as JSON, or as the printed table
// when called with ?format=text.
func (a *Api) GetStatement(c *gin.Context) {
	id := c.Param("id")
	month := c.Param("month")

	var (
		statement *model.Statement
		err       error
	)
	a.withBank(func(b *gicbank.Bank) {
		statement, err = b.Statement(id, month)
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, "%s", gicbank.FormatStatement(statement))
		return
	}
	c.JSON(http.StatusOK, statement)
}

func (a *Api) GetInterest(c *gin.Context) {
	id := c.Param("id")
	month := c.Param("month")

	resp := model2.InterestResponse{AccountID: id, Month: month}
	var err error
	a.withBank(func(b *gicbank.Bank) {
		if resp.Intervals, err = b.InterestIntervals(id, month); err != nil {
			return
		}
		resp.Interest, err = b.CalculateInterest(id, month)
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
