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

func (a *Api) RecordTransaction(c *gin.Context) {
	var newTransaction model2.RecordTransaction
	if err := c.ShouldBindJSON(&newTransaction); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := newTransaction.ValidateRecordTransaction(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	var (
		resp *model.Transaction
		err  error
	)
	a.withBank(func(b *gicbank.Bank) {
		resp, err = b.SubmitTransaction(newTransaction.Command())
	})
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := resp.ToJSON()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"errors": err.Error()})
		return
	}

	c.Data(http.StatusCreated, "application/json; charset=utf-8", data)
}
