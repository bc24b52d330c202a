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
	"sync"

	"github.com/gin-gonic/gin"

	gicbank "github.com/blnkfinance/gicbank"
	"github.com/blnkfinance/gicbank/api/middleware"
	"github.com/blnkfinance/gicbank/config"
	"github.com/blnkfinance/gicbank/internal/apierror"
)

// Api exposes a Bank over HTTP. The bank itself is single-threaded, so every
// handler runs under mu.
type Api struct {
	bank   *gicbank.Bank
	router *gin.Engine
	mu     sync.Mutex
}

func (a *Api) Router() *gin.Engine {
	router := a.router
	router.POST("/transactions", a.RecordTransaction)

	router.POST("/interest-rules", a.CreateInterestRule)
	router.GET("/interest-rules", a.GetInterestRules)

	router.GET("/accounts", a.GetAllAccounts)
	router.GET("/accounts/:id", a.GetAccount)
	router.GET("/accounts/:id/statements/:month", a.GetStatement)
	router.GET("/accounts/:id/interest/:month", a.GetInterest)
	return a.router
}

func NewAPI(b *gicbank.Bank) *Api {
	gin.SetMode(gin.ReleaseMode)
	conf, err := config.Fetch()
	if err != nil {
		return nil
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.RateLimitMiddleware(conf))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "server running...")
	})

	return &Api{bank: b, router: r}
}

// withBank runs fn while holding the bank lock.
func (a *Api) withBank(fn func(b *gicbank.Bank)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(a.bank)
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(apierror.MapErrorToHTTPStatus(err), gin.H{"error": err})
}
