package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// StockQuote godoc
// @ID          stockQuote
// @Summary     Latest stock quote
// @Tags        Market
// @Produce     json
//
// @Param       symbol  query  string  true  "Ticker symbol"  example(IBM)
//
// @Success     200  {object}  market.Quote
// @Failure     400  {object}  handlers.ErrorResponse  "Missing symbol"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown symbol"
// @Failure     500  {object}  handlers.ErrorResponse  "Market data unavailable"
// @Router      /market-trends/stocks [get]
func (h *Handlers) StockQuote(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Query("symbol")))
	if symbol == "" {
		failDetails(c, http.StatusBadRequest, ErrCodeValidation, "request validation failed",
			[]FieldError{{Field: "symbol", Rule: "required", Message: "is required"}})
		return
	}
	q, err := h.market.Quote(c.Request.Context(), symbol)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, q)
}

// SearchSymbols godoc
// @ID          searchSymbols
// @Summary     Search ticker symbols
// @Tags        Market
// @Produce     json
//
// @Param       q  query  string  true  "Company name or symbol fragment"  example(micro)
//
// @Success     200  {array}   market.SearchResult
// @Failure     400  {object}  handlers.ErrorResponse  "Missing query"
// @Failure     500  {object}  handlers.ErrorResponse  "Market data unavailable"
// @Router      /market-trends/search [get]
func (h *Handlers) SearchSymbols(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		failDetails(c, http.StatusBadRequest, ErrCodeValidation, "request validation failed",
			[]FieldError{{Field: "q", Rule: "required", Message: "is required"}})
		return
	}
	out, err := h.market.Search(c.Request.Context(), q)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nonNil(out))
}
