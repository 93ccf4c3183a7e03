// Package main demonstrates usage of the scg-http-error package.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/next-trace/scg-http-error/httperror"
	"github.com/next-trace/scg-http-error/httperror/client"
	"github.com/next-trace/scg-http-error/httperror/server"
)

func main() {
	_ = httperror.RegisterMetrics(prometheus.DefaultRegisterer)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	requestID := uuid.NewString()

	// Named client subtype with overrides
	e := client.NotFound(
		httperror.WithMessage("customer 42 not found"),
		httperror.WithUserMessage("Customer not found"),
		httperror.WithDataKV("customer_id", "42"),
		httperror.WithDataKV("request_id", requestID),
	)
	fmt.Println(e.Error(), e.Status(), e.Code(), e.Category())

	// Response shaping for an HTTP layer
	body, _ := json.Marshal(e.Response())
	fmt.Println(string(body))

	// Server subtype wrapping a low-level cause
	cause := errors.New("dial tcp 10.0.0.7:5432: connect: connection refused")
	dbErr := server.Database(httperror.WithCause(cause))
	fmt.Println(errors.Is(dbErr, cause), httperror.Code(dbErr))

	// Structured logging via slog
	logger.Error("query failed", "err", dbErr, "request_id", requestID)

	// Wrapping arbitrary values
	wrapped := httperror.From("boom")
	fmt.Println(wrapped.Code(), wrapped.Data())

	// Status out of family range redirects to the other family
	redirected := client.BadRequest(httperror.WithStatus(http.StatusInternalServerError))
	fmt.Println(redirected.Category(), redirected.Status())
}
