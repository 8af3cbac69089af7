// Command tender-validate checks payment input from the command line and
// prints every validation problem at once, the same behavior a web layer in
// front of the core would give a user in a single response.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tender/internal/payment/metrics"
	"tender/internal/payment/models"
	"tender/internal/payment/service"
	"tender/pkg/requestclock"
	"tender/pkg/validation"
)

// envOr lets every flag default come from the environment, so the command
// works both interactively and from scripted pipelines.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func main() {
	var (
		amount  = flag.String("amount", envOr("TENDER_AMOUNT", ""), "payment amount, e.g. 99.99")
		method  = flag.String("method", envOr("TENDER_METHOD", "cash"), "payment method: cash, credit_card or check")
		number  = flag.String("card-number", "", "card number, spaces allowed")
		month   = flag.Int("expiry-month", 0, "card expiry month (1-12)")
		year    = flag.Int("expiry-year", 0, "card expiry year")
		cvv     = flag.String("cvv", "", "card verification value")
		routing = flag.String("routing-number", "", "ABA routing number")
		account = flag.String("account-number", "", "bank account number")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	svc := service.New(service.WithLogger(logger), service.WithMetrics(metrics.New()))

	req := service.CreatePaymentRequest{Amount: *amount, Method: models.MethodKind(*method)}
	switch req.Method {
	case models.MethodKindCreditCard:
		req.Card = &service.CardInput{Number: *number, ExpiryMonth: *month, ExpiryYear: *year, CVV: *cvv}
	case models.MethodKindCheck:
		req.Check = &service.CheckInput{RoutingNumber: *routing, AccountNumber: *account}
	}

	ctx := requestclock.WithTime(context.Background(), time.Now())
	payment, err := svc.CreatePayment(ctx, req)
	if err != nil {
		list, _ := validation.AsErrors(err)
		fmt.Fprintf(os.Stderr, "invalid payment, %d problem(s):\n", len(list))
		for _, fe := range list {
			fmt.Fprintf(os.Stderr, "  %-16s %-10s %s\n", fe.Field, fe.Rule, fe.Message)
		}
		os.Exit(1)
	}

	fmt.Printf("payment %s: %s via %s\n", payment.ID(), payment.Amount(), payment.Method().Kind())
}
