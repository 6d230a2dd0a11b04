package services

import (
	"math/rand"

	"github.com/sony/gobreaker"
)

const txnAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// PaymentGateway simulates a flaky external payment processor: roughly 90%
// of charges complete, the rest fail. The circuit breaker keeps the call
// path identical to a real gateway integration.
type PaymentGateway struct {
	breaker   *gobreaker.CircuitBreaker
	randFloat func() float64
	randInt   func(n int) int
}

func NewPaymentGateway(breaker *gobreaker.CircuitBreaker) *PaymentGateway {
	return &PaymentGateway{
		breaker:   breaker,
		randFloat: rand.Float64,
		randInt:   rand.Intn,
	}
}

type chargeResult struct {
	TransactionID string
	Status        string
}

// Charge returns the fabricated transaction id and the outcome status.
func (g *PaymentGateway) Charge(amount float64, method string) (string, string, error) {
	res, err := g.breaker.Execute(func() (interface{}, error) {
		status := "completed"
		if g.randFloat() <= 0.1 {
			status = "failed"
		}
		return chargeResult{
			TransactionID: g.transactionID(),
			Status:        status,
		}, nil
	})
	if err != nil {
		return "", "", err
	}
	charge := res.(chargeResult)
	return charge.TransactionID, charge.Status, nil
}

func (g *PaymentGateway) transactionID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = txnAlphabet[g.randInt(len(txnAlphabet))]
	}
	return "TXN" + string(b)
}
