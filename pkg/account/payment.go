package account

import (
	"context"

	"fable/pkg/domain"
)

// PaymentProvider is the capability boundary for plan purchases. The mock
// implementation approves everything; swapping in a real processor does not
// touch the ledger or the pipeline.
type PaymentProvider interface {
	Charge(ctx context.Context, email string, tier domain.PlanTier) error
}

// MockPayment approves every charge.
type MockPayment struct{}

func NewMockPayment() *MockPayment {
	return &MockPayment{}
}

func (MockPayment) Charge(context.Context, string, domain.PlanTier) error {
	return nil
}
