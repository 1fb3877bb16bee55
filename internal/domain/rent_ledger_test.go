package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateLedgerFullPayment(t *testing.T) {
	paid, state := EvaluateLedger(1200, []LedgerEntry{
		{Amount: 1200, Status: PaymentStatusPaid},
	})
	assert.Equal(t, 1200.0, paid)
	assert.Equal(t, RentStatePaid, state)
}

func TestEvaluateLedgerPartialPayment(t *testing.T) {
	paid, state := EvaluateLedger(1200, []LedgerEntry{
		{Amount: 400, Status: PaymentStatusPaid},
	})
	assert.Equal(t, 400.0, paid)
	assert.Equal(t, RentStatePartial, state)
}

func TestEvaluateLedgerOverpaymentStaysPaid(t *testing.T) {
	paid, state := EvaluateLedger(1200, []LedgerEntry{
		{Amount: 800, Status: PaymentStatusPaid},
		{Amount: 800, Status: PaymentStatusPaid},
	})
	assert.Equal(t, 1600.0, paid)
	assert.Equal(t, RentStatePaid, state)
}

func TestEvaluateLedgerNoEntries(t *testing.T) {
	paid, state := EvaluateLedger(1200, nil)
	assert.Equal(t, 0.0, paid)
	assert.Equal(t, RentStateUnpaid, state)

	paid, state = EvaluateLedger(1200, []LedgerEntry{})
	assert.Equal(t, 0.0, paid)
	assert.Equal(t, RentStateUnpaid, state)
}

func TestEvaluateLedgerZeroPaidIsUnpaidRegardlessOfRent(t *testing.T) {
	_, state := EvaluateLedger(0, nil)
	assert.Equal(t, RentStateUnpaid, state)
}

func TestEvaluateLedgerIgnoresNonPaidEntries(t *testing.T) {
	paid, state := EvaluateLedger(1000, []LedgerEntry{
		{Amount: 500, Status: PaymentStatusPaid},
		{Amount: 500, Status: PaymentStatus("REFUNDED")},
	})
	assert.Equal(t, 500.0, paid)
	assert.Equal(t, RentStatePartial, state)
}

func TestEvaluateLedgerIsIdempotent(t *testing.T) {
	entries := []LedgerEntry{
		{Amount: 300, Status: PaymentStatusPaid},
		{Amount: 200, Status: PaymentStatusPaid},
	}
	paid1, state1 := EvaluateLedger(1000, entries)
	paid2, state2 := EvaluateLedger(1000, entries)
	assert.Equal(t, paid1, paid2)
	assert.Equal(t, state1, state2)
}

func TestClassifyPaidTotal(t *testing.T) {
	assert.Equal(t, RentStateUnpaid, ClassifyPaidTotal(1000, 0))
	assert.Equal(t, RentStatePartial, ClassifyPaidTotal(1000, 999.99))
	assert.Equal(t, RentStatePaid, ClassifyPaidTotal(1000, 1000))
	assert.Equal(t, RentStatePaid, ClassifyPaidTotal(1000, 1500))
}

func TestOutstandingBalanceFloorsAtZero(t *testing.T) {
	assert.Equal(t, 600.0, OutstandingBalance(1000, 400))
	assert.Equal(t, 0.0, OutstandingBalance(1000, 1000))
	assert.Equal(t, 0.0, OutstandingBalance(1000, 1400))
}
