package domain

// RentState classifies how much of a period's rent has been covered.
type RentState string

const (
	RentStatePaid    RentState = "PAID"
	RentStatePartial RentState = "PARTIAL"
	RentStateUnpaid  RentState = "UNPAID"
)

// LedgerEntry is one payment record as seen by the evaluator.
type LedgerEntry struct {
	Amount float64
	Status PaymentStatus
}

// EvaluateLedger sums the PAID entries for a single lease and billing period
// and classifies the result against the monthly rent. Callers fetch and scope
// the entries; an empty or nil slice yields (0, UNPAID).
func EvaluateLedger(monthlyRent float64, entries []LedgerEntry) (paidTotal float64, state RentState) {
	for _, entry := range entries {
		if entry.Status == PaymentStatusPaid {
			paidTotal += entry.Amount
		}
	}
	switch {
	case paidTotal <= 0:
		return paidTotal, RentStateUnpaid
	case paidTotal >= monthlyRent:
		return paidTotal, RentStatePaid
	default:
		return paidTotal, RentStatePartial
	}
}

// ClassifyPaidTotal classifies an already-summed paid amount. Aggregated
// queries (landlord overview) land here instead of re-fetching rows.
func ClassifyPaidTotal(monthlyRent, paidTotal float64) RentState {
	switch {
	case paidTotal <= 0:
		return RentStateUnpaid
	case paidTotal >= monthlyRent:
		return RentStatePaid
	default:
		return RentStatePartial
	}
}

// OutstandingBalance is the remaining amount a gateway charge should collect,
// floored at zero. Charges are skipped entirely when this is not positive.
func OutstandingBalance(monthlyRent, paidTotal float64) float64 {
	if remaining := monthlyRent - paidTotal; remaining > 0 {
		return remaining
	}
	return 0
}
