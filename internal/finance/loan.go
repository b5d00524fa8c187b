package finance

import (
	"math"
	"time"
)

// MaxPaymentNumber is the largest payment number the backend column can
// hold (signed 32-bit).
const MaxPaymentNumber = 2147483647

// MonthlyPayment computes the equated monthly installment for a loan.
// principal is the amount borrowed, annualRatePercent the yearly interest
// rate in percent and termMonths the repayment term.
//
// A zero principal, rate or term means the loan is not yet computable and
// yields 0. An interest-free loan repays straight line. Otherwise the
// standard amortizing-loan formula applies. The result is not rounded;
// display formatting is the caller's job.
func MonthlyPayment(principal, annualRatePercent float64, termMonths int) float64 {
	if principal == 0 || termMonths == 0 {
		return 0
	}

	r := annualRatePercent / 100 / 12
	if r == 0 {
		// Interest-free: straight-line repayment.
		return principal / float64(termMonths)
	}

	pow := math.Pow(1+r, float64(termMonths))
	return principal * (r * pow) / (pow - 1)
}

// ScheduledPayment is one installment of an amortization schedule.
type ScheduledPayment struct {
	Number    int
	DueDate   time.Time
	Amount    float64
	Interest  float64
	Principal float64
	Balance   float64
}

// Schedule expands a loan into its full amortization schedule, one payment
// per month starting one month after start. Each installment splits the
// fixed payment into interest on the outstanding balance and principal
// repayment. The final balance is forced to exactly zero so accumulated
// floating-point error never leaves a residual.
func Schedule(principal, annualRatePercent float64, termMonths int, start time.Time) []ScheduledPayment {
	payment := MonthlyPayment(principal, annualRatePercent, termMonths)
	if payment == 0 {
		return nil
	}

	r := annualRatePercent / 100 / 12
	balance := principal
	schedule := make([]ScheduledPayment, 0, termMonths)
	for n := 1; n <= termMonths; n++ {
		interest := balance * r
		repaid := payment - interest
		balance -= repaid
		if n == termMonths {
			balance = 0
		}
		schedule = append(schedule, ScheduledPayment{
			Number:    n,
			DueDate:   start.AddDate(0, n, 0),
			Amount:    payment,
			Interest:  interest,
			Principal: repaid,
			Balance:   balance,
		})
	}
	return schedule
}

// ClampPaymentNumber forces a payment number into the [1, MaxPaymentNumber]
// range accepted by the backend. Out-of-range values are clamped before
// submission rather than rejected.
func ClampPaymentNumber(n int64) int {
	if n < 1 {
		return 1
	}
	if n > MaxPaymentNumber {
		return MaxPaymentNumber
	}
	return int(n)
}
