package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/darimac/printers-console/internal/finance"
	"github.com/darimac/printers-console/internal/pricing"
)

// Date is a calendar date serialized as yyyy-MM-dd, the format the backend
// uses for every date field.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date from a calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// String renders the wire format, or an empty string for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// PaymentStatus is the settlement state of a print job.
type PaymentStatus string

const (
	PaymentPaid          PaymentStatus = "PAID"
	PaymentUnpaid        PaymentStatus = "UNPAID"
	PaymentPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
)

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

const (
	LoanActive    LoanStatus = "ACTIVE"
	LoanCompleted LoanStatus = "COMPLETED"
	LoanDefaulted LoanStatus = "DEFAULTED"
	LoanSuspended LoanStatus = "SUSPENDED"
)

// LoanPaymentStatus is the settlement state of a single loan installment.
type LoanPaymentStatus string

const (
	LoanPaymentPaid          LoanPaymentStatus = "PAID"
	LoanPaymentUnpaid        LoanPaymentStatus = "UNPAID"
	LoanPaymentOverdue       LoanPaymentStatus = "OVERDUE"
	LoanPaymentPartiallyPaid LoanPaymentStatus = "PARTIALLY_PAID"
)

// Frequency is how often a recurring expense materializes.
type Frequency string

const (
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
	FrequencyYearly    Frequency = "YEARLY"
)

// Customer is a print-shop customer record.
type Customer struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// ExpenseLine is an itemized expense owned by exactly one print job;
// purely additive into job totals.
type ExpenseLine struct {
	ID          int64   `json:"id,omitempty"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// PricingLines converts job expense lines into the calculator's input.
func PricingLines(lines []ExpenseLine) []pricing.ExpenseLine {
	out := make([]pricing.ExpenseLine, len(lines))
	for i, l := range lines {
		out[i] = pricing.ExpenseLine{Description: l.Description, Amount: l.Amount}
	}
	return out
}

// DigitalPrint is a large-format digital print job. Its total amount is
// customer-entered; material cost and expenses are informational.
type DigitalPrint struct {
	ID                int64            `json:"id,omitempty"`
	JobName           string           `json:"jobName"`
	JobNumber         string           `json:"jobNumber,omitempty"`
	JobDescription    string           `json:"jobDescription,omitempty"`
	CustomerID        int64            `json:"customerId"`
	Material          pricing.Material `json:"material"`
	Quality           pricing.Quality  `json:"quality"`
	CostPerSqFt       float64          `json:"costPerSqFt"`
	SquareFeet        float64          `json:"squareFeet"`
	TotalMaterialCost float64          `json:"totalMaterialCost"`
	TotalAmount       float64          `json:"totalAmount"`
	PaymentStatus     PaymentStatus    `json:"paymentStatus,omitempty"`
	Expenses          []ExpenseLine    `json:"expenses,omitempty"`
}

// Validate checks the fields the form requires before submission.
func (p *DigitalPrint) Validate() error {
	if strings.TrimSpace(p.JobName) == "" {
		return fmt.Errorf("job name is required")
	}
	if p.CustomerID == 0 {
		return fmt.Errorf("customer is required")
	}
	if !p.Material.Valid() {
		return fmt.Errorf("unknown material %q", p.Material)
	}
	if !p.Quality.Valid() {
		return fmt.Errorf("unknown quality %q", p.Quality)
	}
	if p.SquareFeet <= 0 {
		return fmt.Errorf("square feet must be greater than 0")
	}
	if p.TotalAmount < 0 {
		return fmt.Errorf("total amount cannot be negative")
	}
	return nil
}

// OffsetPrint is an outsourced offset job priced cost-plus-markup on the
// supplier job amount.
type OffsetPrint struct {
	ID                int64         `json:"id,omitempty"`
	JobName           string        `json:"jobName"`
	CustomerID        int64         `json:"customerId"`
	SupplierID        int64         `json:"supplierId,omitempty"`
	JobType           string        `json:"jobType,omitempty"`
	Quantity          int           `json:"quantity"`
	SupplierJobAmount float64       `json:"supplierJobAmount"`
	ProfitPercentage  float64       `json:"profitPercentage"`
	TotalAmount       float64       `json:"totalAmount"`
	PaymentStatus     PaymentStatus `json:"paymentStatus,omitempty"`
	Expenses          []ExpenseLine `json:"expenses,omitempty"`
}

// Validate checks the fields the form requires before submission.
func (p *OffsetPrint) Validate() error {
	if strings.TrimSpace(p.JobName) == "" {
		return fmt.Errorf("job name is required")
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than 0")
	}
	if p.ProfitPercentage < 0 {
		return fmt.Errorf("profit percentage cannot be negative")
	}
	return nil
}

// DuploPrint is an in-house duplo job priced cost-plus-markup on an
// entered base cost.
type DuploPrint struct {
	ID               int64         `json:"id,omitempty"`
	JobName          string        `json:"jobName"`
	CustomerID       int64         `json:"customerId"`
	Quantity         int           `json:"quantity"`
	BaseCost         float64       `json:"baseCost"`
	ProfitPercentage float64       `json:"profitPercentage"`
	TotalAmount      float64       `json:"totalAmount"`
	PaymentStatus    PaymentStatus `json:"paymentStatus,omitempty"`
	Expenses         []ExpenseLine `json:"expenses,omitempty"`
}

// SublimationPrint is a sublimation job priced cost-plus-markup on
// quantity times unit price.
type SublimationPrint struct {
	ID               int64         `json:"id,omitempty"`
	JobName          string        `json:"jobName"`
	CustomerID       int64         `json:"customerId"`
	SublimationType  string        `json:"sublimationType"`
	Quantity         int           `json:"quantity"`
	UnitPrice        float64       `json:"unitPrice"`
	ProfitPercentage float64       `json:"profitPercentage"`
	TotalAmount      float64       `json:"totalAmount"`
	PaymentStatus    PaymentStatus `json:"paymentStatus,omitempty"`
	Expenses         []ExpenseLine `json:"expenses,omitempty"`
}

// Validate checks the fields the form requires before submission.
func (p *SublimationPrint) Validate() error {
	if strings.TrimSpace(p.JobName) == "" {
		return fmt.Errorf("job name is required")
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("quantity must be greater than 0")
	}
	if p.UnitPrice <= 0 {
		return fmt.Errorf("unit price must be greater than 0")
	}
	return nil
}

// SublimationPrice is one managed unit price for a sublimation type.
type SublimationPrice struct {
	ID              int64   `json:"id,omitempty"`
	SublimationType string  `json:"sublimationType"`
	UnitPrice       float64 `json:"unitPrice"`
	Active          bool    `json:"active"`
}

// Expense is a standalone business expense, independent of any print job.
type Expense struct {
	ID            int64         `json:"id,omitempty"`
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	ExpenseType   string        `json:"expenseType,omitempty"`
	SupplierID    int64         `json:"supplierId,omitempty"`
	GrnNumber     string        `json:"grnNumber,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	ExpenseDate   Date          `json:"expenseDate,omitempty"`
}

// ExpenseSearch filters the expense search endpoint. Zero fields are
// omitted from the query.
type ExpenseSearch struct {
	Description   string
	ExpenseType   string
	PaymentStatus PaymentStatus
	StartDate     Date
	EndDate       Date
}

// RecurringExpense is the template that spawns monthly expense entries.
type RecurringExpense struct {
	ID           int64     `json:"id,omitempty"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Amount       float64   `json:"amount"`
	Frequency    Frequency `json:"frequency"`
	StartDate    Date      `json:"startDate"`
	EndDate      Date      `json:"endDate,omitempty"`
	Active       bool      `json:"active"`
	AutoGenerate bool      `json:"autoGenerate"`
}

// Validate checks the fields the form requires before submission.
func (r *RecurringExpense) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Category) == "" {
		return fmt.Errorf("category is required")
	}
	if r.Amount <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	return nil
}

// MonthlyExpenseEntry is one period's materialized instance of a recurring
// expense, independently payable.
type MonthlyExpenseEntry struct {
	ID                 int64         `json:"id,omitempty"`
	RecurringExpenseID int64         `json:"recurringExpenseId"`
	Year               int           `json:"year"`
	Month              int           `json:"month"`
	Amount             float64       `json:"amount"`
	PaymentStatus      PaymentStatus `json:"paymentStatus"`
	DueDate            Date          `json:"dueDate,omitempty"`
	PaymentDate        Date          `json:"paymentDate,omitempty"`
}

// Loan is a borrowed amount repaid in monthly installments. Its monthly
// payment is always derived with finance.MonthlyPayment, never stored.
type Loan struct {
	ID              int64      `json:"id,omitempty"`
	Lender          string     `json:"lender"`
	LoanType        string     `json:"loanType,omitempty"`
	PrincipalAmount float64    `json:"principalAmount"`
	InterestRate    float64    `json:"interestRate"`
	LoanTermMonths  int        `json:"loanTermMonths"`
	StartDate       Date       `json:"startDate"`
	Status          LoanStatus `json:"status"`
	UserID          int64      `json:"userId,omitempty"`
}

// Validate enforces the loan invariants before submission.
func (l *Loan) Validate() error {
	if strings.TrimSpace(l.Lender) == "" {
		return fmt.Errorf("lender is required")
	}
	if l.PrincipalAmount <= 0 {
		return fmt.Errorf("principal must be greater than 0")
	}
	if l.InterestRate < 0 {
		return fmt.Errorf("interest rate cannot be negative")
	}
	if l.LoanTermMonths <= 0 {
		return fmt.Errorf("loan term must be at least 1 month")
	}
	return nil
}

// MonthlyPayment derives the loan's installment.
func (l *Loan) MonthlyPayment() float64 {
	return finance.MonthlyPayment(l.PrincipalAmount, l.InterestRate, l.LoanTermMonths)
}

// LoanPayment is one installment against a loan.
type LoanPayment struct {
	ID                   int64             `json:"id,omitempty"`
	LoanID               int64             `json:"loanId"`
	PaymentNumber        int               `json:"paymentNumber"`
	Amount               float64           `json:"amount"`
	DueDate              Date              `json:"dueDate"`
	Status               LoanPaymentStatus `json:"status"`
	PaymentMethod        string            `json:"paymentMethod,omitempty"`
	TransactionReference string            `json:"transactionReference,omitempty"`
	PaymentDate          Date              `json:"paymentDate,omitempty"`
}

// Normalize clamps the payment number into the backend's int32 column
// range before submission.
func (p *LoanPayment) Normalize() {
	p.PaymentNumber = finance.ClampPaymentNumber(int64(p.PaymentNumber))
}

// Validate checks the fields the form requires before submission.
func (p *LoanPayment) Validate() error {
	if p.LoanID == 0 {
		return fmt.Errorf("loan is required")
	}
	if p.Amount <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	if p.PaymentNumber < 1 || p.PaymentNumber > finance.MaxPaymentNumber {
		return fmt.Errorf("payment number must be between 1 and %d", finance.MaxPaymentNumber)
	}
	return nil
}

// AuditLog is one backend audit record.
type AuditLog struct {
	ID         int64     `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   int64     `json:"entityId"`
	Action     string    `json:"action"`
	UserID     int64     `json:"userId"`
	Username   string    `json:"username,omitempty"`
	Details    string    `json:"details,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// AuditLogPage is one page of audit results.
type AuditLogPage struct {
	Content       []AuditLog `json:"content"`
	TotalElements int64      `json:"totalElements"`
}

// AuditLogQuery filters the paginated audit endpoint.
type AuditLogQuery struct {
	Page       int
	Size       int
	EntityType string
	UserID     int64
	Action     string
	StartDate  Date
	EndDate    Date
}
