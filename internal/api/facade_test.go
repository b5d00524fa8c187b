package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the last routed request so tests can assert on the
// exact method, path and query the facade produced.
type recorder struct {
	method string
	path   string
	query  url.Values
}

func (rec *recorder) capture(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		next(w, r)
	}
}

func respond(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
}

func newFacadeFixture(t *testing.T) (*Client, *recorder) {
	t.Helper()

	rec := &recorder{}
	r := chi.NewRouter()
	r.Get("/api/customers/search", rec.capture(respond([]Customer{{ID: 2, Name: "Sunil"}})))
	r.Delete("/api/customers/{id}", rec.capture(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	r.Get("/api/digital-prints/{id}", rec.capture(respond(DigitalPrint{ID: 4, JobName: "Banner", Material: "FLEX", Quality: "PASS_6"})))
	r.Get("/api/sublimation-prints/current-price/{type}", rec.capture(respond(SublimationPrice{SublimationType: "MUG", UnitPrice: 650, Active: true})))
	r.Get("/api/expenses/search", rec.capture(respond([]Expense{})))
	r.Put("/api/recurring-expenses/{id}/toggle-active", rec.capture(respond(RecurringExpense{ID: 5, Active: false})))
	r.Put("/api/monthly-expense-entries/{id}/mark-paid", rec.capture(respond(MonthlyExpenseEntry{ID: 3, PaymentStatus: PaymentPaid})))
	r.Get("/api/monthly-expense-entries/total/{year}/{month}", rec.capture(respond(42750.5)))
	r.Put("/api/loan-payments/{id}/mark-paid", rec.capture(respond(LoanPayment{ID: 9, Status: LoanPaymentPaid})))
	r.Get("/api/loans/status/{status}", rec.capture(respond([]Loan{{ID: 1, Status: LoanActive}})))
	r.Get("/api/audit-logs", rec.capture(respond(AuditLogPage{
		Content:       []AuditLog{{ID: 1, EntityType: "LOAN", Action: "UPDATE"}},
		TotalElements: 120,
	})))

	return newTestClient(t, r), rec
}

func TestSearchCustomers(t *testing.T) {
	client, rec := newFacadeFixture(t)

	out, err := client.SearchCustomers(context.Background(), "Sun")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/api/customers/search", rec.path)
	assert.Equal(t, "Sun", rec.query.Get("name"))
	require.Len(t, out, 1)
	assert.Equal(t, "Sunil", out[0].Name)
}

func TestDeleteCustomer(t *testing.T) {
	client, rec := newFacadeFixture(t)

	require.NoError(t, client.DeleteCustomer(context.Background(), 7))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/api/customers/7", rec.path)
}

func TestGetDigitalPrint(t *testing.T) {
	client, rec := newFacadeFixture(t)

	job, err := client.GetDigitalPrint(context.Background(), 4)
	require.NoError(t, err)

	assert.Equal(t, "/api/digital-prints/4", rec.path)
	assert.Equal(t, "Banner", job.JobName)
	assert.True(t, job.Material.Valid())
	assert.True(t, job.Quality.Valid())
}

func TestCurrentSublimationPrice(t *testing.T) {
	client, rec := newFacadeFixture(t)

	price, err := client.CurrentSublimationPrice(context.Background(), "MUG")
	require.NoError(t, err)

	assert.Equal(t, "/api/sublimation-prints/current-price/MUG", rec.path)
	assert.Equal(t, 650.0, price.UnitPrice)
}

func TestSearchExpenses_OmitsZeroFilters(t *testing.T) {
	client, rec := newFacadeFixture(t)

	_, err := client.SearchExpenses(context.Background(), ExpenseSearch{
		Description: "ink",
		StartDate:   NewDate(2026, time.August, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, "ink", rec.query.Get("description"))
	assert.Equal(t, "2026-08-01", rec.query.Get("startDate"))
	assert.False(t, rec.query.Has("expenseType"))
	assert.False(t, rec.query.Has("paymentStatus"))
	assert.False(t, rec.query.Has("endDate"))
}

func TestToggleRecurringExpenseActive(t *testing.T) {
	client, rec := newFacadeFixture(t)

	out, err := client.ToggleRecurringExpenseActive(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/recurring-expenses/5/toggle-active", rec.path)
	assert.False(t, out.Active)
}

func TestMarkEntryPaid_DateAsQueryParam(t *testing.T) {
	client, rec := newFacadeFixture(t)

	_, err := client.MarkEntryPaid(context.Background(), 3, NewDate(2026, time.August, 31))
	require.NoError(t, err)

	assert.Equal(t, "/api/monthly-expense-entries/3/mark-paid", rec.path)
	assert.Equal(t, "2026-08-31", rec.query.Get("paymentDate"))
}

func TestMarkEntryPaid_ZeroDateOmitted(t *testing.T) {
	client, rec := newFacadeFixture(t)

	_, err := client.MarkEntryPaid(context.Background(), 3, Date{})
	require.NoError(t, err)

	assert.False(t, rec.query.Has("paymentDate"))
}

func TestTotalForMonth(t *testing.T) {
	client, rec := newFacadeFixture(t)

	total, err := client.TotalForMonth(context.Background(), 2026, 8)
	require.NoError(t, err)

	assert.Equal(t, "/api/monthly-expense-entries/total/2026/8", rec.path)
	assert.Equal(t, 42750.5, total)
}

func TestMarkLoanPaymentPaid_QueryParams(t *testing.T) {
	client, rec := newFacadeFixture(t)

	paid, err := client.MarkLoanPaymentPaid(context.Background(), 9, NewDate(2026, time.August, 15), "BANK_TRANSFER", "TXN-1001")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/api/loan-payments/9/mark-paid", rec.path)
	assert.Equal(t, "2026-08-15", rec.query.Get("paymentDate"))
	assert.Equal(t, "BANK_TRANSFER", rec.query.Get("paymentMethod"))
	assert.Equal(t, "TXN-1001", rec.query.Get("transactionReference"))
	assert.Equal(t, LoanPaymentPaid, paid.Status)
}

func TestLoansByStatus(t *testing.T) {
	client, rec := newFacadeFixture(t)

	loans, err := client.LoansByStatus(context.Background(), LoanActive)
	require.NoError(t, err)

	assert.Equal(t, "/api/loans/status/ACTIVE", rec.path)
	require.Len(t, loans, 1)
}

func TestAuditLogs_PaginationAndFilters(t *testing.T) {
	client, rec := newFacadeFixture(t)

	page, err := client.AuditLogs(context.Background(), AuditLogQuery{
		Page:       2,
		Size:       50,
		EntityType: "LOAN",
	})
	require.NoError(t, err)

	assert.Equal(t, "2", rec.query.Get("page"))
	assert.Equal(t, "50", rec.query.Get("size"))
	assert.Equal(t, "LOAN", rec.query.Get("entityType"))
	assert.False(t, rec.query.Has("userId"))
	assert.False(t, rec.query.Has("action"))
	assert.EqualValues(t, 120, page.TotalElements)
	require.Len(t, page.Content, 1)
}
