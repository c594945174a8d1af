package payroll

import "context"

// PayrollRepository reads payslips computed by the backend.
type PayrollRepository interface {
	List(ctx context.Context, year int) ([]Payslip, error)
	Get(ctx context.Context, period string) (Payslip, error)
}
