package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hrmviet/chamcong-go/internal/domain/payroll"
	"github.com/hrmviet/chamcong-go/internal/pkg/apiclient"
)

type payrollRepository struct {
	client *apiclient.Client
}

func NewPayrollRepository(client *apiclient.Client) payroll.PayrollRepository {
	return &payrollRepository{client: client}
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, year int) ([]payroll.Payslip, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))

	var payslips []payroll.Payslip
	if err := r.client.Get(ctx, "/api/v1/payrolls", query, &payslips); err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	return payslips, nil
}

// Get implements payroll.PayrollRepository.
func (r *payrollRepository) Get(ctx context.Context, period string) (payroll.Payslip, error) {
	var payslip payroll.Payslip
	if err := r.client.Get(ctx, "/api/v1/payrolls/"+url.PathEscape(period), nil, &payslip); err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return payslip, nil
}
