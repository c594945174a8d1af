package payroll

// Payslip is one month's payroll result, view-only on the client. Amounts
// stay in VND integer đồng; the backend owns all calculation.
type Payslip struct {
	Period      string `json:"period"` // YYYY-MM
	BaseSalary  int64  `json:"base_salary"`
	Allowance   int64  `json:"allowance"`
	OvertimePay int64  `json:"overtime_pay"`
	Deductions  int64  `json:"deductions"`
	NetPay      int64  `json:"net_pay"`
}
