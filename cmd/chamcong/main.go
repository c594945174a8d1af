// Command chamcong is the terminal front-end for the workforce client:
// check in and out against the company's attendance machines, browse
// attendance history, file leave and overtime requests and view payslips.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hrmviet/chamcong-go/internal/config"
	"github.com/hrmviet/chamcong-go/internal/domain/attendance"
	domainAuth "github.com/hrmviet/chamcong-go/internal/domain/auth"
	"github.com/hrmviet/chamcong-go/internal/domain/employee"
	domainLeave "github.com/hrmviet/chamcong-go/internal/domain/leave"
	"github.com/hrmviet/chamcong-go/internal/domain/machine"
	domainOvertime "github.com/hrmviet/chamcong-go/internal/domain/overtime"
	domainPayroll "github.com/hrmviet/chamcong-go/internal/domain/payroll"
	"github.com/hrmviet/chamcong-go/internal/domain/scan"
	"github.com/hrmviet/chamcong-go/internal/pkg/apiclient"
	"github.com/hrmviet/chamcong-go/internal/pkg/token"
	"github.com/hrmviet/chamcong-go/internal/repository/restapi"
	authService "github.com/hrmviet/chamcong-go/internal/service/auth"
	checkinService "github.com/hrmviet/chamcong-go/internal/service/checkin"
	historyService "github.com/hrmviet/chamcong-go/internal/service/history"
	leaveService "github.com/hrmviet/chamcong-go/internal/service/leave"
	overtimeService "github.com/hrmviet/chamcong-go/internal/service/overtime"
	payrollService "github.com/hrmviet/chamcong-go/internal/service/payroll"
	profileService "github.com/hrmviet/chamcong-go/internal/service/profile"
)

const usage = `Usage: chamcong <command> [flags]

Commands:
  login      log in with employee code and password
  logout     clear the stored session
  status     show geofence eligibility and today's shifts
  checkin    record an arrival scan
  checkout   record a departure scan
  shifts     list the company's work shifts
  history    list per-day attendance records
  calendar   show the monthly attendance calendar
  summary    show the monthly attendance summary
  leave      list or file leave requests
  overtime   list or file overtime requests
  payroll    list payslips or show one period
  profile    show or update the employee profile

Run 'chamcong <command> -h' for command flags.`

type app struct {
	cfg      *config.Config
	auth     domainAuth.AuthService
	checkin  attendance.CheckinService
	history  attendance.HistoryService
	leave    domainLeave.LeaveService
	overtime domainOvertime.OvertimeService
	payroll  domainPayroll.PayrollService
	employee employee.EmployeeService
	shifts   func(ctx context.Context) error
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	setupLogger(cfg.App.LogLevel)

	client := apiclient.New(cfg.API.BaseURL, cfg.API.Timeout, cfg.API.RateLimitRPS, cfg.API.RateLimitBurst)
	loc := cfg.Location()

	machineRepo := restapi.NewMachineRepository(client)
	shiftRepo := restapi.NewWorkShiftRepository(client)
	scanRepo := restapi.NewScanEventRepository(client, loc)
	authRepo := restapi.NewAuthRepository(client)
	employeeRepo := restapi.NewEmployeeRepository(client)
	leaveRepo := restapi.NewLeaveRepository(client)
	overtimeRepo := restapi.NewOvertimeRepository(client)
	payrollRepo := restapi.NewPayrollRepository(client)

	tokenStore := token.NewStore(cfg.App.TokenPath)
	authSvc := authService.NewAuthService(authRepo, tokenStore)
	client.SetTokenSource(authSvc)

	a := &app{
		cfg:      cfg,
		auth:     authSvc,
		checkin:  checkinService.NewCheckinService(machineRepo, shiftRepo, scanRepo, cfg.App.SnapshotTTL),
		history:  historyService.NewHistoryService(scanRepo, leaveRepo),
		leave:    leaveService.NewLeaveService(leaveRepo),
		overtime: overtimeService.NewOvertimeService(overtimeRepo),
		payroll:  payrollService.NewPayrollService(payrollRepo),
		employee: profileService.NewEmployeeService(employeeRepo),
	}
	a.shifts = func(ctx context.Context) error {
		shifts, err := shiftRepo.List(ctx)
		if err != nil {
			return err
		}
		for _, s := range shifts {
			fmt.Printf("%s  %s\n", s.ID, s.Name)
			for _, d := range s.Details {
				fmt.Printf("    %-10s %s - %s\n", d.DayOfWeek, d.StartTime, d.EndTime)
			}
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.API.Timeout)
	defer cancel()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	now := time.Now().In(a.cfg.Location())

	switch command {
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		return a.auth.Logout(ctx)
	case "status":
		return a.cmdStatus(ctx, args, now)
	case "checkin":
		return a.cmdScan(ctx, args, now, false)
	case "checkout":
		return a.cmdScan(ctx, args, now, true)
	case "shifts":
		return a.shifts(ctx)
	case "history":
		return a.cmdHistory(ctx, args, now)
	case "calendar":
		return a.cmdCalendar(ctx, args, now)
	case "summary":
		return a.cmdSummary(ctx, args, now)
	case "leave":
		return a.cmdLeave(ctx, args, now)
	case "overtime":
		return a.cmdOvertime(ctx, args, now)
	case "payroll":
		return a.cmdPayroll(ctx, args, now)
	case "profile":
		return a.cmdProfile(ctx, args)
	case "-h", "--help", "help":
		fmt.Println(usage)
		return nil
	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// locationFlags registers --lat/--lng and returns a getter producing nil
// when no fix was supplied, which the services treat as indeterminate.
func locationFlags(fs *flag.FlagSet) func() *machine.Coordinate {
	lat := fs.Float64("lat", 0, "current latitude")
	lng := fs.Float64("lng", 0, "current longitude")
	return func() *machine.Coordinate {
		supplied := false
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "lat" || f.Name == "lng" {
				supplied = true
			}
		})
		if !supplied {
			return nil
		}
		return &machine.Coordinate{Latitude: *lat, Longitude: *lng}
	}
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	code := fs.String("code", "", "employee code")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	err := a.auth.Login(ctx, domainAuth.LoginRequest{
		EmployeeCode: *code,
		Password:     *password,
	})
	if err != nil {
		return err
	}
	fmt.Println("Logged in.")
	return nil
}

func (a *app) cmdStatus(ctx context.Context, args []string, now time.Time) error {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	location := locationFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	status, err := a.checkin.Status(ctx, now, location())
	if err != nil {
		return err
	}

	switch {
	case !status.LocationKnown:
		fmt.Println("Location: unknown (pass --lat/--lng)")
	case status.InRange:
		fmt.Printf("Location: in range of %s\n", status.Machine.Name)
	default:
		fmt.Println("Location: outside all machine ranges")
	}

	if len(status.TodayShifts) == 0 {
		fmt.Println("No shifts scheduled today.")
	} else {
		fmt.Println("Today's shifts:")
		for _, s := range status.TodayShifts {
			fmt.Printf("  %s  %s\n", s.ID, s.Name)
		}
	}
	if len(status.CurrentShifts) > 0 {
		fmt.Println("Within check-in window now:")
		for _, s := range status.CurrentShifts {
			fmt.Printf("  %s  %s\n", s.ID, s.Name)
		}
	}
	return nil
}

func (a *app) cmdScan(ctx context.Context, args []string, now time.Time, departure bool) error {
	name := "checkin"
	if departure {
		name = "checkout"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	shiftID := fs.String("shift", "", "work shift id")
	location := locationFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := attendance.ActionRequest{
		ShiftID:  *shiftID,
		Location: location(),
		Now:      now,
	}

	var event scan.Event
	var err error
	if departure {
		event, err = a.checkin.CheckOut(ctx, req)
	} else {
		event, err = a.checkin.CheckIn(ctx, req)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s for shift %s at %s.\n",
		event.Type, event.ShiftName, event.ScanTime.Format("15:04"))
	return nil
}

func (a *app) cmdHistory(ctx context.Context, args []string, now time.Time) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	days := fs.Int("days", 30, "how many days back to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	daily, err := a.history.Daily(ctx, now.AddDate(0, 0, -*days), now)
	if err != nil {
		return err
	}

	for _, d := range daily {
		in, out := "--:--", "--:--"
		if d.CheckIn != nil {
			in = d.CheckIn.Format("15:04")
		}
		if d.CheckOut != nil {
			out = d.CheckOut.Format("15:04")
		}
		fmt.Printf("%s  %s - %s  %5.2fh  %s\n",
			d.Date.Format("2006-01-02"), in, out, d.WorkHours, d.ShiftName)
	}
	return nil
}

func monthFlags(fs *flag.FlagSet, now time.Time) (*int, *int) {
	year := fs.Int("year", now.Year(), "year")
	month := fs.Int("month", int(now.Month()), "month (1-12)")
	return year, month
}

func (a *app) cmdCalendar(ctx context.Context, args []string, now time.Time) error {
	fs := flag.NewFlagSet("calendar", flag.ExitOnError)
	year, month := monthFlags(fs, now)
	if err := fs.Parse(args); err != nil {
		return err
	}

	days, err := a.history.Calendar(ctx, *year, time.Month(*month))
	if err != nil {
		return err
	}
	for _, d := range days {
		fmt.Printf("%s  %s\n", d.Date.Format("2006-01-02"), d.Status)
	}
	return nil
}

func (a *app) cmdSummary(ctx context.Context, args []string, now time.Time) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	year, month := monthFlags(fs, now)
	if err := fs.Parse(args); err != nil {
		return err
	}

	sum, err := a.history.Summary(ctx, *year, time.Month(*month))
	if err != nil {
		return err
	}

	fmt.Printf("Work days:        %d\n", sum.TotalWorkDays)
	fmt.Printf("Estimated worked: %d\n", sum.EstimatedWorkedDays)
	fmt.Printf("Late arrivals:    %d (%d min)\n", sum.LateArrivalCount, sum.LateArrivalMinutes)
	fmt.Printf("Early departures: %d (%d min)\n", sum.EarlyDepartureCount, sum.EarlyDepartureMinutes)
	return nil
}

func (a *app) cmdLeave(ctx context.Context, args []string, now time.Time) error {
	fs := flag.NewFlagSet("leave", flag.ExitOnError)
	year := fs.Int("year", now.Year(), "year to list")
	leaveType := fs.String("type", "", "leave type (files a new request)")
	start := fs.String("start", "", "start date YYYY-MM-DD")
	end := fs.String("end", "", "end date YYYY-MM-DD")
	reason := fs.String("reason", "", "reason")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *leaveType != "" || *start != "" {
		created, err := a.leave.Create(ctx, domainLeave.CreateRequest{
			LeaveType: *leaveType,
			StartDate: *start,
			EndDate:   *end,
			Reason:    *reason,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Filed leave request %s (%s).\n", created.ID, created.Status)
		return nil
	}

	requests, err := a.leave.List(ctx, *year)
	if err != nil {
		return err
	}
	for _, r := range requests {
		fmt.Printf("%s  %s - %s  %-8s  %s\n",
			r.LeaveType,
			r.StartDate.Format("2006-01-02"), r.EndDate.Format("2006-01-02"),
			r.Status, r.Reason)
	}
	return nil
}

func (a *app) cmdOvertime(ctx context.Context, args []string, now time.Time) error {
	fs := flag.NewFlagSet("overtime", flag.ExitOnError)
	year := fs.Int("year", now.Year(), "year to list")
	date := fs.String("date", "", "date YYYY-MM-DD (files a new request)")
	start := fs.String("start", "", "start time HH:mm")
	end := fs.String("end", "", "end time HH:mm")
	reason := fs.String("reason", "", "reason")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *date != "" {
		created, err := a.overtime.Create(ctx, domainOvertime.CreateRequest{
			Date:      *date,
			StartTime: *start,
			EndTime:   *end,
			Reason:    *reason,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Filed overtime request %s (%s).\n", created.ID, created.Status)
		return nil
	}

	requests, err := a.overtime.List(ctx, *year)
	if err != nil {
		return err
	}
	for _, r := range requests {
		fmt.Printf("%s  %s - %s  %-8s  %s\n", r.Date, r.StartTime, r.EndTime, r.Status, r.Reason)
	}
	return nil
}

func (a *app) cmdPayroll(ctx context.Context, args []string, now time.Time) error {
	fs := flag.NewFlagSet("payroll", flag.ExitOnError)
	year := fs.Int("year", now.Year(), "year to list")
	period := fs.String("period", "", "show one period YYYY-MM")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *period != "" {
		p, err := a.payroll.Get(ctx, *period)
		if err != nil {
			return err
		}
		fmt.Printf("Period:       %s\n", p.Period)
		fmt.Printf("Base salary:  %s\n", formatVND(p.BaseSalary))
		fmt.Printf("Allowance:    %s\n", formatVND(p.Allowance))
		fmt.Printf("Overtime pay: %s\n", formatVND(p.OvertimePay))
		fmt.Printf("Deductions:   %s\n", formatVND(p.Deductions))
		fmt.Printf("Net pay:      %s\n", formatVND(p.NetPay))
		return nil
	}

	payslips, err := a.payroll.List(ctx, *year)
	if err != nil {
		return err
	}
	for _, p := range payslips {
		fmt.Printf("%s  net %s\n", p.Period, formatVND(p.NetPay))
	}
	return nil
}

func (a *app) cmdProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	fullName := fs.String("name", "", "new full name")
	email := fs.String("email", "", "new email")
	phone := fs.String("phone", "", "new phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var req employee.UpdateProfileRequest
	if *fullName != "" {
		req.FullName = fullName
	}
	if *email != "" {
		req.Email = email
	}
	if *phone != "" {
		req.Phone = phone
	}

	var p employee.Profile
	var err error
	if req.FullName != nil || req.Email != nil || req.Phone != nil {
		p, err = a.employee.UpdateProfile(ctx, req)
	} else {
		p, err = a.employee.Profile(ctx)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Name:       %s\n", p.FullName)
	fmt.Printf("Email:      %s\n", p.Email)
	fmt.Printf("Phone:      %s\n", p.Phone)
	fmt.Printf("Position:   %s\n", p.Position)
	fmt.Printf("Department: %s\n", p.Department)
	if p.JoinDate != "" {
		fmt.Printf("Joined:     %s\n", p.JoinDate)
	}
	return nil
}

// formatVND renders đồng amounts with dot thousand separators.
func formatVND(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out + " ₫"
}
