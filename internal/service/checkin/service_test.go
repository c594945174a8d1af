package checkin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrmviet/chamcong-go/internal/domain/attendance"
	"github.com/hrmviet/chamcong-go/internal/domain/machine"
	"github.com/hrmviet/chamcong-go/internal/domain/scan"
	"github.com/hrmviet/chamcong-go/internal/domain/shift"
)

var office = machine.Coordinate{Latitude: 10.762622, Longitude: 106.660172}

type fakeMachineRepo struct {
	machines []machine.Machine
	err      error
	calls    int
}

func (f *fakeMachineRepo) List(ctx context.Context) ([]machine.Machine, error) {
	f.calls++
	return f.machines, f.err
}

type fakeShiftRepo struct {
	shifts []shift.WorkShift
	err    error
	calls  int
}

func (f *fakeShiftRepo) List(ctx context.Context) ([]shift.WorkShift, error) {
	f.calls++
	return f.shifts, f.err
}

type fakeScanRepo struct {
	submitted []scan.SubmitRequest
	err       error
}

func (f *fakeScanRepo) ListRange(ctx context.Context, from, to time.Time) ([]scan.Event, error) {
	return nil, nil
}

func (f *fakeScanRepo) Submit(ctx context.Context, req scan.SubmitRequest) (scan.Event, error) {
	f.submitted = append(f.submitted, req)
	if f.err != nil {
		return scan.Event{}, f.err
	}
	return scan.Event{
		Date:      req.At,
		ScanTime:  req.At,
		Type:      req.Type,
		ShiftName: req.ShiftName,
	}, nil
}

// monday is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2026, time.August, 24, hour, minute, 0, 0, time.UTC)
}

func testFixtures() (*fakeMachineRepo, *fakeShiftRepo, *fakeScanRepo) {
	machines := &fakeMachineRepo{machines: []machine.Machine{
		{ID: "m1", Name: "Máy chấm công 1", Coordinate: office, AllowedRadiusMeters: 100},
	}}
	shifts := &fakeShiftRepo{shifts: []shift.WorkShift{
		{
			ID:   "morning",
			Name: "Ca sáng",
			Details: []shift.ShiftDetail{
				{DayOfWeek: "Thứ hai", StartTime: "08:00", EndTime: "17:00"},
			},
		},
	}}
	return machines, shifts, &fakeScanRepo{}
}

func newService(m *fakeMachineRepo, s *fakeShiftRepo, sc *fakeScanRepo) attendance.CheckinService {
	return NewCheckinService(m, s, sc, time.Minute)
}

func TestStatusWithoutLocation(t *testing.T) {
	svc := newService(testFixtures())

	status, err := svc.Status(context.Background(), monday(8, 0), nil)
	require.NoError(t, err)
	assert.False(t, status.LocationKnown)
	assert.False(t, status.InRange)
	assert.Nil(t, status.Machine)
	require.Len(t, status.TodayShifts, 1)
	require.Len(t, status.CurrentShifts, 1)
	assert.Equal(t, "morning", status.CurrentShifts[0].ID)
}

func TestStatusInRange(t *testing.T) {
	svc := newService(testFixtures())

	loc := office
	status, err := svc.Status(context.Background(), monday(8, 0), &loc)
	require.NoError(t, err)
	assert.True(t, status.LocationKnown)
	assert.True(t, status.InRange)
	require.NotNil(t, status.Machine)
	assert.Equal(t, "m1", status.Machine.ID)
}

func TestStatusOutOfRange(t *testing.T) {
	svc := newService(testFixtures())

	far := machine.Coordinate{Latitude: office.Latitude + 0.01, Longitude: office.Longitude}
	status, err := svc.Status(context.Background(), monday(8, 0), &far)
	require.NoError(t, err)
	assert.True(t, status.LocationKnown)
	assert.False(t, status.InRange)
}

func TestStatusPropagatesFetchErrors(t *testing.T) {
	machines, shifts, scans := testFixtures()
	machines.err = errors.New("backend down")
	svc := newService(machines, shifts, scans)

	_, err := svc.Status(context.Background(), monday(8, 0), nil)
	assert.Error(t, err)
}

func TestStatusUsesSnapshotCache(t *testing.T) {
	machines, shifts, scans := testFixtures()
	svc := newService(machines, shifts, scans)

	_, err := svc.Status(context.Background(), monday(8, 0), nil)
	require.NoError(t, err)
	_, err = svc.Status(context.Background(), monday(8, 1), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, machines.calls)
	assert.Equal(t, 1, shifts.calls)
}

func TestCheckInGate(t *testing.T) {
	loc := office
	far := machine.Coordinate{Latitude: office.Latitude + 0.01, Longitude: office.Longitude}

	cases := []struct {
		name    string
		req     attendance.ActionRequest
		wantErr error
	}{
		{
			name:    "no location",
			req:     attendance.ActionRequest{ShiftID: "morning", Now: monday(8, 0)},
			wantErr: attendance.ErrLocationUnavailable,
		},
		{
			name:    "no shift selected",
			req:     attendance.ActionRequest{Location: &loc, Now: monday(8, 0)},
			wantErr: attendance.ErrNoShiftSelected,
		},
		{
			name:    "outside radius",
			req:     attendance.ActionRequest{ShiftID: "morning", Location: &far, Now: monday(8, 0)},
			wantErr: attendance.ErrOutsideAllowedRadius,
		},
		{
			name:    "unknown shift",
			req:     attendance.ActionRequest{ShiftID: "night", Location: &loc, Now: monday(8, 0)},
			wantErr: shift.ErrShiftNotFound,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			machines, shifts, scans := testFixtures()
			svc := newService(machines, shifts, scans)

			_, err := svc.CheckIn(context.Background(), c.req)
			assert.ErrorIs(t, err, c.wantErr)
			assert.Empty(t, scans.submitted)
		})
	}
}

func TestCheckInEmptyMachineRegistry(t *testing.T) {
	machines, shifts, scans := testFixtures()
	machines.machines = nil
	svc := newService(machines, shifts, scans)

	loc := office
	_, err := svc.CheckIn(context.Background(), attendance.ActionRequest{
		ShiftID:  "morning",
		Location: &loc,
		Now:      monday(8, 0),
	})
	assert.ErrorIs(t, err, machine.ErrNoMachines)
}

func TestCheckInOnTime(t *testing.T) {
	machines, shifts, scans := testFixtures()
	svc := newService(machines, shifts, scans)

	loc := office
	event, err := svc.CheckIn(context.Background(), attendance.ActionRequest{
		ShiftID:  "morning",
		Location: &loc,
		Now:      monday(7, 55),
	})
	require.NoError(t, err)
	assert.Equal(t, scan.TypeArrival, event.Type)

	require.Len(t, scans.submitted, 1)
	sub := scans.submitted[0]
	assert.Equal(t, "m1", sub.MachineID)
	assert.Equal(t, "morning", sub.ShiftID)
	assert.Equal(t, "Ca sáng", sub.ShiftName)
}

func TestCheckInLate(t *testing.T) {
	machines, shifts, scans := testFixtures()
	svc := newService(machines, shifts, scans)

	loc := office
	event, err := svc.CheckIn(context.Background(), attendance.ActionRequest{
		ShiftID:  "morning",
		Location: &loc,
		Now:      monday(8, 20),
	})
	require.NoError(t, err)
	assert.Equal(t, scan.TypeLateArrival, event.Type)
}

func TestCheckOutEarly(t *testing.T) {
	machines, shifts, scans := testFixtures()
	svc := newService(machines, shifts, scans)

	loc := office
	event, err := svc.CheckOut(context.Background(), attendance.ActionRequest{
		ShiftID:  "morning",
		Location: &loc,
		Now:      monday(16, 30),
	})
	require.NoError(t, err)
	assert.Equal(t, scan.TypeEarlyDeparture, event.Type)
}

func TestCheckOutOnTime(t *testing.T) {
	machines, shifts, scans := testFixtures()
	svc := newService(machines, shifts, scans)

	loc := office
	event, err := svc.CheckOut(context.Background(), attendance.ActionRequest{
		ShiftID:  "morning",
		Location: &loc,
		Now:      monday(17, 5),
	})
	require.NoError(t, err)
	assert.Equal(t, scan.TypeDeparture, event.Type)
}

func TestCheckInShiftWithoutTodayDetail(t *testing.T) {
	// Sunday; the morning shift only runs on Monday, so the scan counts
	// as on-time.
	machines, shifts, scans := testFixtures()
	svc := newService(machines, shifts, scans)

	loc := office
	sunday := time.Date(2026, time.August, 23, 8, 30, 0, 0, time.UTC)
	event, err := svc.CheckIn(context.Background(), attendance.ActionRequest{
		ShiftID:  "morning",
		Location: &loc,
		Now:      sunday,
	})
	require.NoError(t, err)
	assert.Equal(t, scan.TypeArrival, event.Type)
}

func TestCheckInMalformedShiftTime(t *testing.T) {
	machines, shifts, scans := testFixtures()
	shifts.shifts[0].Details[0].StartTime = "8h00"
	svc := newService(machines, shifts, scans)

	loc := office
	_, err := svc.CheckIn(context.Background(), attendance.ActionRequest{
		ShiftID:  "morning",
		Location: &loc,
		Now:      monday(8, 0),
	})
	require.Error(t, err)
	assert.Empty(t, scans.submitted)
}
