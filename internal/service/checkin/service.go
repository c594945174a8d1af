package checkin

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/hrmviet/chamcong-go/internal/domain/attendance"
	"github.com/hrmviet/chamcong-go/internal/domain/machine"
	"github.com/hrmviet/chamcong-go/internal/domain/scan"
	"github.com/hrmviet/chamcong-go/internal/domain/shift"
	"github.com/hrmviet/chamcong-go/internal/engine/geofence"
	"github.com/hrmviet/chamcong-go/internal/engine/shiftwindow"
)

const (
	machinesCacheKey = "machines"
	shiftsCacheKey   = "shifts"
)

type CheckinServiceImpl struct {
	machines machine.MachineRepository
	shifts   shift.WorkShiftRepository
	scans    scan.EventRepository

	// snapshots caches the machine and shift registries between the
	// screen's polls; both are read-only server state.
	snapshots *gocache.Cache
}

func NewCheckinService(
	machineRepo machine.MachineRepository,
	shiftRepo shift.WorkShiftRepository,
	scanRepo scan.EventRepository,
	snapshotTTL time.Duration,
) attendance.CheckinService {
	return &CheckinServiceImpl{
		machines:  machineRepo,
		shifts:    shiftRepo,
		scans:     scanRepo,
		snapshots: gocache.New(snapshotTTL, 2*snapshotTTL),
	}
}

func (s *CheckinServiceImpl) loadMachines(ctx context.Context) ([]machine.Machine, error) {
	if cached, ok := s.snapshots.Get(machinesCacheKey); ok {
		return cached.([]machine.Machine), nil
	}
	machines, err := s.machines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load machine registry: %w", err)
	}
	s.snapshots.SetDefault(machinesCacheKey, machines)
	return machines, nil
}

func (s *CheckinServiceImpl) loadShifts(ctx context.Context) ([]shift.WorkShift, error) {
	if cached, ok := s.snapshots.Get(shiftsCacheKey); ok {
		return cached.([]shift.WorkShift), nil
	}
	shifts, err := s.shifts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift registry: %w", err)
	}
	s.snapshots.SetDefault(shiftsCacheKey, shifts)
	return shifts, nil
}

// Status implements attendance.CheckinService. The machine and shift
// registries are independent and fetched concurrently; a failure of
// either is a fetch error, distinct from the valid "empty" states the
// engine itself reports.
func (s *CheckinServiceImpl) Status(ctx context.Context, now time.Time, location *machine.Coordinate) (attendance.CheckinStatus, error) {
	var (
		machines []machine.Machine
		shifts   []shift.WorkShift
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		machines, err = s.loadMachines(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		shifts, err = s.loadShifts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.CheckinStatus{}, err
	}

	status := attendance.CheckinStatus{
		TodayShifts: shiftwindow.ShiftsForToday(shifts, now),
	}

	current, err := shiftwindow.CurrentTimeShifts(shifts, now)
	if err != nil {
		return attendance.CheckinStatus{}, fmt.Errorf("failed to resolve current shifts: %w", err)
	}
	status.CurrentShifts = current

	if location != nil {
		status.LocationKnown = true
		result := geofence.Evaluate(*location, machines)
		status.InRange = result.InRange
		status.Machine = result.Machine
	}

	return status, nil
}

// CheckIn implements attendance.CheckinService.
func (s *CheckinServiceImpl) CheckIn(ctx context.Context, req attendance.ActionRequest) (scan.Event, error) {
	return s.submit(ctx, req, false)
}

// CheckOut implements attendance.CheckinService.
func (s *CheckinServiceImpl) CheckOut(ctx context.Context, req attendance.ActionRequest) (scan.Event, error) {
	return s.submit(ctx, req, true)
}

// submit enforces the action gate: registry loaded, location known, in
// range of a machine and a shift selected. Each failure mode keeps its
// own sentinel so the front-end messages stay distinct.
func (s *CheckinServiceImpl) submit(ctx context.Context, req attendance.ActionRequest, departure bool) (scan.Event, error) {
	if req.Location == nil {
		return scan.Event{}, attendance.ErrLocationUnavailable
	}
	if req.ShiftID == "" {
		return scan.Event{}, attendance.ErrNoShiftSelected
	}

	machines, err := s.loadMachines(ctx)
	if err != nil {
		return scan.Event{}, err
	}
	if len(machines) == 0 {
		return scan.Event{}, machine.ErrNoMachines
	}

	result := geofence.Evaluate(*req.Location, machines)
	if !result.InRange {
		return scan.Event{}, attendance.ErrOutsideAllowedRadius
	}

	shifts, err := s.loadShifts(ctx)
	if err != nil {
		return scan.Event{}, err
	}

	selected, ok := findShift(shifts, req.ShiftID)
	if !ok {
		return scan.Event{}, shift.ErrShiftNotFound
	}

	scanType, err := classifyScan(selected, req.Now, departure)
	if err != nil {
		return scan.Event{}, err
	}

	return s.scans.Submit(ctx, scan.SubmitRequest{
		MachineID: result.Machine.ID,
		ShiftID:   selected.ID,
		ShiftName: selected.Name,
		Type:      scanType,
		Latitude:  req.Location.Latitude,
		Longitude: req.Location.Longitude,
		At:        req.Now,
	})
}

func findShift(shifts []shift.WorkShift, id string) (shift.WorkShift, bool) {
	for _, s := range shifts {
		if s.ID == id {
			return s, true
		}
	}
	return shift.WorkShift{}, false
}

// classifyScan decides the scan type against the selected shift's detail
// for now's weekday. Checking in after the nominal start is a late
// arrival; checking out before the nominal end is an early departure.
// Selecting a shift with no detail today is allowed (the user may
// deliberately record against a non-current shift) and counts as
// on-time. A malformed shift time is an error, not a silent default.
func classifyScan(selected shift.WorkShift, now time.Time, departure bool) (scan.Type, error) {
	nowMinutes := now.Hour()*60 + now.Minute()
	today := int(now.Weekday())

	for _, d := range selected.Details {
		if shiftwindow.DayNumber(d.DayOfWeek) != today {
			continue
		}
		if departure {
			end, err := shiftwindow.ParseClock(d.EndTime)
			if err != nil {
				return "", fmt.Errorf("shift %q: %w", selected.Name, err)
			}
			if nowMinutes < end {
				return scan.TypeEarlyDeparture, nil
			}
			return scan.TypeDeparture, nil
		}
		start, err := shiftwindow.ParseClock(d.StartTime)
		if err != nil {
			return "", fmt.Errorf("shift %q: %w", selected.Name, err)
		}
		if nowMinutes > start {
			return scan.TypeLateArrival, nil
		}
		return scan.TypeArrival, nil
	}

	if departure {
		return scan.TypeDeparture, nil
	}
	return scan.TypeArrival, nil
}
