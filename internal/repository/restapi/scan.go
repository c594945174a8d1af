package restapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/hrmviet/chamcong-go/internal/domain/scan"
	"github.com/hrmviet/chamcong-go/internal/pkg/apiclient"
)

type scanEventRepository struct {
	client *apiclient.Client
	loc    *time.Location
}

func NewScanEventRepository(client *apiclient.Client, loc *time.Location) scan.EventRepository {
	return &scanEventRepository{client: client, loc: loc}
}

// ListRange implements scan.EventRepository.
func (r *scanEventRepository) ListRange(ctx context.Context, from, to time.Time) ([]scan.Event, error) {
	query := url.Values{}
	query.Set("start_date", from.Format("2006-01-02"))
	query.Set("end_date", to.Format("2006-01-02"))

	var dtos []scan.EventDTO
	if err := r.client.Get(ctx, "/api/v1/scan-events", query, &dtos); err != nil {
		return nil, fmt.Errorf("failed to list scan events: %w", err)
	}

	events := make([]scan.Event, 0, len(dtos))
	for _, dto := range dtos {
		events = append(events, r.toEvent(dto))
	}
	return events, nil
}

// toEvent maps one record: an unparsable timestamp becomes the zero time
// (the reconciler skips those records) and an unknown type becomes the
// empty type, which never counts as arrival or departure.
func (r *scanEventRepository) toEvent(dto scan.EventDTO) scan.Event {
	typ, err := scan.ParseType(dto.Type)
	if err != nil {
		slog.Warn("unknown scan event type from backend", "type", dto.Type)
	}
	return scan.Event{
		Date:      parseTimestamp(dto.Date, r.loc),
		ScanTime:  parseTimestamp(dto.ScanTime, r.loc),
		Type:      typ,
		ShiftName: dto.ShiftName,
	}
}

// Submit implements scan.EventRepository.
func (r *scanEventRepository) Submit(ctx context.Context, req scan.SubmitRequest) (scan.Event, error) {
	if err := req.Validate(); err != nil {
		return scan.Event{}, err
	}

	payload := map[string]any{
		"machine_id": req.MachineID,
		"shift_id":   req.ShiftID,
		"shift_name": req.ShiftName,
		"type":       string(req.Type),
		"latitude":   req.Latitude,
		"longitude":  req.Longitude,
		"scan_time":  req.At.Format(time.RFC3339),
	}

	var dto scan.EventDTO
	if err := r.client.Post(ctx, "/api/v1/scan-events", payload, &dto); err != nil {
		return scan.Event{}, fmt.Errorf("failed to submit scan event: %w", err)
	}

	return r.toEvent(dto), nil
}
