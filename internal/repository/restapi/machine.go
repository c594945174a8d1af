package restapi

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/hrmviet/chamcong-go/internal/domain/machine"
	"github.com/hrmviet/chamcong-go/internal/pkg/apiclient"
)

type machineRepository struct {
	client *apiclient.Client
}

func NewMachineRepository(client *apiclient.Client) machine.MachineRepository {
	return &machineRepository{client: client}
}

// List implements machine.MachineRepository.
func (r *machineRepository) List(ctx context.Context) ([]machine.Machine, error) {
	var dtos []machine.MachineDTO
	if err := r.client.Get(ctx, "/api/v1/attendance-machines", nil, &dtos); err != nil {
		return nil, fmt.Errorf("failed to list attendance machines: %w", err)
	}

	machines := make([]machine.Machine, 0, len(dtos))
	for _, dto := range dtos {
		lat, latErr := strconv.ParseFloat(dto.Latitude, 64)
		lng, lngErr := strconv.ParseFloat(dto.Longitude, 64)
		radius, radErr := strconv.ParseFloat(dto.AllowedRadius, 64)
		if latErr != nil || lngErr != nil || radErr != nil {
			// One bad registry row must not abort eligibility for
			// the rest.
			slog.Warn("skipping attendance machine with unparsable coordinates",
				"machine_id", dto.ID, "name", dto.Name)
			continue
		}

		machines = append(machines, machine.Machine{
			ID:   dto.ID,
			Name: dto.Name,
			Coordinate: machine.Coordinate{
				Latitude:  lat,
				Longitude: lng,
			},
			AllowedRadiusMeters: radius,
		})
	}

	return machines, nil
}
