package jobs

import (
	"context"
	"log/slog"

	"fleet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultCapacityAuditSchedule runs the audit at the start of every minute.
const DefaultCapacityAuditSchedule = "0 * * * * *"

type vehicleLister interface {
	Handle(ctx context.Context, query queries.GetAllVehiclesQuery) ([]queries.VehicleResponse, error)
}

// CapacityAuditJob periodically reads a snapshot of the fleet and logs the
// utilization of every vehicle. A vehicle above either limit is logged at
// error level. The job only observes; it never changes an assignment.
type CapacityAuditJob struct {
	vehicles vehicleLister
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCapacityAuditJob creates the audit job. schedule is a six-field cron
// expression with seconds; an empty value selects DefaultCapacityAuditSchedule.
func NewCapacityAuditJob(vehicles vehicleLister, schedule string, logger *slog.Logger) *CapacityAuditJob {
	if schedule == "" {
		schedule = DefaultCapacityAuditSchedule
	}
	return &CapacityAuditJob{
		vehicles: vehicles,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "capacity_audit_job"),
	}
}

func (j *CapacityAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _, _ = j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity audit job started", "schedule", j.schedule)
	return nil
}

func (j *CapacityAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Capacity audit job stopped")
}

// RunOnce audits the fleet once and returns how many vehicles were checked
// and how many of them were over capacity.
func (j *CapacityAuditJob) RunOnce(ctx context.Context) (int, int, error) {
	vehicles, err := j.vehicles.Handle(ctx, queries.NewGetAllVehiclesQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Capacity audit failed", "error", err)
		return 0, 0, err
	}

	over := 0
	for _, v := range vehicles {
		attrs := []any{
			"vehicle_id", v.ID.String(),
			"vehicle_number", v.Number,
			"weight_kg", v.CurrentWeightKg.String(),
			"max_weight_kg", v.MaxWeightKg.String(),
			"volume_m3", v.CurrentVolumeM3.String(),
			"max_volume_m3", v.MaxVolumeM3.String(),
			"utilization_pct", v.UtilizationPct,
		}
		if v.IsOverCapacity() {
			over++
			j.logger.ErrorContext(ctx, "Vehicle is over capacity", attrs...)
			continue
		}
		j.logger.DebugContext(ctx, "Vehicle utilization", attrs...)
	}

	j.logger.InfoContext(ctx, "Capacity audit finished", "vehicles", len(vehicles), "over_capacity", over)
	return len(vehicles), over, nil
}
