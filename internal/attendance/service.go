package attendance

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/angelmondragon/hrm-backend/internal/stores"
	"github.com/angelmondragon/hrm-backend/pkg/clock"
	"github.com/angelmondragon/hrm-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/hrm-backend/pkg/errors"
	"github.com/angelmondragon/hrm-backend/pkg/geo"
	"github.com/angelmondragon/hrm-backend/pkg/metrics"
	"github.com/angelmondragon/hrm-backend/pkg/types"
)

// Service admits check-ins inside the assigned store's geofence.
type Service interface {
	CheckIn(ctx context.Context, employeeID string, lat, lon types.Coordinate) (*CheckInResult, error)
	History(ctx context.Context, filter HistoryFilter) ([]RecordDTO, int64, error)
}

type recordRepository interface {
	Create(ctx context.Context, record *models.Attendance) error
	List(ctx context.Context, filter HistoryFilter) ([]models.Attendance, error)
	Count(ctx context.Context, filter HistoryFilter) (int64, error)
}

type storeLocator interface {
	FindForEmployee(ctx context.Context, employeeID string) (*models.Store, error)
}

type stamper interface {
	NowStamp() string
}

type outcomeRecorder interface {
	ObserveCheckIn(outcome string)
}

type ServiceParams struct {
	Records       recordRepository
	Stores        storeLocator
	Clock         stamper
	Metrics       outcomeRecorder
	DefaultRadius float64
	NewID         func() uuid.UUID
}

type service struct {
	records       recordRepository
	stores        storeLocator
	clock         stamper
	metrics       outcomeRecorder
	defaultRadius float64
	newID         func() uuid.UUID
}

func NewService(params ServiceParams) (Service, error) {
	if params.Records == nil {
		return nil, fmt.Errorf("attendance repository required")
	}
	if params.Stores == nil {
		return nil, fmt.Errorf("store locator required")
	}
	if params.Clock == nil {
		return nil, fmt.Errorf("clock required")
	}
	if params.DefaultRadius <= 0 {
		return nil, fmt.Errorf("default radius must be positive")
	}
	if params.Metrics == nil {
		params.Metrics = (*metrics.AttendanceMetrics)(nil)
	}
	if params.NewID == nil {
		params.NewID = uuid.New
	}
	return &service{
		records:       params.Records,
		stores:        params.Stores,
		clock:         params.Clock,
		metrics:       params.Metrics,
		defaultRadius: params.DefaultRadius,
		newID:         params.NewID,
	}, nil
}

func (s *service) CheckIn(ctx context.Context, employeeID string, lat, lon types.Coordinate) (*CheckInResult, error) {
	if !lat.Valid || !lon.Valid {
		s.metrics.ObserveCheckIn(metrics.CheckInInvalidInput)
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Missing GPS coordinates")
	}
	point := geo.Point{Lat: lat.Value, Lon: lon.Value}
	if !point.Valid() {
		s.metrics.ObserveCheckIn(metrics.CheckInInvalidInput)
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "GPS coordinates out of range").
			WithDetails(map[string]any{"latitude": lat.Value, "longitude": lon.Value})
	}

	store, err := s.stores.FindForEmployee(ctx, employeeID)
	if err != nil {
		s.metrics.ObserveCheckIn(metrics.CheckInError)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolve store")
	}
	if store == nil {
		s.metrics.ObserveCheckIn(metrics.CheckInNoStore)
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Store not found")
	}

	radius := stores.EffectiveRadius(*store, s.defaultRadius)
	meters, inside := geo.Within(geo.Point{Lat: store.Latitude, Lon: store.Longitude}, point, radius)
	distance := int(meters)
	if !inside {
		s.metrics.ObserveCheckIn(metrics.CheckInTooFar)
		return nil, pkgerrors.New(pkgerrors.CodeForbidden,
			fmt.Sprintf("Too far from store (%dm). Must be within %dm", distance, int(radius))).
			WithDetails(map[string]any{"distance": distance, "radius": radius})
	}

	stamp := s.clock.NowStamp()
	date, timeOfDay := clock.SplitStamp(stamp)
	record := models.Attendance{
		ID:            s.newID(),
		EmployeeID:    employeeID,
		CheckDate:     date,
		CheckTime:     timeOfDay,
		CheckLocation: fmt.Sprintf("%s,%s", formatFloat(point.Lat), formatFloat(point.Lon)),
		Latitude:      point.Lat,
		Longitude:     point.Lon,
		CreatedAt:     stamp,
	}
	if err := s.records.Create(ctx, &record); err != nil {
		s.metrics.ObserveCheckIn(metrics.CheckInError)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record attendance")
	}

	s.metrics.ObserveCheckIn(metrics.CheckInAccepted)
	return &CheckInResult{Record: FromModel(record), Distance: distance, Radius: radius}, nil
}

func (s *service) History(ctx context.Context, filter HistoryFilter) ([]RecordDTO, int64, error) {
	if filter.From != "" && filter.To != "" && filter.From > filter.To {
		return nil, 0, pkgerrors.New(pkgerrors.CodeValidation, "from must not be after to")
	}
	rows, err := s.records.List(ctx, filter)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list attendance")
	}
	total, err := s.records.Count(ctx, filter)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count attendance")
	}
	out := make([]RecordDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out, total, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
