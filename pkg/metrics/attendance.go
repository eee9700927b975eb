package metrics

import "github.com/prometheus/client_golang/prometheus"

// Check-in outcomes.
const (
	CheckInAccepted     = "accepted"
	CheckInTooFar       = "too_far"
	CheckInNoStore      = "no_store"
	CheckInInvalidInput = "invalid_input"
	CheckInError        = "error"
)

// AttendanceMetrics counts geofence check-in outcomes.
type AttendanceMetrics struct {
	checkIns *prometheus.CounterVec
}

func NewAttendanceMetrics(reg prometheus.Registerer) *AttendanceMetrics {
	if reg == nil {
		return &AttendanceMetrics{}
	}
	checkIns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hrm",
		Name:      "attendance_checkins_total",
		Help:      "Attendance check-ins by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(checkIns)
	return &AttendanceMetrics{checkIns: checkIns}
}

func (m *AttendanceMetrics) ObserveCheckIn(outcome string) {
	if m == nil || m.checkIns == nil {
		return
	}
	m.checkIns.WithLabelValues(outcomeLabel(outcome)).Inc()
}

func outcomeLabel(outcome string) string {
	if outcome == "" {
		return CheckInError
	}
	return outcome
}
