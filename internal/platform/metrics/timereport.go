package metrics

import "github.com/prometheus/client_golang/prometheus"

// Reasons a time-report submission is rejected
const (
	ReasonValidation     = "validation"
	ReasonUnknownProject = "unknown_project"
	ReasonStorage        = "storage"
)

// TimeReport counts time-report writes
// a nil *TimeReport is valid and records nothing
type TimeReport struct {
	inserted prometheus.Counter
	deleted  prometheus.Counter
	dropped  prometheus.Counter
	rejected *prometheus.CounterVec
}

// NewTimeReport creates and registers the time-report collectors
func NewTimeReport(reg prometheus.Registerer) (*TimeReport, error) {
	m := &TimeReport{
		inserted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "timereport",
			Name:      "entries_inserted_total",
			Help:      "Time entries written by submissions",
		}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "timereport",
			Name:      "entries_deleted_total",
			Help:      "Time entries removed through the picker",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "timereport",
			Name:      "rows_dropped_total",
			Help:      "Submitted rows dropped because their project does not exist",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "timereport",
			Name:      "submissions_rejected_total",
			Help:      "Submissions that wrote nothing, by reason: rows that fail to decode, unknown projects, storage errors",
		}, []string{"reason"}),
	}
	for _, c := range []prometheus.Collector{m.inserted, m.deleted, m.dropped, m.rejected} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Inserted adds n written entries
func (m *TimeReport) Inserted(n int) {
	if m != nil && n > 0 {
		m.inserted.Add(float64(n))
	}
}

// Deleted adds n removed entries
func (m *TimeReport) Deleted(n int) {
	if m != nil && n > 0 {
		m.deleted.Add(float64(n))
	}
}

// Dropped adds n rows skipped for an unknown project
func (m *TimeReport) Dropped(n int) {
	if m != nil && n > 0 {
		m.dropped.Add(float64(n))
	}
}

// Rejected counts one failed submission
func (m *TimeReport) Rejected(reason string) {
	if m != nil {
		m.rejected.WithLabelValues(reason).Inc()
	}
}

// InsertedCounter exposes the inserted collector for assertions
func (m *TimeReport) InsertedCounter() prometheus.Counter { return m.inserted }

// DroppedCounter exposes the dropped collector for assertions
func (m *TimeReport) DroppedCounter() prometheus.Counter { return m.dropped }

// RejectedCounter exposes the rejected collector of one reason
func (m *TimeReport) RejectedCounter(reason string) prometheus.Counter {
	return m.rejected.WithLabelValues(reason)
}
