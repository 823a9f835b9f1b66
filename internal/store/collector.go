package store

import "github.com/prometheus/client_golang/prometheus"

// Collector exports collection sizes of a Store as gauges.
type Collector struct {
	store   *Store
	records *prometheus.Desc
	views   *prometheus.Desc
}

// NewCollector creates a Collector for s. Register it with a
// prometheus.Registerer.
func NewCollector(s *Store) *Collector {
	return &Collector{
		store: s,
		records: prometheus.NewDesc(
			"brokerdesk_store_records",
			"Number of records held in each store collection.",
			[]string{"collection"}, nil,
		),
		views: prometheus.NewDesc(
			"brokerdesk_store_view_records",
			"Number of records in each derived view.",
			[]string{"view"}, nil,
		),
	}
}

var _ prometheus.Collector = (*Collector)(nil)

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.records
	ch <- c.views
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.store.Stats()
	for name, v := range map[string]int{
		"transactions": st.Transactions,
		"files":        st.Files,
		"permits":      st.Permits,
		"logs":         st.Logs,
	} {
		ch <- prometheus.MustNewConstMetric(c.records, prometheus.GaugeValue, float64(v), name)
	}
	for name, v := range map[string]int{
		"active_transactions":    st.ActiveTransactions,
		"completed_transactions": st.CompletedTransactions,
		"pending_permits":        st.PendingPermits,
	} {
		ch <- prometheus.MustNewConstMetric(c.views, prometheus.GaugeValue, float64(v), name)
	}
}
