package statistics

import (
	"context"
	"time"

	"github.com/markusressel/hwtemp/internal/hwmon"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemSensor = "sensor"

// SensorCollector reads all sensors of its source on every scrape.
type SensorCollector struct {
	source  hwmon.Source
	timeout time.Duration

	value    *prometheus.Desc
	high     *prometheus.Desc
	critical *prometheus.Desc
	up       *prometheus.Desc
}

func NewSensorCollector(source hwmon.Source, timeout time.Duration) *SensorCollector {
	labels := []string{"base", "name", "label"}
	return &SensorCollector{
		source:  source,
		timeout: timeout,
		value: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "value_celsius"),
			"Current temperature of the sensor",
			labels, nil,
		),
		high: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "high_celsius"),
			"High threshold of the sensor",
			labels, nil,
		),
		critical: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "critical_celsius"),
			"Critical threshold of the sensor",
			labels, nil,
		),
		up: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "up"),
			"Whether the last read of the sensor was successful",
			[]string{"base"}, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.value
	ch <- collector.high
	ch <- collector.critical
	ch <- collector.up
}

// Collect implements required collect function for all prometheus collectors
func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()
	if collector.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, collector.timeout)
		defer cancel()
	}

	for _, result := range collector.source.ReadAll(ctx) {
		base := result.Base.String()
		if result.Err != nil {
			ch <- prometheus.MustNewConstMetric(collector.up, prometheus.GaugeValue, 0, base)
			continue
		}
		ch <- prometheus.MustNewConstMetric(collector.up, prometheus.GaugeValue, 1, base)

		reading := result.Reading
		label := reading.DisplayLabel("")
		ch <- prometheus.MustNewConstMetric(collector.value, prometheus.GaugeValue, reading.Value, base, reading.Name, label)
		if reading.High != nil {
			ch <- prometheus.MustNewConstMetric(collector.high, prometheus.GaugeValue, *reading.High, base, reading.Name, label)
		}
		if reading.Critical != nil {
			ch <- prometheus.MustNewConstMetric(collector.critical, prometheus.GaugeValue, *reading.Critical, base, reading.Name, label)
		}
	}
}
