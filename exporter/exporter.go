// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package exporter exposes a telemetry session's record stream as
// Prometheus metrics. The collector holds no reference to the session;
// feed it with Observe after every successful Next and ObserveError on
// decode failures.
package exporter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rob-gra/go-tacview/acmi"
)

// Collector aggregates record counts, decode failures, the live object
// population and the latest frame offset.
type Collector struct {
	mu          sync.Mutex
	records     map[acmi.RecordKind]uint64
	parseErrors uint64
	objects     map[uint64]struct{}
	frameOffset float64

	recordsDesc     *prometheus.Desc
	parseErrorsDesc *prometheus.Desc
	objectsDesc     *prometheus.Desc
	frameDesc       *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector with the given metric name prefix.
// constLabels is meant for labels with values that are constant for the
// whole session, typically the server address.
func NewCollector(prefix string, constLabels prometheus.Labels) *Collector {
	return &Collector{
		records: make(map[acmi.RecordKind]uint64),
		objects: make(map[uint64]struct{}),
		recordsDesc: prometheus.NewDesc(
			fmt.Sprintf("%s_records_total", prefix),
			"Records decoded from the telemetry stream, by record kind.",
			[]string{"kind"}, constLabels),
		parseErrorsDesc: prometheus.NewDesc(
			fmt.Sprintf("%s_parse_errors_total", prefix),
			"Decode failures; each one is terminal to its session.",
			nil, constLabels),
		objectsDesc: prometheus.NewDesc(
			fmt.Sprintf("%s_objects", prefix),
			"Battlefield objects seen in updates and not yet removed.",
			nil, constLabels),
		frameDesc: prometheus.NewDesc(
			fmt.Sprintf("%s_frame_offset_seconds", prefix),
			"Time offset of the latest frame record, relative to the mission reference time.",
			nil, constLabels),
	}
}

// Observe accounts for one decoded record.
func (sf *Collector) Observe(rec acmi.Record) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.records[rec.Kind]++
	switch rec.Kind {
	case acmi.RecordFrame:
		sf.frameOffset = rec.TimeOffset
	case acmi.RecordUpdate:
		sf.objects[rec.ObjectID] = struct{}{}
	case acmi.RecordRemove:
		delete(sf.objects, rec.ObjectID)
	}
}

// ObserveError accounts for one decode failure.
func (sf *Collector) ObserveError() {
	sf.mu.Lock()
	defer sf.mu.Unlock()
	sf.parseErrors++
}

// Describe implements prometheus.Collector.
func (sf *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- sf.recordsDesc
	descs <- sf.parseErrorsDesc
	descs <- sf.objectsDesc
	descs <- sf.frameDesc
}

// Collect implements prometheus.Collector.
func (sf *Collector) Collect(metrics chan<- prometheus.Metric) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	for kind, n := range sf.records {
		metrics <- prometheus.MustNewConstMetric(sf.recordsDesc,
			prometheus.CounterValue, float64(n), strings.ToLower(kind.String()))
	}
	metrics <- prometheus.MustNewConstMetric(sf.parseErrorsDesc,
		prometheus.CounterValue, float64(sf.parseErrors))
	metrics <- prometheus.MustNewConstMetric(sf.objectsDesc,
		prometheus.GaugeValue, float64(len(sf.objects)))
	metrics <- prometheus.MustNewConstMetric(sf.frameDesc,
		prometheus.GaugeValue, sf.frameOffset)
}
