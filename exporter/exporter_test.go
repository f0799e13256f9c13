// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package exporter

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rob-gra/go-tacview/acmi"
)

func TestCollector(t *testing.T) {
	c := NewCollector("tacview", prometheus.Labels{"server": "test"})
	c.Observe(acmi.Record{Kind: acmi.RecordFrame, TimeOffset: 12.5})
	c.Observe(acmi.Record{Kind: acmi.RecordUpdate, ObjectID: 0xA1})
	c.Observe(acmi.Record{Kind: acmi.RecordUpdate, ObjectID: 0xA2})
	c.Observe(acmi.Record{Kind: acmi.RecordUpdate, ObjectID: 0xA1})
	c.Observe(acmi.Record{Kind: acmi.RecordRemove, ObjectID: 0xA2})
	c.ObserveError()

	reg := prometheus.NewPedanticRegistry()
	reg.MustRegister(c)
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error %v", err)
	}

	got := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "kind" {
					name += ":" + lp.GetValue()
				}
			}
			switch {
			case m.GetCounter() != nil:
				got[name] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				got[name] = m.GetGauge().GetValue()
			}
		}
	}

	want := map[string]float64{
		"tacview_records_total:frame":  1,
		"tacview_records_total:update": 3,
		"tacview_records_total:remove": 1,
		"tacview_parse_errors_total":   1,
		"tacview_objects":              1, // A1 still live, A2 removed
		"tacview_frame_offset_seconds": 12.5,
	}
	for name, value := range want {
		if got[name] != value {
			t.Errorf("%s = %v, want %v", name, got[name], value)
		}
	}
}
