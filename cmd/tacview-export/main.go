// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// tacview-export connects to a real-time telemetry server, merges the
// positional delta updates into per-object state and serves stream
// statistics on /metrics.
//
// usage: tacview-export host port user [password]
package main

import (
	"errors"
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/rob-gra/go-tacview/acmi"
	"github.com/rob-gra/go-tacview/exporter"
	"github.com/rob-gra/go-tacview/rtt"
)

const listenAddr = ":9190"

func main() {
	if len(os.Args) < 4 {
		logrus.Fatalf("usage: %s host port user [password]", os.Args[0])
	}
	host, port, user := os.Args[1], os.Args[2], os.Args[3]
	password := ""
	if len(os.Args) > 4 {
		password = os.Args[4]
	}

	sess, err := rtt.Connect(net.JoinHostPort(host, port), user, password)
	if err != nil {
		logrus.Fatalf("connect: %v", err)
	}
	defer sess.Close()
	header := sess.Header()
	logrus.Infof("connected: %s %s", header.FileType, header.FileVersion)

	collector := exporter.NewCollector("tacview", prometheus.Labels{"server": host})
	prometheus.MustRegister(collector)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(listenAddr, mux); err != nil {
			logrus.Fatalf("listen %s: %v", listenAddr, err)
		}
	}()

	// merged pose per live object, rebuilt from the positional deltas
	state := make(map[uint64]*acmi.Coords)
	for {
		rec, err := sess.Next()
		if err != nil {
			if !errors.Is(err, acmi.ErrRead) {
				collector.ObserveError()
			}
			logrus.Fatalf("next: %v", err)
		}
		collector.Observe(rec)

		switch rec.Kind {
		case acmi.RecordUpdate:
			for _, p := range rec.Props {
				if p.Kind != acmi.PropT {
					continue
				}
				c := state[rec.ObjectID]
				if c == nil {
					c = &acmi.Coords{}
					state[rec.ObjectID] = c
				}
				c.Update(p.Coords)
			}
		case acmi.RecordRemove:
			delete(state, rec.ObjectID)
		case acmi.RecordFrame:
			logrus.Debugf("frame %.3f: %d objects tracked", rec.TimeOffset, len(state))
		}
	}
}
