// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// tacview-dump connects to a real-time telemetry server and prints
// every decoded record to standard output.
//
// usage: tacview-dump host port user [password]
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rob-gra/go-tacview/rtt"
)

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
	fmt.Printf("%s %s\n", header.FileType, header.FileVersion)

	for {
		rec, err := sess.Next()
		if err != nil {
			logrus.Fatalf("next: %v", err)
		}
		fmt.Printf("%+v\n", rec)
	}
}
