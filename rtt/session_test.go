// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package rtt

import (
	"bufio"
	"errors"
	"io"
	"net"
	"testing"

	"github.com/rob-gra/go-tacview/acmi"
)

// serveHandshake scripts the server side of the banner exchange on
// conn, verifies the client's response and then writes stream before
// closing. Mismatches are reported through t.Errorf.
func serveHandshake(t *testing.T, conn net.Conn, stream string) {
	t.Helper()
	defer conn.Close()

	for _, s := range []string{
		"XtraLib.Stream.0\n",
		"Tacview.RealTimeTelemetry.0\n",
		"TELEMETRY-HOST\n",
		"\x00",
	} {
		if _, err := conn.Write([]byte(s)); err != nil {
			t.Errorf("server write: %v", err)
			return
		}
	}

	br := bufio.NewReader(conn)
	for i, want := range []string{
		"XtraLib.Stream.0\n",
		"Tacview.RealTimeTelemetry.0\n",
		"goose\n",
	} {
		got, err := br.ReadString('\n')
		if err != nil {
			t.Errorf("server read line %d: %v", i, err)
			return
		}
		if got != want {
			t.Errorf("client line %d = %q, want %q", i, got, want)
		}
	}
	digest, err := br.ReadString('\x00')
	if err != nil {
		t.Errorf("server read digest: %v", err)
		return
	}
	if want := "27d86d6a\x00"; digest != want {
		t.Errorf("client digest = %q, want %q", digest, want)
	}

	if _, err := conn.Write([]byte(stream)); err != nil {
		t.Errorf("server write stream: %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		serveHandshake(t, server,
			"FileType=text/acmi/tacview\n"+
				"FileVersion=2.2\n"+
				"#1.5\n"+
				"-A1\n")
	}()

	cfg := DefaultConfig()
	cfg.Username = "goose"
	cfg.Password = "test"
	sess, err := FromConn(client, cfg)
	if err != nil {
		t.Fatalf("FromConn() error %v", err)
	}
	defer sess.Close()

	header := sess.Header()
	if header.FileType != "text/acmi/tacview" || header.FileVersion != "2.2" {
		t.Errorf("Header() = %+v", header)
	}
	if sess.ID() == "" {
		t.Error("ID() is empty")
	}

	rec, err := sess.Next()
	if err != nil {
		t.Fatalf("Next() error %v", err)
	}
	if rec.Kind != acmi.RecordFrame || rec.TimeOffset != 1.5 {
		t.Errorf("Next() = %+v, want frame 1.5", rec)
	}

	rec, err = sess.Next()
	if err != nil {
		t.Fatalf("Next() error %v", err)
	}
	if rec.Kind != acmi.RecordRemove || rec.ObjectID != 0xA1 {
		t.Errorf("Next() = %+v, want remove A1", rec)
	}

	// server closed the stream after the last record
	if _, err = sess.Next(); !errors.Is(err, acmi.ErrRead) || !errors.Is(err, io.EOF) {
		t.Errorf("Next() at stream end error %v, want ErrRead wrapping io.EOF", err)
	}
	<-done
}

func TestFromConnBadBanner(t *testing.T) {
	tests := []struct {
		name   string
		banner []string
		want   error
	}{
		{
			name:   "bad protocol line",
			banner: []string{"SomeOther.Stream.9\n"},
			want:   ErrHeaderProtocol,
		},
		{
			name:   "bad version line",
			banner: []string{"XtraLib.Stream.0\n", "Tacview.Files.0\n"},
			want:   ErrHeaderVersion,
		},
		{
			name: "bad end-of-header byte",
			banner: []string{
				"XtraLib.Stream.0\n",
				"Tacview.RealTimeTelemetry.0\n",
				"TELEMETRY-HOST\n",
				"\x07",
			},
			want: ErrEndOfHeader,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := net.Pipe()
			go func() {
				for _, s := range tt.banner {
					if _, err := server.Write([]byte(s)); err != nil {
						return
					}
				}
				// hold the conn open, the client fails on its own
				buf := make([]byte, 1)
				server.Read(buf) //nolint:errcheck
				server.Close()
			}()

			cfg := DefaultConfig()
			cfg.Username = "goose"
			_, err := FromConn(client, cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromConn() error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromConnBadHeader(t *testing.T) {
	client, server := net.Pipe()
	go serveHandshake(t, server, "FileType=audio/wav\n")

	cfg := DefaultConfig()
	cfg.Username = "goose"
	cfg.Password = "test"
	if _, err := FromConn(client, cfg); !errors.Is(err, acmi.ErrBadFileType) {
		t.Errorf("FromConn() error %v, want %v", err, acmi.ErrBadFileType)
	}
}
