// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package main listens on a UDP port and prints the DTLS records and
// handshake messages found in every datagram it receives.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/dtlscodec/dtls"
	"github.com/dtlscodec/dtls/pkg/protocol/alert"
	"github.com/dtlscodec/dtls/pkg/protocol/handshake"
	"github.com/pion/logging"
	"golang.org/x/net/ipv4"
)

const receiveMTU = 8192

func main() {
	addr := flag.String("addr", "127.0.0.1:4444", "UDP address to listen on")
	batch := flag.Int("batch", 8, "datagrams read per system call")
	replayWindow := flag.Int("replay-window", 0, "replay protection window, 0 disables")
	verbose := flag.Bool("v", false, "log every record header")
	flag.Parse()

	loggerFactory := logging.NewDefaultLoggerFactory()
	if *verbose {
		loggerFactory.DefaultLogLevel = logging.LogLevelTrace
	}
	log := loggerFactory.NewLogger("dtlsdump")

	opts := []dtls.Option{dtls.WithLoggerFactory(loggerFactory)}
	if *replayWindow > 0 {
		opts = append(opts, dtls.WithReplayProtectionWindow(*replayWindow))
	}

	if err := run(*addr, *batch, log, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(addr string, batch int, log logging.LeveledLogger, opts []dtls.Option) error {
	if batch <= 0 {
		return fmt.Errorf("batch must be positive, got %d", batch) //nolint:err113
	}

	conn, err := net.ListenPacket("udp4", addr)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()
	log.Infof("listening on %s", conn.LocalAddr())

	receivers := map[string]*dtls.Receiver{}

	pc := ipv4.NewPacketConn(conn)
	msgs := make([]ipv4.Message, batch)
	for i := range msgs {
		msgs[i].Buffers = [][]byte{make([]byte, receiveMTU)}
	}

	for {
		n, err := pc.ReadBatch(msgs, 0)
		if err != nil {
			return err
		}

		for _, msg := range msgs[:n] {
			peer := msg.Addr.String()
			receiver, ok := receivers[peer]
			if !ok {
				if receiver, err = dtls.NewReceiver(opts...); err != nil {
					return err
				}
				receivers[peer] = receiver
			}

			in, err := receiver.HandleDatagram(msg.Buffers[0][:msg.N])
			fmt.Print(describe(peer, msg.N, in))
			if err != nil {
				log.Warnf("%s: %v", peer, err)
			}
		}
	}
}

func describe(peer string, n int, in *dtls.Inbound) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d bytes\n", peer, n)

	for _, r := range in.Records {
		fmt.Fprintf(&b, "  record %s epoch=%d seq=%d len=%d", r.Header.ContentType, r.Header.Epoch, r.Header.SequenceNumber, r.Header.ContentLen)
		if a, ok := r.Content.(*alert.Alert); ok {
			fmt.Fprintf(&b, " %s", a)
		}
		b.WriteString("\n")
	}

	if in.Retransmit {
		b.WriteString("  peer retransmitted a delivered handshake message\n")
	}

	for _, h := range in.Handshakes {
		fmt.Fprintf(&b, "  handshake %s seq=%d len=%d", h.Header.Type, h.Header.MessageSequence, h.Header.Length)
		switch m := h.Message.(type) {
		case *handshake.MessageClientHello:
			fmt.Fprintf(&b, " version=%s cookie=%x suites=%v extensions=%d", m.Version, m.Cookie, m.CipherSuites, len(m.Extensions))
		case *handshake.MessageServerHello:
			if m.CipherSuiteID != nil {
				fmt.Fprintf(&b, " suite=%s", *m.CipherSuiteID)
			}
		case *handshake.MessageHelloVerifyRequest:
			fmt.Fprintf(&b, " version=%s cookie=%x", m.Version, m.Cookie)
		case *handshake.MessageCertificate:
			fmt.Fprintf(&b, " certificates=%d", len(m.Certificates))
		case *handshake.MessageUnknown:
			fmt.Fprintf(&b, " opaque=%d", len(m.Data))
		}
		b.WriteString("\n")
	}

	return b.String()
}
