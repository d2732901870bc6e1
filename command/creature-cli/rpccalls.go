// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/hex"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/creatured/rpc/certificate"
)

// client - an RPC connection to a creatured
type client struct {
	conn   net.Conn
	client *rpc.Client
}

// connect to a node
//
// the node certificate is usually self-signed so it is only checked
// against an optional SHA3-256 fingerprint
func newClient(connect string, fingerprint string) (*client, error) {
	if "" == connect {
		return nil, ErrMissingConnect
	}

	var expected []byte
	if "" != fingerprint {
		var err error
		expected, err = hex.DecodeString(fingerprint)
		if nil != err {
			return nil, ErrFingerprintMismatch
		}
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	if nil != expected {
		certificates := conn.ConnectionState().PeerCertificates
		if 0 == len(certificates) {
			conn.Close()
			return nil, ErrFingerprintMismatch
		}
		actual := certificate.Fingerprint(certificates[0].Raw)
		if !bytes.Equal(expected, actual[:]) {
			conn.Close()
			return nil, ErrFingerprintMismatch
		}
	}

	return &client{
		conn:   conn,
		client: jsonrpc.NewClient(conn),
	}, nil
}

func (c *client) call(method string, arguments interface{}, reply interface{}) error {
	return c.client.Call(method, arguments, reply)
}

// Close - shutdown the connection
func (c *client) Close() {
	c.client.Close()
	c.conn.Close()
}
