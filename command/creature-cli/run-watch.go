// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/creatured/rpc/node"
	"github.com/bitmark-inc/creatured/zmqutil"
)

func runWatch(c *cli.Context) error {
	m := getMetadata(c)

	publisher, err := requireString(c, "publisher")
	if nil != err {
		return err
	}

	serverKey, err := m.serverKey(c.String("server-key"))
	if nil != err {
		return err
	}

	// an ephemeral CURVE identity for this subscriber
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	client, err := zmqutil.NewClient(zmq.SUB, []byte(zmq.Z85decode(privateKey)), []byte(zmq.Z85decode(publicKey)), 0)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.Connect(publisher, serverKey)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "subscribed: %s\n", client)
	}

	limit := c.Int("count")
	for count := 0; 0 == limit || count < limit; count += 1 {
		frames, err := client.Receive(0)
		if nil != err {
			return err
		}
		printJson(m.w, decodeEvent(frames))
	}
	return nil
}

// tagged key file data, a bare hex key, or the key reported by the node
func (m *metadata) serverKey(key string) ([]byte, error) {
	if "" != key {
		if strings.HasPrefix(key, "PUBLIC:") {
			return zmqutil.ReadPublicKey(key)
		}
		return hex.DecodeString(key)
	}

	client, err := m.dial()
	if nil != err {
		return nil, err
	}
	defer client.Close()

	var reply node.InfoReply
	err = client.call("Node.Info", &node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return hex.DecodeString(reply.PublicKey)
}
