// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"crypto/rand"
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/creatured/fault"
)

const (
	publicKeySize  = 32
	privateKeySize = 32
	identifierSize = 32
)

// Client - a CURVE client connection, usually of type zmq.SUB
type Client struct {
	publicKey       []byte
	privateKey      []byte
	serverPublicKey []byte
	address         string
	v6              bool
	socketType      zmq.Type
	socket          *zmq.Socket
	timeout         time.Duration
}

// NewClient - a client with the given key pair, not yet connected
//
// zero timeout means block forever
func NewClient(socketType zmq.Type, privateKey []byte, publicKey []byte, timeout time.Duration) (*Client, error) {

	if len(publicKey) != publicKeySize {
		return nil, fault.ErrInvalidPublicKey
	}
	if len(privateKey) != privateKeySize {
		return nil, fault.ErrInvalidPrivateKey
	}

	client := &Client{
		publicKey:       make([]byte, publicKeySize),
		privateKey:      make([]byte, privateKeySize),
		serverPublicKey: make([]byte, publicKeySize),
		socketType:      socketType,
		timeout:         timeout,
	}
	copy(client.privateKey, privateKey)
	copy(client.publicKey, publicKey)
	return client, nil
}

func (client *Client) openSocket() error {

	socket, err := zmq.NewSocket(client.socketType)
	if nil != err {
		return err
	}

	randomIdBytes := make([]byte, identifierSize)
	_, err = rand.Read(randomIdBytes)
	if nil != err {
		goto failure
	}

	err = socket.SetCurveServer(0)
	if nil != err {
		goto failure
	}
	err = socket.SetCurvePublickey(string(client.publicKey))
	if nil != err {
		goto failure
	}
	err = socket.SetCurveSecretkey(string(client.privateKey))
	if nil != err {
		goto failure
	}
	err = socket.SetIdentity(string(randomIdBytes))
	if nil != err {
		goto failure
	}

	// destination identity is its public key
	err = socket.SetCurveServerkey(string(client.serverPublicKey))
	if nil != err {
		goto failure
	}

	if 0 != client.timeout {
		err = socket.SetSndtimeo(client.timeout)
		if nil != err {
			goto failure
		}
		err = socket.SetRcvtimeo(client.timeout)
		if nil != err {
			goto failure
		}
	}
	err = socket.SetLinger(0)
	if nil != err {
		goto failure
	}

	if zmq.SUB == client.socketType {
		// empty prefix receives everything
		err = socket.SetSubscribe("")
		if nil != err {
			goto failure
		}
	}

	err = socket.SetHeartbeatIvl(heartbeatInterval)
	if nil != err && zmq.ErrorNotImplemented42 != err {
		goto failure
	}
	err = socket.SetHeartbeatTimeout(heartbeatTimeout)
	if nil != err && zmq.ErrorNotImplemented42 != err {
		goto failure
	}
	err = socket.SetHeartbeatTtl(heartbeatTTL)
	if nil != err && zmq.ErrorNotImplemented42 != err {
		goto failure
	}

	err = socket.SetIpv6(client.v6)
	if nil != err {
		goto failure
	}

	err = socket.Connect(client.address)
	if nil != err {
		goto failure
	}

	client.socket = socket
	return nil

failure:
	_ = socket.Close()
	return err
}

func (client *Client) closeSocket() error {
	if nil == client.socket {
		return nil
	}
	if "" != client.address {
		_ = client.socket.Disconnect(client.address)
	}
	err := client.socket.Close()
	client.socket = nil
	return err
}

// Connect - disconnect any old address and connect to a "host:port"
func (client *Client) Connect(hostPort string, serverPublicKey []byte) error {
	if len(serverPublicKey) != publicKeySize {
		return fault.ErrInvalidPublicKey
	}

	err := client.closeSocket()
	if nil != err {
		return err
	}
	client.address = ""

	address, v6, err := CanonicalAddress(hostPort)
	if nil != err {
		return err
	}

	copy(client.serverPublicKey, serverPublicKey)
	client.address = address
	client.v6 = v6

	err = client.openSocket()
	if nil != err {
		client.address = ""
	}
	return err
}

// IsConnected - true after a successful Connect
func (client *Client) IsConnected() bool {
	return "" != client.address && nil != client.socket
}

// Close - disconnect and release the socket
func (client *Client) Close() error {
	err := client.closeSocket()
	client.address = ""
	return err
}

// Receive - next multi-part message
func (client *Client) Receive(flags zmq.Flag) ([][]byte, error) {
	if !client.IsConnected() {
		return nil, fault.ErrNotConnected
	}
	return client.socket.RecvMessageBytes(flags)
}

// String - the connected endpoint
func (client *Client) String() string {
	return client.address
}
