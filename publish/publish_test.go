// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"path/filepath"
	"testing"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/creatured/fault"
	"github.com/bitmark-inc/creatured/fixtures"
	"github.com/bitmark-inc/creatured/messagebus"
	"github.com/bitmark-inc/creatured/publish"
	"github.com/bitmark-inc/creatured/zmqutil"
)

const address = "127.0.0.1:22139"

func TestPublishEvents(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	// key files live in the test log directory
	serverPublic := filepath.Join("testing", "server.public")
	serverPrivate := filepath.Join("testing", "server.private")
	clientPublic := filepath.Join("testing", "client.public")
	clientPrivate := filepath.Join("testing", "client.private")
	assert.Nil(t, zmqutil.MakeKeyPair(serverPublic, serverPrivate), "server keys")
	assert.Nil(t, zmqutil.MakeKeyPair(clientPublic, clientPrivate), "client keys")

	bus := messagebus.NewBroadcast()
	defer bus.Release()

	configuration := &publish.Configuration{
		Broadcast:  []string{address},
		PrivateKey: serverPrivate,
		PublicKey:  serverPublic,
	}

	err := publish.Initialise(configuration, bus)
	assert.Nil(t, err, "initialise")
	defer publish.Finalise()

	err = publish.Initialise(configuration, bus)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	publicKey, _ := zmqutil.ReadPublicKeyFile(clientPublic)
	privateKey, _ := zmqutil.ReadPrivateKeyFile(clientPrivate)
	client, err := zmqutil.NewClient(zmq.SUB, privateKey, publicKey, 100*time.Millisecond)
	assert.Nil(t, err, "new client")
	defer client.Close()

	err = client.Connect(address, publish.PublicKey())
	assert.Nil(t, err, "connect")

	// a subscriber misses anything sent before it has joined, so keep
	// sending until one arrives
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		bus.Send("created", []byte{0x01}, []byte{0x00, 0x02})

		data, err := client.Receive(0)
		if nil != err {
			continue
		}
		assert.Equal(t, [][]byte{[]byte("created"), {0x01}, {0x00, 0x02}}, data, "frames")
		return
	}
	t.Error("no event received")
}

func TestFinaliseNotInitialised(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	assert.Equal(t, fault.ErrNotInitialised, publish.Finalise(), "finalise")
}

func TestInitialiseMissingKeys(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := publish.Initialise(&publish.Configuration{
		Broadcast:  []string{address},
		PrivateKey: "testing/missing.private",
		PublicKey:  "testing/missing.public",
	}, messagebus.NewBroadcast())
	assert.NotNil(t, err, "missing key files")
}
