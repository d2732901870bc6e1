// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"strconv"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/creatured/claim"
	"github.com/bitmark-inc/creatured/creature"
	"github.com/bitmark-inc/creatured/util"
)

type fieldKind int

const (
	accountField fieldKind = iota
	numberField
	hexField
)

type field struct {
	name string
	kind fieldKind
}

// layout of the parameter frames of each broadcast
var eventFields = map[string][]field{
	creature.EventCreated:     {{"owner", accountField}, {"index", numberField}},
	creature.EventTransferred: {{"from", accountField}, {"to", accountField}, {"index", numberField}},
	creature.EventBred:        {{"owner", accountField}, {"index", numberField}},
	creature.EventListed:      {{"index", numberField}, {"price", numberField}},
	creature.EventPurchased:   {{"index", numberField}, {"buyer", accountField}},
	claim.EventCreated:        {{"owner", accountField}, {"proof", hexField}},
	claim.EventRevoked:        {{"owner", accountField}, {"proof", hexField}},
	claim.EventTransferred:    {{"from", accountField}, {"to", accountField}, {"proof", hexField}},
}

// decodeEvent - readable form of a received message
//
// frames that do not match the known layout are shown as hex
func decodeEvent(frames [][]byte) map[string]string {
	result := map[string]string{}
	if 0 == len(frames) {
		return result
	}

	command := string(frames[0])
	result["event"] = command

	layout := eventFields[command]
	for i, data := range frames[1:] {
		name := "p" + strconv.Itoa(i+1)
		kind := hexField
		if i < len(layout) {
			name = layout[i].name
			kind = layout[i].kind
		}
		result[name] = decodeField(kind, data)
	}
	return result
}

func decodeField(kind fieldKind, data []byte) string {
	switch kind {
	case accountField:
		acc, err := account.AccountFromBytes(data)
		if nil == err {
			return acc.String()
		}
	case numberField:
		if 8 == len(data) {
			value, _ := util.BytesToUint64(data)
			return strconv.FormatUint(value, 10)
		}
	}
	return hex.EncodeToString(data)
}
