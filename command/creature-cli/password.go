// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// read a password from the controlling terminal without echo
func readPassword(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if nil != err {
		return "", err
	}
	defer tty.Close()

	fmt.Fprint(tty, prompt)
	password, err := terminal.ReadPassword(int(tty.Fd()))
	fmt.Fprintln(tty)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// new identity password, asked twice
func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password (length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < minPasswordLength {
		return "", ErrInvalidPasswordLength
	}

	verify, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verify {
		return "", ErrPasswordMismatch
	}
	return password, nil
}

// the --password flag if given, otherwise ask
func getPassword(flag string) (string, error) {
	if "" != flag {
		return flag, nil
	}
	return readPassword("password: ")
}
