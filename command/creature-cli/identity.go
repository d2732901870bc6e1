// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"io/ioutil"
	"os"

	"github.com/bitmark-inc/creatured/account"
	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/ed25519"
)

const (
	saltSize           = 32
	minPasswordLength  = 8
	passwordCheckTitle = "Creature Command Line Interface"
)

// identity - the stored form of an account and its encrypted key
type identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Salt        string `json:"salt"`
	PrivateKey  string `json:"private_key"`
}

// create a new key pair and encrypt it with the password
func makeIdentity(test bool, description string, password string, random io.Reader) (*identity, *account.PrivateKey, error) {
	if len(password) < minPasswordLength {
		return nil, nil, ErrInvalidPasswordLength
	}

	privateKey, err := account.NewPrivateKey(test, random)
	if nil != err {
		return nil, nil, err
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(random, salt); nil != err {
		return nil, nil, err
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, nil, err
	}

	encrypted, err := encryptPrivateKey(privateKey.Bytes(), key, random)
	if nil != err {
		return nil, nil, err
	}

	id := &identity{
		Description: description,
		Account:     privateKey.Account().String(),
		Salt:        hex.EncodeToString(salt),
		PrivateKey:  hex.EncodeToString(encrypted),
	}
	return id, privateKey, nil
}

// the public account, no password needed
func (id *identity) account() (*account.Account, error) {
	acc, err := account.AccountFromBase58(id.Account)
	if nil != err {
		return nil, ErrInvalidIdentity
	}
	return acc, nil
}

// decrypt the private key
func (id *identity) unlock(password string) (*account.PrivateKey, error) {
	acc, err := id.account()
	if nil != err {
		return nil, err
	}

	salt, err := hex.DecodeString(id.Salt)
	if nil != err || saltSize != len(salt) {
		return nil, ErrInvalidIdentity
	}

	ciphertext, err := hex.DecodeString(id.PrivateKey)
	if nil != err {
		return nil, ErrInvalidIdentity
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	plaintext, err := decryptPrivateKey(ciphertext, key)
	if nil != err {
		return nil, err
	}

	if !checkSignature(acc.PublicKeyBytes(), plaintext) {
		return nil, ErrWrongPassword
	}

	return account.PrivateKeyFromBytes(acc.IsTesting(), plaintext)
}

func generateKey(password string, salt []byte) ([]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	return argon2.Hash(ctx, []byte(password), salt)
}

// output is: IV ++ AES-CBC(private key)
func encryptPrivateKey(plaintext []byte, key []byte, random io.Reader) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	if len(plaintext) != ed25519.PrivateKeySize {
		return nil, ErrInvalidIdentity
	}

	ciphertext := make([]byte, aes.BlockSize+ed25519.PrivateKeySize)
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(random, iv); nil != err {
		return nil, err
	}
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext[aes.BlockSize:], plaintext)

	return ciphertext, nil
}

func decryptPrivateKey(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return nil, err
	}

	if len(ciphertext) != aes.BlockSize+ed25519.PrivateKeySize {
		return nil, ErrInvalidIdentity
	}

	iv := ciphertext[:aes.BlockSize]
	plaintext := make([]byte, ed25519.PrivateKeySize)
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(plaintext, ciphertext[aes.BlockSize:])

	return plaintext, nil
}

// a wrong password yields garbage that cannot sign for the public key
func checkSignature(publicKey []byte, privateKey []byte) bool {
	nonce := make([]byte, saltSize)
	if _, err := rand.Read(nonce); nil != err {
		return false
	}
	message := append([]byte(passwordCheckTitle), nonce...)
	signature := ed25519.Sign(privateKey, message)
	return ed25519.Verify(publicKey, message, signature)
}

func readIdentity(fileName string) (*identity, error) {
	if "" == fileName {
		return nil, ErrMissingIdentity
	}

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var id identity
	if err := json.Unmarshal(data, &id); nil != err {
		return nil, ErrInvalidIdentity
	}
	return &id, nil
}

// never overwrites an existing file
func writeIdentity(fileName string, id *identity) error {
	if "" == fileName {
		return ErrMissingIdentity
	}

	data, err := json.MarshalIndent(id, "", "  ")
	if nil != err {
		return err
	}

	fd, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		if os.IsExist(err) {
			return ErrIdentityExists
		}
		return err
	}
	defer fd.Close()

	_, err = fd.Write(append(data, '\n'))
	return err
}
