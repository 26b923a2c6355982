// Copyright 2025 The Project Bullrun Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package memory

import (
	"crypto/md5"  //nolint:gosec // offered for checksum compatibility, not security
	"crypto/sha1" //nolint:gosec // offered for checksum compatibility, not security
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	hashengines "github.com/harshatech2012/project-bullrun/pkg/hashing/engines"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// plain wraps an infallible hash constructor as a HashFactoryFunc.
func plain(newHash func() hash.Hash) HashFactoryFunc {
	return func() (hash.Hash, error) {
		return newHash(), nil
	}
}

// engineFactory returns an EngineFactory producing GenericEngine instances
// for the named algorithm.
func engineFactory(name string, size int, factory HashFactoryFunc) hashengines.EngineFactory {
	return func() (hashengines.StreamingHashEngine, error) {
		return NewGenericEngine(name, size, factory, nil)
	}
}

func init() {
	hashengines.MustRegister("md5", engineFactory("md5", md5.Size, plain(md5.New)))
	hashengines.MustRegister("sha1", engineFactory("sha1", sha1.Size, plain(sha1.New)))
	hashengines.MustRegister("sha224", engineFactory("sha224", sha256.Size224, plain(sha256.New224)))
	hashengines.MustRegister("sha256", engineFactory("sha256", sha256.Size, plain(sha256.New)))
	hashengines.MustRegister("sha384", engineFactory("sha384", sha512.Size384, plain(sha512.New384)))
	hashengines.MustRegister("sha512", engineFactory("sha512", sha512.Size, plain(sha512.New)))
	hashengines.MustRegister("sha3-256", engineFactory("sha3-256", 32, plain(sha3.New256)))
	hashengines.MustRegister("sha3-512", engineFactory("sha3-512", 64, plain(sha3.New512)))
	hashengines.MustRegister("blake2b-256", engineFactory("blake2b-256", blake2b.Size256,
		func() (hash.Hash, error) { return blake2b.New256(nil) }))
	hashengines.MustRegister("blake2b-512", engineFactory("blake2b-512", blake2b.Size,
		func() (hash.Hash, error) { return blake2b.New512(nil) }))
}
