// Package digest resolves digest engines by algorithm name. It covers the
// standard library hashes plus SHA-3, BLAKE2, MD4 and RIPEMD-160 from
// golang.org/x/crypto.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"hash/adler32"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/iamNilotpal/streamkit/internal/core/domain"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

const (
	MD4        domain.HashAlgorithm = "MD4"
	MD5        domain.HashAlgorithm = "MD5"
	SHA1       domain.HashAlgorithm = "SHA-1"
	SHA224     domain.HashAlgorithm = "SHA-224"
	SHA256     domain.HashAlgorithm = "SHA-256"
	SHA384     domain.HashAlgorithm = "SHA-384"
	SHA512     domain.HashAlgorithm = "SHA-512"
	SHA512_224 domain.HashAlgorithm = "SHA-512/224"
	SHA512_256 domain.HashAlgorithm = "SHA-512/256"
	SHA3_224   domain.HashAlgorithm = "SHA3-224"
	SHA3_256   domain.HashAlgorithm = "SHA3-256"
	SHA3_384   domain.HashAlgorithm = "SHA3-384"
	SHA3_512   domain.HashAlgorithm = "SHA3-512"
	BLAKE2b256 domain.HashAlgorithm = "BLAKE2b-256"
	BLAKE2b384 domain.HashAlgorithm = "BLAKE2b-384"
	BLAKE2b512 domain.HashAlgorithm = "BLAKE2b-512"
	BLAKE2s256 domain.HashAlgorithm = "BLAKE2s-256"
	RIPEMD160  domain.HashAlgorithm = "RIPEMD-160"

	// CRC32IEEE uses the IEEE polynomial for CRC32 checksums
	CRC32IEEE domain.HashAlgorithm = "crc32-ieee"

	// CRC32C uses the Castagnoli polynomial for CRC32 checksums
	CRC32C domain.HashAlgorithm = "crc32c"

	// CRC64ISO uses the ISO polynomial for CRC64 checksums
	CRC64ISO domain.HashAlgorithm = "crc64-iso"

	// CRC64ECMA uses the ECMA polynomial for CRC64 checksums
	CRC64ECMA domain.HashAlgorithm = "crc64-ecma"

	Adler32 domain.HashAlgorithm = "adler32"
	FNV32   domain.HashAlgorithm = "fnv32"
	FNV32a  domain.HashAlgorithm = "fnv32a"
	FNV64   domain.HashAlgorithm = "fnv64"
	FNV64a  domain.HashAlgorithm = "fnv64a"
	FNV128  domain.HashAlgorithm = "fnv128"
	FNV128a domain.HashAlgorithm = "fnv128a"
)

type constructor func() (hash.Hash, error)

func infallible(fn func() hash.Hash) constructor {
	return func() (hash.Hash, error) { return fn(), nil }
}

func unkeyed(fn func(key []byte) (hash.Hash, error)) constructor {
	return func() (hash.Hash, error) { return fn(nil) }
}

// Registry maps normalized algorithm names to digest constructors.
// The zero value is empty; use NewRegistry for the built-in set.
type Registry struct {
	names        []string
	constructors map[string]constructor
}

// NewRegistry returns a registry holding every built-in algorithm.
func NewRegistry() *Registry {
	r := &Registry{constructors: make(map[string]constructor)}

	r.register(MD4, infallible(md4.New))
	r.register(MD5, infallible(md5.New))
	r.register(SHA1, infallible(sha1.New), "SHA")
	r.register(SHA224, infallible(sha256.New224))
	r.register(SHA256, infallible(sha256.New))
	r.register(SHA384, infallible(sha512.New384))
	r.register(SHA512, infallible(sha512.New))
	r.register(SHA512_224, infallible(sha512.New512_224))
	r.register(SHA512_256, infallible(sha512.New512_256))
	r.register(SHA3_224, infallible(sha3.New224))
	r.register(SHA3_256, infallible(sha3.New256))
	r.register(SHA3_384, infallible(sha3.New384))
	r.register(SHA3_512, infallible(sha3.New512))
	r.register(BLAKE2b256, unkeyed(blake2b.New256))
	r.register(BLAKE2b384, unkeyed(blake2b.New384))
	r.register(BLAKE2b512, unkeyed(blake2b.New512))
	r.register(BLAKE2s256, unkeyed(blake2s.New256))
	r.register(RIPEMD160, infallible(ripemd160.New))

	r.registerChecksums()

	r.register(Adler32, infallible(func() hash.Hash { return adler32.New() }))
	r.register(FNV32, infallible(func() hash.Hash { return fnv.New32() }))
	r.register(FNV32a, infallible(func() hash.Hash { return fnv.New32a() }))
	r.register(FNV64, infallible(func() hash.Hash { return fnv.New64() }))
	r.register(FNV64a, infallible(func() hash.Hash { return fnv.New64a() }))
	r.register(FNV128, infallible(fnv.New128))
	r.register(FNV128a, infallible(fnv.New128a))

	return r
}

func (r *Registry) register(name domain.HashAlgorithm, fn constructor, aliases ...string) {
	r.names = append(r.names, string(name))
	r.constructors[name.Normalize()] = fn
	for _, alias := range aliases {
		r.constructors[domain.HashAlgorithm(alias).Normalize()] = fn
	}
}

// New returns a fresh digest engine for the named algorithm.
func (r *Registry) New(algorithm string) (hash.Hash, error) {
	key := domain.HashAlgorithm(algorithm).Normalize()
	if key == "" {
		return nil, fmt.Errorf("hash algorithm name is empty")
	}

	fn, ok := r.constructors[key]
	if !ok {
		return nil, fmt.Errorf("unsupported hash algorithm: %q", algorithm)
	}
	return fn()
}

// Algorithms lists the canonical names of the registered algorithms, sorted.
func (r *Registry) Algorithms() []string {
	names := slices.Clone(r.names)
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
	})
	return names
}

// Validate reports whether the algorithm name can be resolved by r.
func (r *Registry) Validate(algorithm string) error {
	_, err := r.New(algorithm)
	return err
}
