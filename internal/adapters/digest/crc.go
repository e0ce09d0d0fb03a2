package digest

import (
	"hash"
	"hash/crc32"
	"hash/crc64"
)

var (
	castagnoliTable = crc32.MakeTable(crc32.Castagnoli)
	crc64ISOTable   = crc64.MakeTable(crc64.ISO)
	crc64ECMATable  = crc64.MakeTable(crc64.ECMA)
)

// CRC sums are big-endian in Sum, so their hex digests read like the
// conventional integer form (CRC32 of "123456789" is CBF43926).
func (r *Registry) registerChecksums() {
	r.register(CRC32IEEE, infallible(func() hash.Hash { return crc32.NewIEEE() }), "crc32")
	r.register(CRC32C, infallible(func() hash.Hash { return crc32.New(castagnoliTable) }), "crc32-castagnoli")
	r.register(CRC64ISO, infallible(func() hash.Hash { return crc64.New(crc64ISOTable) }))
	r.register(CRC64ECMA, infallible(func() hash.Hash { return crc64.New(crc64ECMATable) }), "crc64")
}
