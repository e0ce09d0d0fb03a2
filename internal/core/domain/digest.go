package domain

import "strings"

// HashAlgorithm names a digest algorithm such as "MD5" or "SHA-256".
type HashAlgorithm string

// Normalize returns the canonical lookup key for the algorithm name:
// upper case with dashes, underscores, slashes and spaces removed.
// "sha-512/256", "SHA512_256" and "Sha512256" all normalize to "SHA512256".
func (a HashAlgorithm) Normalize() string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '/', ' ', '\t':
			return -1
		}
		return r
	}, strings.ToUpper(strings.TrimSpace(string(a))))
}
