// Package hash provides one-way password hashing for user credentials.
//
// bcrypt embeds the salt and cost in the digest and compares in constant
// time, so a single string column is all the store needs.
package hash

import "golang.org/x/crypto/bcrypt"

// Make returns a salted bcrypt digest of the plain-text password.
func Make(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check reports whether plain hashes to digest. A malformed digest
// yields false, never an error or panic.
func Check(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
