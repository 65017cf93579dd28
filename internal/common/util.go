// Package common holds small helpers shared by otherwise unrelated packages.
package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to remove passwords from memory once they have been sent.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
