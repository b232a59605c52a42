package common

// WipeByteArray overwrites b with zeros. Used to clear password buffers as
// soon as they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
