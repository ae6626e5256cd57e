package common

// WipeByteArray zeroes the given slice in place. Used to scrub password
// buffers once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
