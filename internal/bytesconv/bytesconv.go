// Package bytesconv provides allocation-free conversions between byte
// slices and strings for hot paths in the frame codec.
package bytesconv

import "unsafe"

// BytesToString converts bytes to a string without copying the backing
// array. The caller must not mutate b after the call.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}

// StringToBytes converts a string to a byte slice without copying the
// backing array. The returned slice must not be mutated.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
