package models

// RowName maps a zero-based creation sequence number to a row identifier
// using bijective base-26 letters: 0 is "a", 25 is "z", 26 is "aa".
func RowName(seq int) string {
	if seq < 0 {
		return ""
	}

	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	var buf []byte
	for n := seq + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, alphabet[(n-1)%26])
	}

	// Digits were produced least significant first
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// RowSequence is the inverse of RowName. It returns -1 for anything that is
// not a lowercase letter sequence.
func RowSequence(name string) int {
	if name == "" {
		return -1
	}

	n := 0
	for _, r := range name {
		if r < 'a' || r > 'z' {
			return -1
		}
		n = n*26 + int(r-'a') + 1
	}
	return n - 1
}
