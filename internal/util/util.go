package util

import (
	"crypto/sha256"
	"fmt"
)

// ChecksumHex returns the hex SHA256 digest of data.
func ChecksumHex(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
