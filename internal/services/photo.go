package services

import (
	"encoding/base64"
	"strings"
)

// decodePhoto accepts plain base64 or a data URL ("data:image/png;base64,...").
func decodePhoto(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, false
		}
		s = s[i+1:]
	}
	if s == "" {
		return nil, false
	}

	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, true
	}
	if b, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return b, true
	}
	return nil, false
}

func encodePhoto(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}
