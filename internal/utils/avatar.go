package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// AvatarURL derives a deterministic gravatar-style URL from an email
// address. Placeholder emails produce no URL.
func AvatarURL(email string) string {
	email = strings.TrimSpace(email)
	if email == "" || email == "No email" {
		return ""
	}
	email = strings.ToLower(email)
	sum := md5.Sum([]byte(email))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?d=identicon"
}
