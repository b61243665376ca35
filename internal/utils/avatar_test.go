package utils

import (
	"strings"
	"testing"
)

func TestAvatarURL_Deterministic(t *testing.T) {
	url1 := AvatarURL("member@example.com")
	url2 := AvatarURL("member@example.com")

	if url1 != url2 {
		t.Error("same email should produce the same avatar URL")
	}
	if !strings.HasPrefix(url1, "https://www.gravatar.com/avatar/") {
		t.Errorf("unexpected avatar URL: %q", url1)
	}
}

func TestAvatarURL_CaseInsensitive(t *testing.T) {
	if AvatarURL("Member@Example.COM") != AvatarURL("member@example.com") {
		t.Error("avatar derivation should be case-insensitive")
	}
}

func TestAvatarURL_Placeholder(t *testing.T) {
	if AvatarURL("") != "" {
		t.Error("empty email should produce no avatar URL")
	}
	if AvatarURL("No email") != "" {
		t.Error("placeholder email should produce no avatar URL")
	}
}
