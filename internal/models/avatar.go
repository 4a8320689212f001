package models

import "strings"

// DefaultAvatarURL derives a ui-avatars.com URL from a display name. Empty
// names get no avatar.
func DefaultAvatarURL(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	return "https://ui-avatars.com/api/?name=" + strings.ReplaceAll(name, " ", "%20") + "&background=0D8ABC&color=fff"
}
