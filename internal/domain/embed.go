package domain

import "strings"

// AdminPath is the only path that unlocks the admin controls. It is not an access check.
const AdminPath = "/manage"

func IsAdminPath(path string) bool {
	return path == AdminPath
}

// EmbedURL rewrites known YouTube page URLs into their iframe form.
// Anything else is returned untouched.
func EmbedURL(url string) string {
	switch {
	case url == "":
		return ""
	case strings.Contains(url, "youtube.com/watch?v="):
		return strings.Replace(url, "watch?v=", "embed/", 1)
	case strings.Contains(url, "youtu.be/"):
		return strings.Replace(url, "youtu.be/", "www.youtube.com/embed/", 1)
	}
	return url
}
