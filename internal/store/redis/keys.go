package redis

import "strings"

const (
	// KeyPrefixSession is the prefix for per-user session hashes
	KeyPrefixSession = "marquee:session:"
	// KeyPrefixSaved is the prefix for per-user saved-item ledgers
	KeyPrefixSaved = "marquee:saved:"
	// KeyPrefixPrefs is the prefix for per-user preference ledgers
	KeyPrefixPrefs = "marquee:prefs:"
	// KeyPrefixNotify is the prefix for per-user notification lists
	KeyPrefixNotify = "marquee:notify:"
)

// SessionKey returns the Redis key for a user's session hash.
func SessionKey(user string) string {
	return KeyPrefixSession + normalizeUser(user)
}

// SavedKey returns the Redis key for a user's saved-item ledger.
func SavedKey(user string) string {
	return KeyPrefixSaved + normalizeUser(user)
}

// PrefsKey returns the Redis key for a user's preference ledger.
func PrefsKey(user string) string {
	return KeyPrefixPrefs + normalizeUser(user)
}

// NotifyKey returns the Redis key for a user's notification list.
func NotifyKey(user string) string {
	return KeyPrefixNotify + normalizeUser(user)
}

// normalizeUser lowercases the user identity so "User@Example.com" and
// "user@example.com" share one ledger.
func normalizeUser(user string) string {
	return strings.ToLower(strings.TrimSpace(user))
}
