package domain

import "time"

// Ledger manipulation is kept as pure slice transforms so the redis store
// stays a dumb read-modify-write wrapper around them.

// IsSaved reports whether the ledger contains the (id, kind) pair.
func IsSaved(items []SavedItem, id string, kind Kind) bool {
	for _, it := range items {
		if it.ID == id && it.Type == kind {
			return true
		}
	}
	return false
}

// ToggleSaved adds the (id, kind) pair with the given timestamp, or removes
// it when already present. Returns the new ledger and whether the pair is
// saved afterwards.
func ToggleSaved(items []SavedItem, id string, kind Kind, now time.Time) ([]SavedItem, bool) {
	if IsSaved(items, id, kind) {
		out := make([]SavedItem, 0, len(items))
		for _, it := range items {
			if it.ID == id && it.Type == kind {
				continue
			}
			out = append(out, it)
		}
		return out, false
	}
	return append(items, SavedItem{ID: id, Type: kind, SavedAt: now}), true
}

// TogglePreference adds a (type, value) preference with the given id, or
// removes the existing one. Returns the new ledger and whether the pair is
// present afterwards.
func TogglePreference(prefs []Preference, prefType, value, newID string) ([]Preference, bool) {
	for i, p := range prefs {
		if p.Type == prefType && p.Value == value {
			out := make([]Preference, 0, len(prefs)-1)
			out = append(out, prefs[:i]...)
			out = append(out, prefs[i+1:]...)
			return out, false
		}
	}
	return append(prefs, Preference{ID: newID, Type: prefType, Value: value}), true
}

// ToggleNotification adds an entity id to the notification list, or removes
// it when already present. Returns the new list and whether the id is
// present afterwards.
func ToggleNotification(ids []string, id string) ([]string, bool) {
	for i, existing := range ids {
		if existing == id {
			out := make([]string, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			out = append(out, ids[i+1:]...)
			return out, false
		}
	}
	return append(ids, id), true
}
