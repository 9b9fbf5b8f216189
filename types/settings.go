package types

// Setting is a single function-host application setting. Secret entries are
// masked by the reporter and never logged in plaintext.
type Setting struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Secret bool   `json:"secret"`
}

// Settings preserves insertion order, unlike a map, so the reporter and the
// journal render entries deterministically.
type Settings []Setting

// Get returns the value for key and whether it is present.
func (s Settings) Get(key string) (string, bool) {
	for _, entry := range s {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Keys returns setting keys in order.
func (s Settings) Keys() []string {
	keys := make([]string, 0, len(s))
	for _, entry := range s {
		keys = append(keys, entry.Key)
	}
	return keys
}

// MaskToken replaces secret values anywhere settings are displayed or
// persisted locally.
const MaskToken = "********"

// Redacted returns a copy with every secret value replaced by MaskToken.
func (s Settings) Redacted() Settings {
	out := make(Settings, len(s))
	for i, entry := range s {
		if entry.Secret {
			entry.Value = MaskToken
		}
		out[i] = entry
	}
	return out
}

// Map flattens the settings for the control-plane update call. Order is lost
// here; callers that care about order keep the slice.
func (s Settings) Map() map[string]string {
	m := make(map[string]string, len(s))
	for _, entry := range s {
		m[entry.Key] = entry.Value
	}
	return m
}
