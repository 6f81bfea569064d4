package common

import "time"

// Storage namespaces. Each namespace holds a single durable record, read once
// at startup and rewritten on every mutation of the corresponding store.
const (
	SessionStorageName = "session-storage"
	ThemeStorageName   = "theme-storage"
)

// SessionMirrorTTL is the lifetime of the externally mirrored session
// indicator set on login and removed on logout.
const SessionMirrorTTL = 24 * time.Hour
