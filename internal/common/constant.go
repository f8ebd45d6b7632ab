package common

// Storage partition keys. Each key holds one JSON document.
const (
	AccountsKey = "device_profiler_users"
	DevicesKey  = "device_profiler_devices"
	SessionKey  = "device_profiler_current_user"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8
