package domain

import "time"

// SyncMetadata describes the last push to the cloud store.
type SyncMetadata struct {
	LastModified time.Time `json:"lastModified"`
	DeviceID     string    `json:"deviceId"`
	FlowerCount  int       `json:"flowerCount"`
}

// SyncStatus is what the garden reports about cloud sync.
type SyncStatus struct {
	Enabled  bool          `json:"enabled"`
	LastSync *time.Time    `json:"lastSync,omitempty"`
	Remote   *SyncMetadata `json:"remote,omitempty"`
}
