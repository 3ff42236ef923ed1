package domain

// ReadStatus is the viewer's watermark for a channel.
// LastReadAt is a raw epoch instant in milliseconds, unlike Topic.SentAt.
type ReadStatus struct {
	LastReadAt int64 `json:"lastReadAt" yaml:"lastReadAt"`
	Read       bool  `json:"read" yaml:"read"`
}
