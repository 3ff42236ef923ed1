package errors

import "fmt"

var (
	ErrInvalidSnapshot  = fmt.Errorf("invalid channel snapshot")
	ErrSnapshotNotFound = fmt.Errorf("channel snapshot not found")
	ErrUnknownRenderer  = fmt.Errorf("unknown renderer")
	ErrCapabilityLookup = fmt.Errorf("capability lookup failed")
	ErrEmptyCommunityID = fmt.Errorf("community id is required")
)
