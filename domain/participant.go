// Package domain contains core concepts of the forum channel.
// This file defines User entities, the authors and viewers of a channel.
// No runtime, network, or UI logic should be added here.
package domain

type User struct {
	ID              string `json:"id" yaml:"id" validate:"required"`
	Username        string `json:"username" yaml:"username"`
	DisplayName     string `json:"displayName" yaml:"displayName"`
	ProfileImageURL string `json:"profileImageUrl,omitempty" yaml:"profileImageUrl,omitempty"`
}
