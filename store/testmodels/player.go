/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package testmodels holds shared record fixtures for tests and examples.
package testmodels

import "github.com/go-openapi/strfmt"

type Player struct {

	// Unique identifier for the player.
	// Required: true
	ID string `json:"Id"`

	// Display name of the player.
	// Required: true
	Name string `json:"Name"`

	// Age in years.
	Age int `json:"Age,omitempty"`

	// ISO country code.
	Country string `json:"Country,omitempty"`

	// Current rating.
	Rating float64 `json:"Rating,omitempty"`

	// Timestamp when the player registered.
	// Format: date-time
	CreatedAt strfmt.DateTime `json:"CreatedAt,omitempty"`
}
