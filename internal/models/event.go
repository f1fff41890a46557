package models

import (
	"time"
)

// WebsiteEvent is a single website interaction record. Events are not
// persisted as a table; they are emitted one at a time for streaming
// consumers. CustomerID is drawn from a fixed range and is not
// validated against the generated customers table.
type WebsiteEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	CustomerID int64     `json:"customer_id"`
	SessionID  string    `json:"session_id"`
	EventType  EventType `json:"event_type"`
	Page       string    `json:"page"`
	Device     Device    `json:"device"`
	Browser    string    `json:"browser"`
	OS         string    `json:"os"`
	IP         string    `json:"ip"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	Referrer   string    `json:"referrer,omitempty"`
}

// EventType is the kind of website interaction an event records.
type EventType string

const (
	EventPageview       EventType = "pageview"
	EventAddToCart      EventType = "add_to_cart"
	EventRemoveFromCart EventType = "remove_from_cart"
	EventCheckout       EventType = "checkout"
	EventPurchase       EventType = "purchase"
)

// EventTypes lists every valid event type.
var EventTypes = []EventType{
	EventPageview,
	EventAddToCart,
	EventRemoveFromCart,
	EventCheckout,
	EventPurchase,
}

// Device is the device class an event originated from.
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
	DeviceTablet  Device = "tablet"
)

// Devices lists every valid device class.
var Devices = []Device{DeviceDesktop, DeviceMobile, DeviceTablet}

// EventCountry is the constant country stamped on every event.
const EventCountry = "Brazil"

// Fixed pools the event generator picks from. An empty referrer means
// the visit was direct with no referrer recorded at all.
var (
	EventPages = []string{
		"/home",
		"/products",
		"/cart",
		"/checkout",
		"/product/123",
		"/category/electronics",
		"/account",
	}

	EventBrowsers = []string{"Chrome", "Firefox", "Safari", "Edge"}

	EventOperatingSystems = []string{"Windows", "MacOS", "Linux", "iOS", "Android"}

	EventReferrers = []string{
		"google.com",
		"facebook.com",
		"instagram.com",
		"direct",
		"email",
		"",
	}
)
