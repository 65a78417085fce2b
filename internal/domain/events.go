package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDirectoryLoaded      EventType = "DirectoryLoaded"
	EventDirectoryFetchFailed EventType = "DirectoryFetchFailed"
	EventFilterChanged        EventType = "FilterChanged"
	EventPreferencesChanged   EventType = "PreferencesChanged"
	EventContactSubmitted     EventType = "ContactSubmitted"
	EventContactFailed        EventType = "ContactFailed"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventError                EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DirectoryLoadedEvent is emitted when a fetch replaced the catalog
type DirectoryLoadedEvent struct {
	Count      int
	Categories int
}

func (e DirectoryLoadedEvent) Type() EventType { return EventDirectoryLoaded }

// DirectoryFetchFailedEvent is emitted when a fetch left the catalog untouched
type DirectoryFetchFailedEvent struct {
	Err error
}

func (e DirectoryFetchFailedEvent) Type() EventType { return EventDirectoryFetchFailed }

// FilterChangedEvent is emitted after the visible subset was recomputed
type FilterChangedEvent struct {
	SearchTerm string
	Category   string
	Visible    int
	Total      int
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// PreferencesChangedEvent is emitted when the visitor changes theme or palette.
// Seq increases with every change.
type PreferencesChangedEvent struct {
	Seq     uint64
	Theme   string
	Palette string
}

func (e PreferencesChangedEvent) Type() EventType { return EventPreferencesChanged }

// ContactSubmittedEvent is emitted when the contact form was accepted
type ContactSubmittedEvent struct {
	Email string
}

func (e ContactSubmittedEvent) Type() EventType { return EventContactSubmitted }

// ContactFailedEvent is emitted when the contact form was rejected
type ContactFailedEvent struct {
	Err error
}

func (e ContactFailedEvent) Type() EventType { return EventContactFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	FeedURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
