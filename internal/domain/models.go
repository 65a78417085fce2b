package domain

// Display fallbacks for entries whose feed row is missing a field
const (
	DefaultCategory    = "General"
	DefaultName        = "Unknown Tool"
	DefaultDescription = "No description available."
	DefaultLink        = "#"
)

// Entry represents one catalog item from the directory feed.
// An empty field means the feed row did not carry it.
type Entry struct {
	Name        string
	Category    string
	Description string
	Link        string
}

// DisplayName returns the name shown to the visitor
func (e Entry) DisplayName() string {
	if e.Name == "" {
		return DefaultName
	}
	return e.Name
}

// DisplayCategory returns the category shown to the visitor
func (e Entry) DisplayCategory() string {
	if e.Category == "" {
		return DefaultCategory
	}
	return e.Category
}

// DisplayDescription returns the description shown to the visitor
func (e Entry) DisplayDescription() string {
	if e.Description == "" {
		return DefaultDescription
	}
	return e.Description
}

// Target returns the navigation target for the entry
func (e Entry) Target() string {
	if e.Link == "" {
		return DefaultLink
	}
	return e.Link
}

// HasLink reports whether the entry points somewhere real
func (e Entry) HasLink() bool {
	return e.Target() != DefaultLink
}

// ContactSubmission is the payload of the contact form
type ContactSubmission struct {
	Name    string
	Email   string
	Message string
}
