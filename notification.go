package puremvc

// Notification is the transient message broadcast to interested
// observers and commands. Name routes it, Body carries an optional
// payload, and Type is an optional tag for handlers that multiplex
// several message kinds over one name.
//
// Notifications are created per send and discarded once delivery
// completes; nothing in the framework retains them.
type Notification struct {
	Name string
	Body any
	Type string
}
