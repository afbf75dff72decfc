// Package activity provides the fire-and-forget audit log.
//
// Gateway operations report who did what (LOGIN, REGISTER, UPLOAD,
// DOWNLOAD) with an optional detail string and the request's origin
// address. Events are persisted through GORM by a background worker fed
// from a bounded channel: Record never blocks, and neither a full buffer
// nor a failed database write ever surfaces to the operation that emitted
// the event.
package activity
