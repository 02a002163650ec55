// Package event defines the library event and library records.
//
// An Event is one logged library program (a storytime, a talk, a workshop)
// with attendance, cost and funding metadata. A Library is one branch
// location. Events reference libraries by name, not by id: renaming or
// deleting a library leaves its historical events pointing at the old name.
//
// Records enter the system as a Payload (raw form values). Payload.ToEvent
// validates the required selection fields and coerces the numeric fields,
// degrading unparseable or negative numbers to 0 instead of failing.
package event
