package models

// RecordState says whether a related record referenced by a write already
// lives in the store. Write operations link RecordExisting rows without
// touching them and insert RecordNew rows. The tag is explicit rather than
// inferred from the id value, so a zero or negative id never silently
// reclassifies a persisted row as new.
type RecordState int

const (
	// RecordNew is the zero value: the record has never been persisted and
	// must be inserted.
	RecordNew RecordState = iota
	// RecordExisting marks a record that is already persisted and must not
	// be re-inserted or updated by a write that merely references it.
	RecordExisting
)

func (s RecordState) String() string {
	if s == RecordExisting {
		return "existing"
	}
	return "new"
}
