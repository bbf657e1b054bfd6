package models

// ChangeStatus is the normalized status of a changed file.
type ChangeStatus string

const (
	StatusAdded    ChangeStatus = "added"
	StatusModified ChangeStatus = "modified"
	StatusDeleted  ChangeStatus = "deleted"
	StatusRenamed  ChangeStatus = "renamed"
)

type (
	// ChangeRecord is a single normalized file change. For renames DisplayPath
	// is "<old> -> <new>" and MergeKey is the new path.
	ChangeRecord struct {
		Status      ChangeStatus
		DisplayPath string
		MergeKey    string
	}

	// ChangeSet is an ordered collection of change records, unique by MergeKey.
	// Insertion order is first-seen order across merge sources.
	ChangeSet struct {
		Records []ChangeRecord
	}
)

func (s ChangeSet) Len() int {
	return len(s.Records)
}

func (s ChangeSet) IsEmpty() bool {
	return len(s.Records) == 0
}
