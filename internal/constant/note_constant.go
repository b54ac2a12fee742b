package constant

// Live feed event types.
const (
	NoteCreatedEvent = "note_created"
	NoteUpdatedEvent = "note_updated"
	NoteDeletedEvent = "note_deleted"
)

// Error messages returned to API callers.
const (
	MsgTitleContentRequired = "Title and content are required"
	MsgNoteNotFound         = "Note not found"
	MsgFetchNotesFailed     = "Failed to fetch notes"
	MsgCreateNoteFailed     = "Failed to create note"
	MsgFetchNoteFailed      = "Failed to fetch note"
	MsgUpdateNoteFailed     = "Failed to update note"
	MsgDeleteNoteFailed     = "Failed to delete note"
	MsgNoteDeleted          = "Note deleted successfully"
)
