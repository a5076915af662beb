package ports

// ConversionJob is one profile-picture upload awaiting conversion to an
// embeddable data URI. Jobs for the same draft are processed in order.
type ConversionJob struct {
	DraftID  string
	Filename string
	Data     []byte
}

// PictureDispatcher enqueues conversion jobs for asynchronous processing.
type PictureDispatcher interface {
	Enqueue(job ConversionJob)
}

// PictureDrafts stores the converted picture for each signup draft. A later
// completion for the same draft overwrites an earlier one.
type PictureDrafts interface {
	SetPicture(draftID, dataURI string)
	Picture(draftID string) (string, bool)
}
