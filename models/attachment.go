package models

import "strings"

// Attachment is a file chosen by the user or an image pasted/dropped into the form.
type Attachment struct {
	Name     string
	MimeType string

	// URI is displayable by the preview: a file:// URI or a data: URI.
	URI string

	Data []byte
}

// IsEmpty reports whether the attachment is missing or has no content.
func (a *Attachment) IsEmpty() bool {
	return a == nil || len(a.Data) == 0
}

// IsImage reports whether the attachment's MIME type is an image type.
func (a *Attachment) IsImage() bool {
	return a != nil && strings.HasPrefix(a.MimeType, "image/")
}

// Clone returns a deep copy of a. A nil attachment clones to nil.
func (a *Attachment) Clone() *Attachment {
	if a == nil {
		return nil
	}
	c := *a
	c.Data = append([]byte(nil), a.Data...)
	return &c
}

// TransferItem is one entry of a clipboard paste or a drag-and-drop.
// Read is called lazily so non-image items are never loaded.
type TransferItem struct {
	Name     string
	MimeType string

	// URI is set for items that come from the filesystem.
	URI string

	Read func() ([]byte, error)
}
