package core

import "io"

// Attachment is a file to be sent to the portal backend as a multipart part.
type Attachment struct {
	Content     io.Reader
	ContentType string
	Filename    string
}
