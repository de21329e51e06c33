// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FileUploadResponse describes an object stored by POST /files.
type FileUploadResponse struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// FileUpload is a file to be sent as multipart form data.
type FileUpload struct {
	// FieldName is the multipart field. Defaults to "file".
	FieldName string
	FileName  string
	Content   []byte
}
