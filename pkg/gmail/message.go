package gmail

import (
	"encoding/base64"
	"strings"

	// Packages
	schema "github.com/NageshMuniraja/MCP-Project/pkg/schema"
	gmail "google.golang.org/api/gmail/v1"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// headerMap flattens the payload headers into a name to value mapping
func headerMap(payload *gmail.MessagePart) map[string]string {
	if payload == nil {
		return nil
	}
	result := make(map[string]string, len(payload.Headers))
	for _, header := range payload.Headers {
		result[header.Name] = header.Value
	}
	return result
}

// textFromPayload recursively extracts the text/plain content from a
// message payload, concatenating multipart children
func textFromPayload(payload *gmail.MessagePart) string {
	if payload == nil {
		return ""
	}

	// A leaf text/plain part with data decodes directly
	if payload.MimeType == "text/plain" && payload.Body != nil && payload.Body.Data != "" {
		if text, ok := decodeBody(payload.Body.Data); ok {
			return text
		}
		return ""
	}

	// Multipart: walk children and concatenate text/plain parts
	var texts []string
	for _, part := range payload.Parts {
		if text := textFromPayload(part); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "\n")
}

// collectAttachments walks the part tree and returns attachment
// metadata for parts with a filename and body content
func collectAttachments(parts []*gmail.MessagePart) []schema.Attachment {
	var result []schema.Attachment
	for _, part := range parts {
		if part == nil {
			continue
		}
		if part.Filename != "" && part.Body != nil && (part.Body.AttachmentId != "" || part.Body.Data != "") {
			result = append(result, schema.Attachment{
				Filename:     part.Filename,
				MimeType:     part.MimeType,
				AttachmentID: part.Body.AttachmentId,
				Size:         part.Body.Size,
			})
		}
		if len(part.Parts) > 0 {
			result = append(result, collectAttachments(part.Parts)...)
		}
	}
	return result
}

// decodeBody decodes base64url body data, tolerating both padded and
// unpadded input
func decodeBody(data string) (string, bool) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(data, "="))
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

// preview returns the first n bytes of text as a pointer, for optional
// inclusion in a result
func preview(text string, n int) *string {
	if len(text) > n {
		text = text[:n]
	}
	return &text
}
