package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"

	json "github.com/json-iterator/go"
	"github.com/neighborbank/cli/pkg/logger"
)

// RegisterQuestion creates a question with up to five image attachments
func (c *Client) RegisterQuestion(ctx context.Context, req QuestionRegistration, files []Attachment) error {
	logger.Debug("Registering question", "category", req.CategoryName, "location", req.Location, "files", len(files))
	return c.postForm(ctx, "/qna/register", "question", req, files)
}

// RegisterCommunityPost creates a community post with up to five image attachments
func (c *Client) RegisterCommunityPost(ctx context.Context, req PostRegistration, files []Attachment) error {
	logger.Debug("Registering community post", "category", req.CategoryName, "location", req.Location, "files", len(files))
	return c.postForm(ctx, "/community/register", "post", req, files)
}

func (c *Client) postForm(ctx context.Context, path, field string, payload interface{}, files []Attachment) error {
	body, contentType, err := buildRegistrationForm(field, payload, files)
	if err != nil {
		return err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post(path)

	return CheckResponse(resp, err)
}

// buildRegistrationForm encodes payload as an application/json part named
// field, followed by one "file" part per attachment.
func buildRegistrationForm(field string, payload interface{}, files []Attachment) ([]byte, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode %s: %w", field, err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, field))
	header.Set("Content-Type", "application/json")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form part: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write form part: %w", err)
	}

	for _, f := range files {
		if err := writeFilePart(writer, f); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return body.Bytes(), writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, f Attachment) error {
	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.FileName(), err)
	}
	defer src.Close()

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(f.FileName())))
	header.Set("Content-Type", f.ContentType())
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("failed to copy %s: %w", f.FileName(), err)
	}
	return nil
}

func escapeQuotes(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
