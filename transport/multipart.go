package transport

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/vitwit/checkout/types"
)

// FormFile is one file part of a multipart upload.
type FormFile struct {
	Field       string
	Filename    string
	ContentType string
	Content     io.Reader
}

// MultipartBuilder serializes upload forms. The file resource takes one so
// callers can stream from their own encoder.
type MultipartBuilder interface {
	Build(fields types.Params, files ...FormFile) (*types.PrebuiltBody, error)
}

// MultipartFunc adapts a function to MultipartBuilder.
type MultipartFunc func(fields types.Params, files ...FormFile) (*types.PrebuiltBody, error)

func (f MultipartFunc) Build(fields types.Params, files ...FormFile) (*types.PrebuiltBody, error) {
	return f(fields, files...)
}

// DefaultMultipart builds bodies with mime/multipart.
var DefaultMultipart MultipartBuilder = MultipartFunc(BuildMultipart)

// BuildMultipart serializes fields and files into a multipart body. The
// returned content type carries the boundary.
func BuildMultipart(fields types.Params, files ...FormFile) (*types.PrebuiltBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if f.Value == nil {
			continue
		}
		if err := w.WriteField(f.Key, formatQueryValue(f.Value)); err != nil {
			return nil, errors.Wrapf(err, "failed to write form field %s", f.Key)
		}
	}

	for _, file := range files {
		if file.Content == nil {
			return nil, types.NewValueError("file content is required")
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+escapeQuotes(file.Field)+`"; filename="`+escapeQuotes(file.Filename)+`"`)
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create file part")
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, errors.Wrap(err, "failed to copy file content")
		}
	}

	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to close multipart writer")
	}

	return &types.PrebuiltBody{Reader: &buf, ContentType: w.FormDataContentType()}, nil
}

// BuildForm serializes url-encoded form values.
func BuildForm(values url.Values) *types.PrebuiltBody {
	return &types.PrebuiltBody{
		Reader:      strings.NewReader(values.Encode()),
		ContentType: "application/x-www-form-urlencoded",
	}
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
