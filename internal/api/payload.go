package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"portfolio-admin/internal/upload"
)

// Payload is an encoded request body together with its content type
type Payload struct {
	body        io.Reader
	contentType string
	multipart   bool
}

// NewJSONPayload encodes v as a JSON body
func NewJSONPayload(v any) (*Payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, encodeError(err)
	}
	return &Payload{body: bytes.NewReader(data), contentType: "application/json"}, nil
}

// Multipart reports whether the body is multipart/form-data
func (p *Payload) Multipart() bool {
	return p.multipart
}

// ContentType returns the content type the body was encoded with
func (p *Payload) ContentType() string {
	return p.contentType
}

// Image is the picture attached to a submission: either a URL the
// operator typed or a file selected on their machine
type Image struct {
	URL  string
	File *upload.File
}

// ImageFromURL attaches an already hosted image
func ImageFromURL(u string) Image {
	return Image{URL: u}
}

// ImageFromFile attaches a local file, sent as multipart
func ImageFromFile(f upload.File) Image {
	return Image{File: &f}
}

// IsZero reports whether no image was attached
func (i Image) IsZero() bool {
	return i.URL == "" && i.File == nil
}

// ProjectInput is a project as the operator submits it
type ProjectInput struct {
	Name           string
	Description    string
	DemoLink       string
	SourceCodeLink string
	Thumbnail      Image
}

func (p ProjectInput) payload() (*Payload, error) {
	return submission{
		fields: []formField{
			{"name", p.Name},
			{"description", p.Description},
			{"demoLink", p.DemoLink},
			{"sourceCodeLink", p.SourceCodeLink},
		},
		imageField: "thumbnail",
		image:      p.Thumbnail,
	}.encode()
}

// SkillInput is a skill as the operator submits it
type SkillInput struct {
	Name  string
	Image Image
}

func (s SkillInput) payload() (*Payload, error) {
	return submission{
		fields:     []formField{{"name", s.Name}},
		imageField: "image",
		image:      s.Image,
	}.encode()
}

type formField struct {
	name  string
	value string
}

// submission maps a record to its wire encoding: multipart when a local
// file is attached, JSON otherwise
type submission struct {
	fields     []formField
	imageField string
	image      Image
}

func (s submission) encode() (*Payload, error) {
	if s.image.File != nil {
		return s.encodeMultipart()
	}

	obj := make(map[string]string, len(s.fields)+1)
	for _, f := range s.fields {
		obj[f.name] = f.value
	}
	if s.image.URL != "" {
		obj[s.imageField] = s.image.URL
	}
	return NewJSONPayload(obj)
}

func (s submission) encodeMultipart() (*Payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range s.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, encodeError(err)
		}
	}
	if err := writeFilePart(w, s.imageField, *s.image.File); err != nil {
		return nil, encodeError(err)
	}
	if err := w.Close(); err != nil {
		return nil, encodeError(err)
	}

	return &Payload{body: &buf, contentType: w.FormDataContentType(), multipart: true}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// writeFilePart is CreateFormFile with the file's own content type
func writeFilePart(w *multipart.Writer, field string, file upload.File) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(file.Name)))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(file.Data)
	return err
}
