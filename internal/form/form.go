// Package form validates submitted forms and reads uploaded images.
package form

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	magicNumberSeek = 512
	// MaxUploadSize bounds a single uploaded image.
	MaxUploadSize = 20 << 20 // ~ 20 MB
	// maxRequestSize leaves room for the text fields next to one image.
	maxRequestSize = MaxUploadSize + 1<<20
	maxMemory      = 32 << 20
)

// allowedImageTypes lists the simple MIME types we accept.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var mimeTypeSuffix = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var (
	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrNoImageUploaded     = errors.New("image not uploaded")
	ErrImageTooLarge       = errors.New("image too large")
	ErrRequestTooLarge     = errors.New("request too large")
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

// Errors maps a form field to the message shown next to it. The empty key
// holds errors that belong to the whole form.
type Errors map[string]string

func (e Errors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

func (e Errors) Any() bool {
	return len(e) > 0
}

// Merge copies other into e, prefixing each field.
func (e Errors) Merge(prefix string, other Errors) {
	for field, message := range other {
		e.Add(prefix+field, message)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks v against its validate tags and returns one message per
// failing field, keyed by the field's form name.
func Validate(v any) Errors {
	errs := Errors{}
	err := validate.Struct(v)
	if err == nil {
		return errs
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		errs.Add("", err.Error())
		return errs
	}
	for _, fe := range validationErrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "eqfield":
		return "The two password fields didn't match."
	case "oneof":
		return "Select a valid choice."
	case "max", "lte":
		if isString {
			return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min", "gte":
		if isString {
			return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	}
	return "Enter a valid value."
}

type File struct {
	Size     int64
	Data     []byte
	Suffix   string
	MimeType string
}

// ReadImage reads the image uploaded as field. ErrNoImageUploaded is
// returned when the field is absent or empty.
func ReadImage(r *http.Request, field string) (*File, error) {
	f, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, errors.Join(ErrNoImageUploaded, err)
	} else if err != nil {
		return nil, fmt.Errorf("getting file from form: %w", err)
	}
	if header.Size == 0 {
		_ = f.Close()
		return nil, ErrNoImageUploaded
	}
	return ReadFile(f)
}

func ReadFile(file io.ReadCloser) (*File, error) {
	data, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	defer func() { _ = file.Close() }()
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if len(data) > MaxUploadSize {
		return nil, ErrImageTooLarge
	}

	contentType := http.DetectContentType(data[:min(len(data), magicNumberSeek)])
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("mime type %q: %w", contentType, ErrUnsupportedMimeType)
	}

	return &File{
		Size:     int64(len(data)),
		MimeType: contentType,
		Suffix:   mimeTypeSuffix[contentType],
		Data:     data,
	}, nil
}

// ImageError returns the message shown for an image that could not be read,
// or "" when err is not caused by the upload itself.
func ImageError(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedMimeType):
		return "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	case errors.Is(err, ErrImageTooLarge):
		return "The image must be 20 MB or smaller."
	}
	return ""
}

// ParseRequest reads a form body, multipart or urlencoded, into r.PostForm.
// Bodies over the upload limit fail with ErrRequestTooLarge.
func ParseRequest(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)

	var err error
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxMemory)
	} else {
		err = r.ParseForm()
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return ErrRequestTooLarge
	}
	if err != nil {
		return fmt.Errorf("parsing form: %w", err)
	}
	return nil
}

// OptionalImage returns the image uploaded as field, or nil when none was
// sent. An unusable upload is reported in errs rather than as an error.
func OptionalImage(r *http.Request, field string, errs Errors) (*File, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	img, err := ReadImage(r, field)
	if errors.Is(err, ErrNoImageUploaded) {
		return nil, nil
	}
	if msg := ImageError(err); msg != "" {
		errs.Add(field, msg)
		return nil, nil
	}
	return img, err
}
