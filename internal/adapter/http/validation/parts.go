// Package validation checks what clients send before anything is written
// to the Storage Area.
package validation

import (
	"fmt"
	"mime/multipart"

	"github.com/bnema/swapaudio/internal/domain"
)

const (
	FieldVideo = "video"
	FieldAudio = "audio"
)

// FileParts returns the single video part and the single audio part of
// form. A missing or empty part yields the generic MissingInputError; a
// repeated one names the field.
func FileParts(form *multipart.Form) (video, audio *multipart.FileHeader, err error) {
	if form == nil {
		return nil, nil, &domain.MissingInputError{}
	}
	if video, err = singlePart(form, FieldVideo); err != nil {
		return nil, nil, err
	}
	if audio, err = singlePart(form, FieldAudio); err != nil {
		return nil, nil, err
	}
	return video, audio, nil
}

func singlePart(form *multipart.Form, field string) (*multipart.FileHeader, error) {
	headers := form.File[field]
	switch {
	case len(headers) == 0:
		return nil, &domain.MissingInputError{Field: field}
	case len(headers) > 1:
		return nil, &domain.MissingInputError{
			Field:  field,
			Reason: fmt.Sprintf("Only one %s file is allowed", field),
		}
	case headers[0].Size == 0:
		return nil, &domain.MissingInputError{Field: field}
	}
	return headers[0], nil
}
