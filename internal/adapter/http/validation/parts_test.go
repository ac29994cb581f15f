package validation

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/swapaudio/internal/domain"
)

func part(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestFileParts(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string][]*multipart.FileHeader
		wantErr string
	}{
		{
			name: "one of each",
			files: map[string][]*multipart.FileHeader{
				FieldVideo: {part("clip.mp4", 10)},
				FieldAudio: {part("voice.mp3", 5)},
			},
		},
		{
			name:    "missing audio",
			files:   map[string][]*multipart.FileHeader{FieldVideo: {part("clip.mp4", 10)}},
			wantErr: "Video or audio file missing",
		},
		{
			name:    "missing video",
			files:   map[string][]*multipart.FileHeader{FieldAudio: {part("voice.mp3", 5)}},
			wantErr: "Video or audio file missing",
		},
		{
			name: "empty video",
			files: map[string][]*multipart.FileHeader{
				FieldVideo: {part("clip.mp4", 0)},
				FieldAudio: {part("voice.mp3", 5)},
			},
			wantErr: "Video or audio file missing",
		},
		{
			name: "two audio parts",
			files: map[string][]*multipart.FileHeader{
				FieldVideo: {part("clip.mp4", 10)},
				FieldAudio: {part("a.mp3", 5), part("b.mp3", 5)},
			},
			wantErr: "Only one audio file is allowed",
		},
		{
			name:    "nothing",
			files:   map[string][]*multipart.FileHeader{},
			wantErr: "Video or audio file missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, audio, err := FileParts(&multipart.Form{File: tt.files})
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "clip.mp4", video.Filename)
				assert.Equal(t, "voice.mp3", audio.Filename)
				return
			}
			var missing *domain.MissingInputError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Nil(t, video)
			assert.Nil(t, audio)
		})
	}
}

func TestFileParts_NilForm(t *testing.T) {
	_, _, err := FileParts(nil)
	assert.EqualError(t, err, "Video or audio file missing")
}
