package domain

import (
	"strconv"
	"time"
)

type ProbeFormat struct {
	FormatName string            `json:"format_name"`
	Duration   string            `json:"duration"`
	Size       string            `json:"size"`
	BitRate    string            `json:"bit_rate"`
	NbStreams  int               `json:"nb_streams"`
	Tags       map[string]string `json:"tags"`
}

type ProbeStream struct {
	Index      int    `json:"index"`
	CodecType  string `json:"codec_type"`
	CodecName  string `json:"codec_name"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
	Duration   string `json:"duration"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

type ProbeResult struct {
	Format  ProbeFormat   `json:"format"`
	Streams []ProbeStream `json:"streams"`
}

func (p *ProbeResult) VideoStream() *ProbeStream {
	return p.firstStream("video")
}

func (p *ProbeResult) AudioStream() *ProbeStream {
	return p.firstStream("audio")
}

func (p *ProbeResult) firstStream(codecType string) *ProbeStream {
	for i := range p.Streams {
		if p.Streams[i].CodecType == codecType {
			return &p.Streams[i]
		}
	}
	return nil
}

// Duration returns the container duration, or zero when ffprobe could not
// tell.
func (p *ProbeResult) Duration() time.Duration {
	seconds := ParseSeconds(p.Format.Duration)
	return time.Duration(seconds * float64(time.Second))
}

// ParseSeconds parses ffprobe's decimal seconds, treating "", "N/A" and
// garbage as zero.
func ParseSeconds(s string) float64 {
	if s == "" || s == "N/A" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
