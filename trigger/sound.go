package trigger

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	beep "github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/belfry-dev/belfry/internal/static"
)

var errInvalidSoundFormat = errors.New(
	"sound file must be in mp3, ogg, flac, or wav format",
)

// decodeSoundFile opens and decodes the specified sound. The source file
// stays open until the returned stream is closed, so playback can keep
// reading from it.
func decodeSoundFile(sound string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		f   fs.File
		err error
	)

	ext := filepath.Ext(sound)
	// without extension, treat as an embedded WAV file
	if ext == "" {
		sound += ".wav"

		f, err = static.Files.Open(static.FilePath(sound))
	} else {
		f, err = os.Open(sound)
	}

	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch filepath.Ext(sound) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()

		return nil, beep.Format{}, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()

		return nil, beep.Format{}, err
	}

	return stream, format, nil
}

// prepSoundStream returns an audio stream for the specified sound and
// initializes the speaker for its format.
func prepSoundStream(sound string) (beep.StreamSeekCloser, error) {
	stream, format, err := decodeSoundFile(sound)
	if err != nil {
		return nil, err
	}

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		_ = stream.Close()

		return nil, err
	}

	if err := stream.Seek(0); err != nil {
		_ = stream.Close()

		return nil, err
	}

	return stream, nil
}

// playChimeFile plays the configured chime sound and blocks until it
// finishes.
func playChimeFile(sound string) error {
	if sound == "" {
		return errInvalidSoundFormat
	}

	stream, err := prepSoundStream(sound)
	if err != nil {
		return err
	}

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	_ = stream.Close()

	speaker.Clear()
	speaker.Close()

	return nil
}

// synthNote is one tone of the fallback chime.
type synthNote struct {
	freq     int
	duration time.Duration
}

// playSynthChime plays the four-note school chime melody with sine
// oscillators. It is the fallback when the configured sound cannot be
// decoded or played.
func playSynthChime() error {
	sr := beep.SampleRate(44100)

	err := speaker.Init(sr, sr.N(time.Second/10))
	if err != nil {
		return err
	}

	// E5, C5, D5, C5
	notes := []synthNote{
		{freq: 659, duration: 600 * time.Millisecond},
		{freq: 523, duration: 600 * time.Millisecond},
		{freq: 587, duration: 600 * time.Millisecond},
		{freq: 523, duration: 900 * time.Millisecond},
	}

	streamers := make([]beep.Streamer, 0, len(notes)+1)

	for _, note := range notes {
		tone, err := generators.SineTone(sr, float64(note.freq))
		if err != nil {
			return err
		}

		streamers = append(streamers, &effects.Gain{
			Streamer: beep.Take(sr.N(note.duration), tone),
			Gain:     -0.6,
		})
	}

	done := make(chan bool)

	streamers = append(streamers, beep.Callback(func() {
		done <- true
	}))

	speaker.Play(beep.Seq(streamers...))

	<-done

	speaker.Clear()
	speaker.Close()

	return nil
}
