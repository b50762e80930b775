//go:build !ci

package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const sampleRate = beep.SampleRate(44100)

// note 一个音符
type note struct {
	freq     float64
	duration time.Duration
}

// tones 没有音效文件时用正弦波合成的提示音
var tones = map[string][]note{
	SoundTurn:   {{880, 90 * time.Millisecond}, {1320, 120 * time.Millisecond}},
	SoundPlay:   {{660, 50 * time.Millisecond}},
	SoundReject: {{220, 160 * time.Millisecond}},
	SoundWin:    {{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 240 * time.Millisecond}},
}

// standardFormat 所有缓冲统一使用的格式
var standardFormat = beep.Format{
	SampleRate:  sampleRate,
	NumChannels: 2,
	Precision:   4,
}

type SoundManager struct {
	mu      sync.Mutex
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		buffers: make(map[string]*beep.Buffer),
		enabled: false,
	}
}

func (sm *SoundManager) Init() error {
	// Init speaker with smaller buffer for lower latency
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	for name, notes := range tones {
		buffer, err := synthesize(notes)
		if err != nil {
			return fmt.Errorf("failed to synthesize %s: %w", name, err)
		}
		sm.buffers[name] = buffer
	}

	// Files in assets/sounds override the synthesized tones
	if err := sm.loadSoundFiles(); err != nil {
		return err
	}

	sm.mu.Lock()
	sm.enabled = true
	sm.mu.Unlock()
	return nil
}

// synthesize 把音符依次拼接成一段缓冲
func synthesize(notes []note) (*beep.Buffer, error) {
	buffer := beep.NewBuffer(standardFormat)
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		quiet := &effects.Volume{Streamer: tone, Base: 2, Volume: -2}
		buffer.Append(beep.Take(sampleRate.N(n.duration), quiet))
	}
	return buffer, nil
}

// loadSoundFiles loads all sound files from the assets/sounds directory
func (sm *SoundManager) loadSoundFiles() error {
	soundDir := "assets/sounds"
	files, err := os.ReadDir(soundDir)
	if err != nil {
		// It's okay if directory doesn't exist, just no sounds
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}

		// Continue loading other files even if one fails
		_ = sm.loadSoundFile(filepath.Join(soundDir, name), strings.TrimSuffix(name, filepath.Ext(name)), ext)
	}
	return nil
}

// loadSoundFile loads a single sound file into the buffer
func (sm *SoundManager) loadSoundFile(path, baseName, ext string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(standardFormat)
	buffer.Append(resampled)
	sm.buffers[baseName] = buffer
	return nil
}

// Enabled 扬声器是否已初始化
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

func (sm *SoundManager) Play(name string) {
	if !sm.Enabled() {
		return
	}

	buffer, ok := sm.buffers[name]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = false
}
