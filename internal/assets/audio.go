package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
)

// Sound cue names.
const (
	SoundSelect   = "select_piece"
	SoundCancel   = "cancel_select_piece"
	SoundMove     = "move"
	SoundPush     = "push"
	SoundPushOff  = "push_off"
	SoundUndo     = "undo"
	SoundGameOver = "game_over"
)

type note struct {
	freq float64
	dur  time.Duration
}

var cues = map[string][]note{
	SoundSelect:   {{880, 60 * time.Millisecond}},
	SoundCancel:   {{330, 90 * time.Millisecond}},
	SoundMove:     {{523.25, 90 * time.Millisecond}},
	SoundPush:     {{392, 70 * time.Millisecond}, {523.25, 90 * time.Millisecond}},
	SoundPushOff:  {{659.25, 80 * time.Millisecond}, {392, 160 * time.Millisecond}},
	SoundUndo:     {{440, 50 * time.Millisecond}, {349.23, 50 * time.Millisecond}},
	SoundGameOver: {{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {783.99, 240 * time.Millisecond}},
}

type AudioManager struct {
	ctx     *audio.Context
	buffers map[string][]byte
	Muted   bool // 静音时 Play 直接返回

	mu      sync.Mutex
	players []*audio.Player // 保留引用，防止播放中被 GC
}

// NewAudioManager 接收 main 创建好的 *audio.Context，按采样率合成所有音效
func NewAudioManager(ctx *audio.Context) (*AudioManager, error) {
	if ctx == nil {
		return nil, fmt.Errorf("audio context not initialized")
	}
	buf := make(map[string][]byte, len(cues))
	for name, notes := range cues {
		buf[name] = synthesize(ctx.SampleRate(), notes...)
	}
	return &AudioManager{ctx: ctx, buffers: buf}, nil
}

// Play 播放 key 对应音效
func (m *AudioManager) Play(key string) {
	if m == nil || m.Muted {
		return
	}
	data, ok := m.buffers[key]
	if !ok {
		log.Warn().Str("sound", key).Msg("unknown sound cue")
		return
	}
	p := m.ctx.NewPlayerFromBytes(data)
	p.Play()

	m.mu.Lock()
	m.players = append(m.players, p)
	m.mu.Unlock()
}

// Update 应每帧调用一次，清理已停止的播放器
func (m *AudioManager) Update() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	alive := m.players[:0]
	for _, p := range m.players {
		if p.IsPlaying() {
			alive = append(alive, p)
		} else {
			p.Close()
		}
	}
	m.players = alive
}

// synthesize renders notes back to back as 16-bit little-endian stereo PCM,
// the format audio.Context players expect.
func synthesize(sampleRate int, notes ...note) []byte {
	const amp = 0.25 * math.MaxInt16
	var out []byte
	for _, n := range notes {
		samples := int(float64(sampleRate) * n.dur.Seconds())
		chunk := make([]byte, samples*4)
		for i := 0; i < samples; i++ {
			t := float64(i) / float64(sampleRate)
			// 线性衰减包络，避免爆音
			env := 1 - float64(i)/float64(samples)
			v := int16(amp * env * math.Sin(2*math.Pi*n.freq*t))
			binary.LittleEndian.PutUint16(chunk[i*4:], uint16(v))
			binary.LittleEndian.PutUint16(chunk[i*4+2:], uint16(v))
		}
		out = append(out, chunk...)
	}
	return out
}
