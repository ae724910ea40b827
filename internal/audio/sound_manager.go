// Package audio plays the synthesized soundtrack and effects through the beep speaker.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"go-bug-smashers/internal/config"
	"go-bug-smashers/internal/audio/synth"
	"go-bug-smashers/internal/event"
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	volume      float64
	enabled     bool
	initialized bool
	logger      *zap.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg config.AudioConfig, logger *zap.Logger) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Initialize sets up the audio system. With audio disabled it is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(synth.SampleRate, synth.SampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", zap.Int("sample_rate", int(synth.SampleRate)))
	return nil
}

// Ready reports whether sounds will actually be heard.
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Attach подписывает менеджер на игровые события сессии.
func (sm *SoundManager) Attach(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.EnemySwatted, event.XPCollected, event.LevelUp, event.TowerDamaged)
}

// Detach отписывает менеджер от диспетчера сессии.
func (sm *SoundManager) Detach(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.EnemySwatted, event.XPCollected, event.LevelUp, event.TowerDamaged} {
		d.Unsubscribe(t, sm)
	}
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySwatted:
		sm.play(synth.CreateHitSound(sm.volume))
	case event.XPCollected:
		sm.play(synth.CreateBlipSound(sm.volume * 0.6))
	case event.LevelUp:
		sm.play(synth.CreateLevelUpSound(sm.volume))
	case event.TowerDamaged:
		sm.play(synth.CreateHitSound(sm.volume * 0.4))
	}
}

// PlayInGame starts the looping in-game track
func (sm *SoundManager) PlayInGame() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	// If already playing, don't restart
	if sm.music != nil && !sm.music.Paused {
		return
	}

	speaker.Lock()
	sm.music = &beep.Ctrl{Streamer: synth.NewVolume(synth.NewMusicGenerator(synth.SampleRate), sm.volume*0.7), Paused: false}
	sm.mixer.Add(sm.music)
	speaker.Unlock()
}

// PlayGameOver stops the music and plays the defeat jingle once
func (sm *SoundManager) PlayGameOver() {
	sm.Stop()
	sm.play(synth.CreateGameOverJingle(sm.volume))
}

// Stop silences everything that is currently playing
func (sm *SoundManager) Stop() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
		sm.music = nil
	}
	sm.mixer.Clear()
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.Stop()

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Close()
		sm.initialized = false
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
