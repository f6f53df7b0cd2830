package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundShot
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	MaxPending    int // SFX queued in one frame beyond this are dropped
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		MaxPending:    8,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundShot: "audio/sfx/shot.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundShot: 0.8,
		},
	}
}
