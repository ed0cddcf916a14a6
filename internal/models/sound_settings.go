package models

// Sound source kinds
const (
	SoundTypePreset = "preset"
	SoundTypeCustom = "custom"
)

// MaxCustomSoundBytes caps custom audio sources (uploads and data URIs).
const MaxCustomSoundBytes = 2 * 1024 * 1024

// SoundSettings is a single-row table (ID=1) holding the reminder sound
// configuration. URL is either a remote preset URL or a data URI for
// uploaded audio.
type SoundSettings struct {
	ID      uint   `json:"-" gorm:"primaryKey"`
	Enabled bool   `json:"enabled" gorm:"not null;default:true"`
	Type    string `json:"type" gorm:"not null;default:'preset'"` // preset, custom
	URL     string `json:"url" gorm:"not null"`
	Name    string `json:"name" gorm:"not null"`
}

// SoundPreset is one of the built-in reminder sounds.
type SoundPreset struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var SoundPresets = []SoundPreset{
	{Name: "Soft Chime", URL: "https://assets.mixkit.co/sfx/preview/mixkit-happy-bells-notification-937.mp3"},
	{Name: "Digital Beep", URL: "https://assets.mixkit.co/sfx/preview/mixkit-software-interface-start-2574.mp3"},
	{Name: "Gentle Alert", URL: "https://assets.mixkit.co/sfx/preview/mixkit-positive-notification-951.mp3"},
	{Name: "Success", URL: "https://assets.mixkit.co/sfx/preview/mixkit-correct-answer-tone-2870.mp3"},
}

// DefaultSoundSettings is the row seeded on first start.
func DefaultSoundSettings() SoundSettings {
	return SoundSettings{
		ID:      1,
		Enabled: true,
		Type:    SoundTypePreset,
		URL:     SoundPresets[0].URL,
		Name:    SoundPresets[0].Name,
	}
}

// SoundSettings DTO
type UpdateSoundSettingsRequest struct {
	Enabled *bool   `json:"enabled"`
	Type    *string `json:"type"`
	URL     *string `json:"url"`
	Name    *string `json:"name"`
}
