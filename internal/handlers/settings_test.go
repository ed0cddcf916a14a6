package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginhoang9748-cell/focusflow-api/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestGetSoundSettings_SeededDefaults(t *testing.T) {
	app := setupTestApp(t)

	var settings models.SoundSettings
	status := doJSON(t, app, http.MethodGet, "/api/settings/sound", nil, &settings)
	require.Equal(t, http.StatusOK, status)

	assert.True(t, settings.Enabled)
	assert.Equal(t, models.SoundTypePreset, settings.Type)
	assert.Equal(t, "Soft Chime", settings.Name)
	assert.Equal(t, models.SoundPresets[0].URL, settings.URL)
}

func TestUpdateSoundSettings_PartialUpdate(t *testing.T) {
	app := setupTestApp(t)

	var settings models.SoundSettings
	status := doJSON(t, app, http.MethodPut, "/api/settings/sound",
		models.UpdateSoundSettingsRequest{Enabled: boolPtr(false)}, &settings)
	require.Equal(t, http.StatusOK, status)

	assert.False(t, settings.Enabled)
	assert.Equal(t, "Soft Chime", settings.Name, "untouched fields must survive")

	// Update persists across reads.
	var reread models.SoundSettings
	doJSON(t, app, http.MethodGet, "/api/settings/sound", nil, &reread)
	assert.False(t, reread.Enabled)
}

func TestUpdateSoundSettings_RejectsBadType(t *testing.T) {
	app := setupTestApp(t)

	bad := "spotify"
	status := doJSON(t, app, http.MethodPut, "/api/settings/sound",
		models.UpdateSoundSettingsRequest{Type: &bad}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUpdateSoundSettings_RejectsOversizedSource(t *testing.T) {
	app := setupTestApp(t)

	huge := "data:audio/mpeg;base64," + strings.Repeat("A", models.MaxCustomSoundBytes)
	custom := models.SoundTypeCustom
	status := doJSON(t, app, http.MethodPut, "/api/settings/sound",
		models.UpdateSoundSettingsRequest{Type: &custom, URL: &huge}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// Aborted before mutation: settings unchanged.
	var settings models.SoundSettings
	doJSON(t, app, http.MethodGet, "/api/settings/sound", nil, &settings)
	assert.Equal(t, models.SoundTypePreset, settings.Type)
}

func TestGetSoundPresets(t *testing.T) {
	app := setupTestApp(t)

	var presets []models.SoundPreset
	status := doJSON(t, app, http.MethodGet, "/api/settings/sound/presets", nil, &presets)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, presets, 4)
	assert.Equal(t, "Soft Chime", presets[0].Name)
}

func TestUploadSound_StoresDataURI(t *testing.T) {
	app := setupTestApp(t)

	var settings models.SoundSettings
	status := uploadSound(t, app, "chime.mp3", []byte("fake-mp3-bytes"), &settings)
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, models.SoundTypeCustom, settings.Type)
	assert.Equal(t, "chime.mp3", settings.Name)
	assert.True(t, strings.HasPrefix(settings.URL, "data:audio/mpeg;base64,"))
}

func TestUploadSound_RejectsBadExtension(t *testing.T) {
	app := setupTestApp(t)

	status := uploadSound(t, app, "notes.txt", []byte("hello"), nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestUploadSound_RejectsOversizedFile(t *testing.T) {
	app := setupTestApp(t)

	big := make([]byte, models.MaxCustomSoundBytes+1)
	status := uploadSound(t, app, "big.wav", big, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	// Settings untouched.
	var settings models.SoundSettings
	doJSON(t, app, http.MethodGet, "/api/settings/sound", nil, &settings)
	assert.Equal(t, models.SoundTypePreset, settings.Type)
}
