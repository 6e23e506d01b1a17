package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/dancing-bear/config"
	"github.com/automoto/dancing-bear/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const (
	appName     = "dancing-bear"
	settingsKey = "settings"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool    `json:"debug"`
	Fullscreen bool    `json:"fullscreen"`
	Hue        float64 `json:"hue"`
	LastScene  string  `json:"lastScene"`

	// Orbit options chosen on the pause screen; nil keeps the config file value
	OccludeWhenBehind *bool `json:"occludeWhenBehind,omitempty"`
	ShadeByDepth      *bool `json:"shadeByDepth,omitempty"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// lastScene is the most recent non-menu scene, saved with the settings
var lastScene = ""

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	return initPersistence(appName)
}

func initPersistence(name string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: name,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// closePersistence forgets the manager; later calls become no-ops.
func closePersistence() {
	gdataManager = nil
	gdataInitialized = false
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// orbitChoices holds the orbit options picked on the pause screen, if any
var orbitChoices struct {
	occlude, shade *bool
}

// CurrentSavedSettings snapshots the shared settings for storage
func CurrentSavedSettings() *SavedSettings {
	return &SavedSettings{
		Debug:             globalSettings.Debug,
		Fullscreen:        globalSettings.Fullscreen,
		Hue:               CurrentHue(),
		LastScene:         lastScene,
		OccludeWhenBehind: orbitChoices.occlude,
		ShadeByDepth:      orbitChoices.shade,
	}
}

// SaveCurrentSettings saves the shared settings, ignoring errors (already logged)
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSavedSettings())
}

// RememberScene records the scene to reopen from the menu's "continue" hint
func RememberScene(name string) {
	if name == cfg.SceneMenu || name == lastScene {
		return
	}
	lastScene = name
	SaveCurrentSettings()
}

// LastScene returns the most recently opened scene, or "" if none
func LastScene() string {
	return lastScene
}

// applySavedSettings copies saved values into the shared settings without touching the window
func applySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	globalSettings.Debug = saved.Debug
	globalSettings.Fullscreen = saved.Fullscreen
	setCurrentHue(gamemath.WrapHue(saved.Hue))

	switch saved.LastScene {
	case cfg.SceneOrbit, cfg.SceneFireworks:
		lastScene = saved.LastScene
	}

	if saved.OccludeWhenBehind != nil {
		setOcclude(*saved.OccludeWhenBehind)
	}
	if saved.ShadeByDepth != nil {
		setShadeByDepth(*saved.ShadeByDepth)
	}
}

// ApplySavedSettingsGlobal applies settings during startup before any scene exists
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	applySavedSettings(saved)
	ebiten.SetFullscreen(saved.Fullscreen)
}
