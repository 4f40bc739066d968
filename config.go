package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Window size constants
const (
	defaultWidth  = 800
	defaultHeight = 600
	minWidth      = 400
	minHeight     = 300
)

// Sort method constants
const (
	SortEntryOrder = 0 // Load completion order (no sort)
	SortNatural    = 1 // Natural sort order (e.g., file1, file2, file10)
	SortSimple     = 2 // Simple string sort (lexicographical)
)

// Handle policy names used in the config file
const (
	handlePolicyKeepAll     = "keep_all"
	handlePolicyKeepCurrent = "keep_current"
)

// Zoom defaults
const (
	defaultZoomFactor = 1.1
	minZoomFactor     = 1.01
	maxZoomFactor     = 2.0
)

// getDefaultKeybindings returns the default keybinding configuration
func getDefaultKeybindings() map[string][]string {
	return GetDefaultKeybindings()
}

// validateKeybindings validates the keybindings configuration
func validateKeybindings(keybindings map[string][]string) error {
	// Check for valid key formats and detect conflicts
	keyToAction := make(map[string]string)
	validKeys := getValidKeyNames()

	for action, keys := range keybindings {
		if _, known := GetActionDescriptions()[action]; !known {
			return fmt.Errorf("unknown action '%s'", action)
		}
		for _, keyStr := range keys {
			if err := validateKeyString(keyStr, validKeys); err != nil {
				return fmt.Errorf("invalid key '%s' for action '%s': %v", keyStr, action, err)
			}

			if existingAction, exists := keyToAction[keyStr]; exists {
				return fmt.Errorf("key conflict: '%s' is bound to both '%s' and '%s'", keyStr, existingAction, action)
			}
			keyToAction[keyStr] = action
		}
	}

	return nil
}

// validateKeyString validates a single key string format
func validateKeyString(keyStr string, validKeys map[string]bool) error {
	if keyStr == "" {
		return fmt.Errorf("empty key string")
	}
	parts := strings.Split(keyStr, "+")

	// Last part should be the actual key
	keyName := parts[len(parts)-1]
	if !validKeys[keyName] {
		return fmt.Errorf("unknown key: %s", keyName)
	}

	for i := 0; i < len(parts)-1; i++ {
		modifier := strings.ToLower(parts[i])
		if modifier != "shift" && modifier != "ctrl" && modifier != "alt" {
			return fmt.Errorf("unknown modifier: %s", parts[i])
		}
	}

	return nil
}

// getValidKeyNames returns a set of valid key names
func getValidKeyNames() map[string]bool {
	valid := make(map[string]bool)
	for name := range getKeyMapping() {
		valid[name] = true
	}
	return valid
}

// ConfigLoadResult contains the result of loading configuration
type ConfigLoadResult struct {
	Config   Config
	HasError bool
	Warnings []string
	Status   string // "OK", "Default", "Warning", "Error"
}

type Config struct {
	WindowWidth     int                 `json:"window_width"`
	WindowHeight    int                 `json:"window_height"`
	MaxFiles        int                 `json:"max_files"`
	Workers         int                 `json:"workers"`
	HandlePolicy    string              `json:"handle_policy"`
	CacheSize       int                 `json:"cache_size"`
	SortMethod      int                 `json:"sort_method"`
	ZoomFactor      float64             `json:"zoom_factor"`
	DragSensitivity float64             `json:"drag_sensitivity"`
	WheelInverted   bool                `json:"wheel_inverted"`
	LoadArchives    bool                `json:"load_archives"`
	ShowInfo        bool                `json:"show_info"`
	HelpFontSize    float64             `json:"help_font_size"`
	Debug           bool                `json:"debug"`
	Keybindings     map[string][]string `json:"keybindings"`
}

// Policy returns the handle residency policy named in the config
func (c Config) Policy() HandlePolicy {
	if c.HandlePolicy == handlePolicyKeepCurrent {
		return KeepCurrent
	}
	return KeepAll
}

func defaultConfig() Config {
	return Config{
		WindowWidth:     defaultWidth,
		WindowHeight:    defaultHeight,
		MaxFiles:        defaultMaxFiles,
		Workers:         0,                       // Default: size from CPU count
		HandlePolicy:    handlePolicyKeepAll,     // Default: keep decoded images
		CacheSize:       16,                      // Default texture cache size
		SortMethod:      SortEntryOrder,          // Default: load order
		ZoomFactor:      defaultZoomFactor,       // Default: 10% per wheel notch
		DragSensitivity: 1.0,                     // 1:1 mouse movement to pan ratio
		WheelInverted:   false,                   // Default wheel direction
		LoadArchives:    true,                    // Default: expand archives in the directory
		ShowInfo:        false,                   // Default: no info bar
		HelpFontSize:    24.0,                    // Default help font size
		Debug:           false,                   // Default: no debug output
		Keybindings:     getDefaultKeybindings(), // Default keybindings
	}
}

func getConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "glance.json"
	}
	return filepath.Join(homeDir, ".glance.json")
}

func loadConfig() ConfigLoadResult {
	return loadConfigFromPath(getConfigPath())
}

func loadConfigFromPath(configPath string) ConfigLoadResult {
	config := defaultConfig()

	result := ConfigLoadResult{
		Config:   config,
		HasError: false,
		Warnings: []string{},
		Status:   "OK",
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config file not found is not an error - use defaults
		result.Status = "Default"
		return result
	}

	if err := json.Unmarshal(data, &config); err != nil {
		log.Printf("Warning: Invalid config file %s, using defaults: %v", configPath, err)
		result.HasError = true
		result.Status = "Error"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Invalid config file: %v", err))
		return result
	}

	// Validate minimum size
	if config.WindowWidth < minWidth {
		config.WindowWidth = defaultWidth
	}
	if config.WindowHeight < minHeight {
		config.WindowHeight = defaultHeight
	}

	// Validate file cap (the -m flag overrides it)
	config.MaxFiles = clampMaxFiles(config.MaxFiles)

	// Validate worker count (0 = auto, out of range degrades in poolSize)
	if config.Workers < 0 {
		config.Workers = 0
	}

	// Validate handle policy
	if config.HandlePolicy != handlePolicyKeepAll && config.HandlePolicy != handlePolicyKeepCurrent {
		result.Status = "Warning"
		result.Warnings = append(result.Warnings, fmt.Sprintf("Unknown handle policy: %q", config.HandlePolicy))
		config.HandlePolicy = handlePolicyKeepAll
	}

	// Validate cache size (minimum 1, maximum 64)
	if config.CacheSize < 1 {
		config.CacheSize = 16
	} else if config.CacheSize > 64 {
		config.CacheSize = 64
	}

	// Validate sort method
	if config.SortMethod < SortEntryOrder || config.SortMethod > SortSimple {
		config.SortMethod = SortEntryOrder
	}

	// Validate zoom factor
	if config.ZoomFactor < minZoomFactor || config.ZoomFactor > maxZoomFactor {
		config.ZoomFactor = defaultZoomFactor
	}

	// Validate drag sensitivity
	if config.DragSensitivity <= 0 {
		config.DragSensitivity = 1.0
	}

	// Validate help font size (minimum 12px for readability)
	if config.HelpFontSize <= 12.0 {
		config.HelpFontSize = 24.0
	}

	// Validate keybindings - ensure defaults exist for missing actions
	if config.Keybindings == nil {
		config.Keybindings = getDefaultKeybindings()
	} else {
		defaults := getDefaultKeybindings()
		for action, defaultKeys := range defaults {
			if _, exists := config.Keybindings[action]; !exists {
				config.Keybindings[action] = defaultKeys
			}
		}

		if err := validateKeybindings(config.Keybindings); err != nil {
			log.Printf("Warning: Invalid keybindings detected, using defaults: %v", err)
			config.Keybindings = getDefaultKeybindings()
			result.Status = "Warning"
			result.Warnings = append(result.Warnings, fmt.Sprintf("Keybinding errors: %v", err))
		}
	}

	result.Config = config
	return result
}

// getSortMethodName returns the human-readable name of a sort method
func getSortMethodName(sortMethod int) string {
	return GetSortStrategy(sortMethod).Name()
}

func saveConfig(config Config) {
	saveConfigToPath(config, getConfigPath())
}

func saveConfigToPath(config Config, configPath string) {
	// Don't save if size is too small
	if config.WindowWidth < minWidth || config.WindowHeight < minHeight {
		log.Printf("Warning: Not saving config with invalid window size: %dx%d",
			config.WindowWidth, config.WindowHeight)
		return
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		log.Printf("Error: Failed to marshal config: %v", err)
		return
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		log.Printf("Error: Failed to save config to %s: %v", configPath, err)
	}
}
