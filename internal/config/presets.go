package config

import "slices"

var Presets = map[string]map[string]*Config{
	"newsvendor": {
		"small": {
			Name: "newsvendor/small", MinState: 0, MaxState: 5, MinAction: 0, MaxAction: 3,
			Mu: 2, Holding: 1, Penalty: 9,
		},
		"medium": {
			Name: "newsvendor/medium", MinState: 0, MaxState: 20, MinAction: 0, MaxAction: 10,
			Mu: 6, Holding: 1, Penalty: 9,
		},
		"lean": {
			Name: "newsvendor/lean", MinState: 0, MaxState: 10, MinAction: 0, MaxAction: 5,
			Mu: 4, Holding: 3, Penalty: 4,
		},
	},
	"backlog": {
		"small": {
			Name: "backlog/small", MinState: -5, MaxState: 5, MinAction: 0, MaxAction: 5,
			Mu: 2, Holding: 1, Penalty: 9,
		},
		"wide": {
			Name: "backlog/wide", MinState: -20, MaxState: 30, MinAction: 0, MaxAction: 15,
			Mu: 8, Holding: 0.5, Penalty: 5,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil if none exists.
func GetPreset(family, preset string) *Config {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	cfg, ok := familyPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func ListFamilies() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
