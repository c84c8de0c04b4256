package config

import "github.com/pkg/errors"

const (
	GameUnknown GameVersion = iota
	GameJak1
	GameJak2
)

type GameVersion int

func (v GameVersion) String() string {
	switch v {
	case GameJak1:
		return "jak1"
	case GameJak2:
		return "jak2"
	default:
		return "unknown"
	}
}

func ParseGameVersion(s string) (GameVersion, error) {
	switch s {
	case "jak1":
		return GameJak1, nil
	case "jak2":
		return GameJak2, nil
	default:
		return GameUnknown, errors.Errorf("Unknown game version %q", s)
	}
}
