package config

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Noita's Steam app id, used for the Proton prefix and the launch URL.
const steamAppID = "881100"

// Directory names the game uses below LocalLow.
const (
	gameDirName  = "Nolla_Games_Noita"
	savesDirName = "Nolla_Games_Noita_Saves"
	liveSaveName = "save00"
)

// Defaults are the platform-derived locations used when neither the config
// file nor the environment sets them.
type Defaults struct {
	SavesDir    string
	CurrentSave string
	GameCommand []string
}

// PlatformDefaults derives default locations for the running platform.
func PlatformDefaults(getenv func(string) string) Defaults {
	return platformDefaults(runtime.GOOS, getenv)
}

func platformDefaults(goos string, getenv func(string) string) Defaults {
	d := Defaults{
		GameCommand: []string{"steam", "steam://rungameid/" + steamAppID},
	}

	var localLow string
	switch goos {
	case "windows":
		appdata := getenv("APPDATA")
		if appdata == "" {
			return d
		}
		// The game writes to LocalLow while APPDATA points at Roaming.
		localLow = strings.Replace(appdata, "Roaming", "LocalLow", 1)
		d.GameCommand = []string{"cmd", "/c", "start", "", "steam://rungameid/" + steamAppID}
	case "linux":
		home := getenv("HOME")
		if home == "" {
			return d
		}
		localLow = filepath.Join(home, ".local", "share", "Steam", "steamapps", "compatdata", steamAppID,
			"pfx", "drive_c", "users", "steamuser", "AppData", "LocalLow")
	default:
		return d
	}

	d.SavesDir = filepath.Join(localLow, savesDirName)
	d.CurrentSave = filepath.Join(localLow, gameDirName, liveSaveName)
	return d
}
