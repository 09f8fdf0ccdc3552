// Package config loads and saves the TOML configuration file (ambient
// concern, carried regardless of spec.md's Non-goals) and translates it
// into the limbo package's runtime types.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Forwarding selects, at most, one of the two proxy-integration families;
// both sub-configs are always present on the wire so the TOML file
// documents every key regardless of which (if any) is enabled.
type Forwarding struct {
	Velocity   VelocityForwarding   `toml:"velocity"`
	BungeeCord BungeeCordForwarding `toml:"bungee_cord"`
}

type VelocityForwarding struct {
	Enabled bool   `toml:"enabled"`
	Secret  string `toml:"secret"`
}

// BungeeCordForwarding covers both legacy BungeeCord and BungeeGuard: the
// latter is legacy BungeeCord plus a token list, toggled by BungeeGuard.
type BungeeCordForwarding struct {
	Enabled     bool     `toml:"enabled"`
	BungeeGuard bool     `toml:"bungee_guard"`
	Tokens      []string `toml:"tokens"`
}

type ServerList struct {
	MessageOfTheDay       string `toml:"message_of_the_day"`
	MaxPlayers            int    `toml:"max_players"`
	ShowOnlinePlayerCount bool   `toml:"show_online_player_count"`
}

// Config is the root TOML document shape.
type Config struct {
	Bind string `toml:"bind"`

	Forwarding Forwarding `toml:"forwarding"`

	// SpawnDimension is one of "overworld", "nether", "end".
	SpawnDimension string `toml:"spawn_dimension"`

	ServerList ServerList `toml:"server_list"`

	WelcomeMessage string `toml:"welcome_message"`

	// DefaultGameMode is one of "survival", "creative", "adventure",
	// "spectator".
	DefaultGameMode string `toml:"default_game_mode"`

	Hardcore bool `toml:"hardcore"`

	// ViewDistance is the number of chunks in each direction streamed to
	// the client. BuildServerState rejects values outside [0,32]; 0 keeps
	// the default of 10.
	ViewDistance int32 `toml:"view_distance"`

	// WorldSnapshotPath, if set, points at a gzipped Sponge Schematic v2
	// file loaded once at startup and served in place of the void world.
	// Left empty, the server falls back to the void generator.
	WorldSnapshotPath string `toml:"world_snapshot_path"`
}

// Default mirrors the values a fresh install is expected to boot with.
func Default() Config {
	return Config{
		Bind:           "0.0.0.0:25565",
		SpawnDimension: "overworld",
		ServerList: ServerList{
			MessageOfTheDay:       "A PicoLimbo Server",
			MaxPlayers:            20,
			ShowOnlinePlayerCount: true,
		},
		WelcomeMessage:  "Welcome to PicoLimbo!",
		DefaultGameMode: "survival",
		ViewDistance:    10,
	}
}

// LoadOrCreate reads path and decodes it as TOML. If the file doesn't
// exist, or exists but is empty, the documented default configuration is
// written to it (parent directories created as needed) and returned.
func LoadOrCreate(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return Config{}, fmt.Errorf("create config dir %s: %w", dir, err)
			}
		}
		return writeDefault(path)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return writeDefault(path)
	}

	var cfg Config
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func writeDefault(path string) (Config, error) {
	cfg := Default()
	raw, err := toml.Marshal(cfg)
	if err != nil {
		return Config{}, fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return Config{}, fmt.Errorf("write config %s: %w", path, err)
	}
	return cfg, nil
}
