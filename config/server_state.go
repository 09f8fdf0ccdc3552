package config

import (
	"fmt"
	"os"

	"github.com/go-mclib/picolimbo/forwarding"
	"github.com/go-mclib/picolimbo/limbo"
	"github.com/go-mclib/picolimbo/registrydata"
	"github.com/go-mclib/picolimbo/world"
)

// BuildServerState translates a loaded Config into the runtime ServerState
// limbo.Serve consumes, validating the handful of string enums the TOML
// format can't express as Go types directly.
func BuildServerState(cfg Config) (*limbo.ServerState, error) {
	s := limbo.NewServerState()
	s.Bind = cfg.Bind
	s.WelcomeMessage = cfg.WelcomeMessage
	s.Hardcore = cfg.Hardcore

	if cfg.ServerList.MessageOfTheDay != "" {
		s.MessageOfTheDay = cfg.ServerList.MessageOfTheDay
	}
	if cfg.ServerList.MaxPlayers != 0 {
		s.MaxPlayers = cfg.ServerList.MaxPlayers
	}
	s.ShowOnlinePlayerCount = cfg.ServerList.ShowOnlinePlayerCount

	if cfg.ViewDistance != 0 {
		if cfg.ViewDistance < 0 || cfg.ViewDistance > 32 {
			return nil, fmt.Errorf("view_distance must be in [0,32], got %d", cfg.ViewDistance)
		}
		s.ViewDistance = cfg.ViewDistance
	}

	if cfg.WorldSnapshotPath != "" {
		snapshot, err := loadWorldSnapshot(cfg.WorldSnapshotPath)
		if err != nil {
			return nil, err
		}
		s.World.Snapshot = snapshot
	}

	dimension, err := parseDimension(cfg.SpawnDimension)
	if err != nil {
		return nil, err
	}
	s.SpawnDimension = dimension

	gameMode, err := parseGameMode(cfg.DefaultGameMode)
	if err != nil {
		return nil, err
	}
	s.DefaultGameMode = gameMode

	mode, secret, tokens, err := parseForwarding(cfg.Forwarding)
	if err != nil {
		return nil, err
	}
	s.ForwardingMode = mode
	s.VelocitySecret = secret
	s.BungeeGuardTokens = tokens

	return s, nil
}

// loadWorldSnapshot opens and parses the Sponge Schematic v2 file at path,
// the only call site that ever invokes world.LoadSchematic: a
// world_snapshot_path left unset keeps ServerState.World on the void
// generator NewServerState already set it to.
func loadWorldSnapshot(path string) (*world.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open world_snapshot_path %s: %w", path, err)
	}
	defer f.Close()

	snapshot, err := world.LoadSchematic(f)
	if err != nil {
		return nil, fmt.Errorf("load world snapshot %s: %w", path, err)
	}
	return snapshot, nil
}

func parseDimension(name string) (registrydata.Dimension, error) {
	switch name {
	case "", "overworld":
		return registrydata.DimensionOverworld, nil
	case "nether":
		return registrydata.DimensionNether, nil
	case "end":
		return registrydata.DimensionEnd, nil
	default:
		return 0, fmt.Errorf("spawn_dimension must be overworld, nether or end, got %q", name)
	}
}

func parseGameMode(name string) (limbo.GameMode, error) {
	switch name {
	case "", "survival":
		return limbo.GameModeSurvival, nil
	case "creative":
		return limbo.GameModeCreative, nil
	case "adventure":
		return limbo.GameModeAdventure, nil
	case "spectator":
		return limbo.GameModeSpectator, nil
	default:
		return 0, fmt.Errorf("default_game_mode must be survival, creative, adventure or spectator, got %q", name)
	}
}

// parseForwarding enforces mutual exclusivity: Velocity and BungeeCord
// forwarding are not meant to be enabled together, since each reads the
// client's identity from a different part of the connection.
func parseForwarding(f Forwarding) (forwarding.Mode, []byte, map[string]struct{}, error) {
	if f.Velocity.Enabled && f.BungeeCord.Enabled {
		return 0, nil, nil, fmt.Errorf("forwarding.velocity and forwarding.bungee_cord cannot both be enabled")
	}

	if f.Velocity.Enabled {
		if f.Velocity.Secret == "" {
			return 0, nil, nil, fmt.Errorf("forwarding.velocity.secret must be set when forwarding.velocity.enabled is true")
		}
		return forwarding.ModeVelocityModern, []byte(f.Velocity.Secret), nil, nil
	}

	if f.BungeeCord.Enabled {
		if f.BungeeCord.BungeeGuard {
			if len(f.BungeeCord.Tokens) == 0 {
				return 0, nil, nil, fmt.Errorf("forwarding.bungee_cord.tokens must be non-empty when bungee_guard is true")
			}
			tokens := make(map[string]struct{}, len(f.BungeeCord.Tokens))
			for _, tok := range f.BungeeCord.Tokens {
				tokens[tok] = struct{}{}
			}
			return forwarding.ModeBungeeGuard, nil, tokens, nil
		}
		return forwarding.ModeLegacyBungeeCord, nil, nil, nil
	}

	return forwarding.ModeNone, nil, nil, nil
}
