package config

import (
	_ "embed"

	"github.com/vovakirdan/pingpong/internal/games/pong"
)

//go:embed defaults/pingpong.yaml
var defaultMatchYAML []byte

// DefaultMatchConfig returns the default match configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		Screen: ScreenConfig{
			Width:  pong.DefaultScreenW,
			Height: pong.DefaultScreenH,
		},
		Ball: BallConfig{
			Speed:  pong.DefaultBallSpeed,
			Radius: pong.DefaultBallRadius,
		},
		Paddles: PaddlesConfig{
			Speed:      pong.DefaultPaddleSpeed,
			Width:      pong.DefaultPaddleWidth,
			Height:     pong.DefaultPaddleHeight,
			Inset:      pong.DefaultPaddleInset,
			LeftColor:  "red",
			RightColor: "blue",
			Bounds:     string(pong.BoundsFixed),
		},
		Rules: RulesConfig{
			BounceFactor: pong.DefaultBounceFactor,
		},
		Display: DisplayConfig{
			TickRate:      60,
			ShowFPS:       true,
			HoldMillis:    150,
			MaxStepMillis: 100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMatchYAML
}
