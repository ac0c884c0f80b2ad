package komut

import (
	"strings"

	"github.com/kafkasder-portal/neww-sub003/pkg/komut/intent"
)

// ComposeConfidence rewards short, entity-rich, punctuated commands:
//
//	intent + 0.1*entities + length bonus + 0.05 if punctuated
//
// where the length bonus is +0.1 for 3..15 words and -0.1 above 15.
// The result is clamped to [0,1].
func ComposeConfidence(intentConfidence float64, entityCount int, text string) float64 {
	c := intentConfidence + 0.1*float64(entityCount)

	switch words := len(strings.Fields(text)); {
	case words >= 3 && words <= 15:
		c += 0.1
	case words > 15:
		c -= 0.1
	}

	if strings.ContainsAny(text, ".!?") {
		c += 0.05
	}
	return intent.Clamp(c)
}
