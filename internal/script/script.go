// Package script loads and validates the input script: an ordered JSON
// array of {en, ur} pairs with optional per-segment timing overrides.
package script

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jarair9/translation-video-generator/internal/types"
)

// Load reads a script file and validates it. Any structural problem is an
// *types.InputError: the render must not start on a broken script.
func Load(path string) ([]types.ScriptSegment, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.InputError{Reason: fmt.Sprintf("read script %s: %v", path, err)}
	}
	return Parse(b)
}

// Parse decodes and validates raw script JSON.
func Parse(b []byte) ([]types.ScriptSegment, error) {
	var segs []types.ScriptSegment
	if err := json.Unmarshal(b, &segs); err != nil {
		return nil, &types.InputError{Reason: fmt.Sprintf("script must be a JSON array of {en, ur} objects: %v", err)}
	}
	if err := Validate(segs); err != nil {
		return nil, err
	}
	return segs, nil
}

// Validate enforces the script contract: non-empty, every entry carries at
// least one language, timing overrides are non-negative.
func Validate(segs []types.ScriptSegment) error {
	if len(segs) == 0 {
		return &types.InputError{Reason: "script is empty"}
	}
	for i, s := range segs {
		if strings.TrimSpace(s.EN) == "" && strings.TrimSpace(s.UR) == "" {
			return &types.InputError{Reason: fmt.Sprintf("segment %d has neither en nor ur text", i)}
		}
		if s.PauseAfter < 0 {
			return &types.InputError{Reason: fmt.Sprintf("segment %d has negative pause_after", i)}
		}
		if s.MinDuration < 0 {
			return &types.InputError{Reason: fmt.Sprintf("segment %d has negative min_duration", i)}
		}
	}
	return nil
}
