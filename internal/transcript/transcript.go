// Package transcript reads batches of typed or transcribed commands.
package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Command is one line of a command log.
type Command struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Source string `json:"source"` // "typed", "voice", ...
	HTML   bool   `json:"html"`   // text holds markup to strip first
}

// LoadFromJSONL loads commands from a JSONL file. Malformed lines and lines
// without text are skipped with a warning; a file with no usable command is
// an error.
func LoadFromJSONL(path string, logger *zap.Logger) ([]Command, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var cmds []Command
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var cmd Command
		if err := json.Unmarshal([]byte(line), &cmd); err != nil {
			logger.Warn("skipping malformed line", zap.String("file", path), zap.Int("line", i+1), zap.Error(err))
			continue
		}
		if strings.TrimSpace(cmd.Text) == "" {
			logger.Warn("skipping line without text", zap.String("file", path), zap.Int("line", i+1))
			continue
		}
		if cmd.ID == "" {
			cmd.ID = fmt.Sprintf("line-%d", i+1)
		}
		cmds = append(cmds, cmd)
	}

	if len(cmds) == 0 {
		return nil, fmt.Errorf("no valid commands found in %s", path)
	}

	return cmds, nil
}
