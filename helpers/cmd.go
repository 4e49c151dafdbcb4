package helpers

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/sirupsen/logrus"
)

// GetCommand returns the printable command line of cmd.
func GetCommand(cmd *exec.Cmd) string {
	if cmd.Args == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(cmd.Args, " "))
}

// ExecSync runs a command to completion and returns its stdout. Stderr is
// folded into the error since the GIS tools write their diagnostics there.
func ExecSync(ctx context.Context, bin string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debugf("[ExecSync] %s", GetCommand(cmd))

	if err := cmd.Run(); err != nil {
		message := strings.TrimSpace(stderr.String())
		if message == "" {
			return nil, fmt.Errorf("%s: %w", bin, err)
		}
		return nil, fmt.Errorf("%s: %s: %w", bin, message, err)
	}

	return stdout.Bytes(), nil
}
