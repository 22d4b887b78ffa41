package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogCompile records a toolchain invocation and its outcome.
func LogCompile(compiler string, flags []string, artifact string, err error) {
	msg := buildCompileMessage(compiler, flags, artifact, err)
	log.Println(msg)
}

// LogTrial records one timed invocation of a variant.
func LogTrial(suite, variant string, trial int, elapsed time.Duration) {
	log.Printf("[TRIAL] suite=%s variant=%s trial=%d elapsed=%s", suite, variant, trial, elapsed)
}

func buildCompileMessage(compiler string, flags []string, artifact string, err error) string {
	cc := strings.TrimSpace(compiler)
	if cc == "" {
		cc = "unknown"
	}
	parts := []string{"[COMPILE]"}
	parts = append(parts, fmt.Sprintf("cc=%s", cc))
	parts = append(parts, fmt.Sprintf("flags=%s", formatPayload(flags)))
	if artifact = strings.TrimSpace(artifact); artifact != "" {
		parts = append(parts, fmt.Sprintf("artifact=%s", artifact))
	}
	if err != nil {
		parts = append(parts, fmt.Sprintf("error=%v", err))
	}
	return strings.Join(parts, " ")
}

func formatPayload(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		if strings.TrimSpace(v) == "" {
			return `""`
		}
		return v
	case []byte:
		if len(v) == 0 {
			return "[]"
		}
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
