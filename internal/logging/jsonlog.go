package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type entry struct {
	Level   string         `json:"level"`
	Time    string         `json:"time"`
	Message string         `json:"message"`
	Fields  map[string]any `json:"fields,omitempty"`
}

var levels = map[string]int{"info": 0, "warn": 1, "error": 2}

var (
	mu    sync.Mutex
	out   io.Writer = os.Stdout
	floor           = 0
)

// SetOutput redirects log lines, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetLevel drops entries below level. Unknown levels keep "info".
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	floor = levels[strings.ToLower(level)]
}

func Log(level, msg string, fields map[string]any) {
	mu.Lock()
	defer mu.Unlock()
	if levels[level] < floor {
		return
	}
	e := entry{Level: level, Time: time.Now().UTC().Format(time.RFC3339Nano), Message: msg, Fields: fields}
	b, _ := json.Marshal(e)
	fmt.Fprintln(out, string(b))
}

func Info(msg string, fields map[string]any)  { Log("info", msg, fields) }
func Warn(msg string, fields map[string]any)  { Log("warn", msg, fields) }
func Error(msg string, fields map[string]any) { Log("error", msg, fields) }
