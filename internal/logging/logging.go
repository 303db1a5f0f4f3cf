// Package logging prints leveled, colored program messages to stderr and mirrors them to a log file.
package logging

import (
	"crawlfilter/internal/domain/consts"
	"crawlfilter/internal/domain/keys"
	"crawlfilter/internal/domain/regex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Level is the debug level, -1 until read from Viper.
	Level = -1

	// Out receives terminal output. Standard output carries filter data, so this is never stdout.
	Out io.Writer = os.Stderr

	mu       sync.Mutex
	logFile  *lumberjack.Logger
	fileLogs *log.Logger
)

// SetupLogging creates and/or opens the rotating log file in targetDir.
func SetupLogging(targetDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf("create log directory %q: %w", targetDir, err)
	}

	logFile = &lumberjack.Logger{
		Filename:   filepath.Join(targetDir, consts.LogFilename),
		MaxSize:    consts.LogMaxSizeMB,
		MaxBackups: consts.LogMaxBackups,
		Compress:   true,
	}
	fileLogs = log.New(logFile, "", log.LstdFlags)
	fileLogs.Printf(":\n=========== %v ===========\n\n", time.Now().Format(time.RFC1123Z))
	return nil
}

// CloseLogFile closes the log file, if one is open.
func CloseLogFile() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	fileLogs = nil
	return err
}

// E prints an error message.
func E(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if level() >= 2 {
		msg += " " + callerTag(2)
	}
	return emit(consts.ColorRedError, consts.LogError, msg)
}

// W prints a warning message.
func W(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	return emit(consts.ColorYellowWarning, consts.LogWarning, fmt.Sprintf(format, args...))
}

// I prints an info message.
func I(format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	return emit(consts.ColorBlueInfo, consts.LogInfo, fmt.Sprintf(format, args...))
}

// D prints a debug message if l is within the debug level.
//
// Debug messages don't appear by default (level 0).
func D(l int, format string, args ...any) string {
	mu.Lock()
	defer mu.Unlock()

	if l == 0 || l > level() {
		return ""
	}
	msg := fmt.Sprintf(format, args...) + " " + callerTag(2)
	return emit(consts.ColorYellowDebug, consts.LogDebug, msg)
}

// emit writes to the terminal and the log file. Callers hold mu.
func emit(colorTag, fileTag, msg string) string {
	msg = strings.TrimRight(msg, "\n")
	fmt.Fprintln(Out, colorTag+msg)

	if fileLogs != nil {
		fileLogs.Print(fileTag + regex.AnsiEscapeCompile().ReplaceAllString(msg, ""))
	}
	return msg
}

// level returns the debug level, initializing it from Viper on first use.
func level() int {
	if Level < 0 {
		Level = min(max(viper.GetInt(keys.DebugLevel), consts.DebugLevelMin), consts.DebugLevelMax)
	}
	return Level
}

// callerTag describes the calling function, file and line.
func callerTag(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	funcName := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = filepath.Base(fn.Name())
	}
	return fmt.Sprintf("["+consts.ColorBlue+"Function:"+consts.ColorReset+" %s - "+
		consts.ColorBlue+"File:"+consts.ColorReset+" %s : "+
		consts.ColorBlue+"Line:"+consts.ColorReset+" %d]", funcName, filepath.Base(file), line)
}
