// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package logger implements a simple logger with a few error levels.
package logger

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Level represents the amount of detail in which the log is output.
type Level int

const (
	fatal Level = iota
	// ERROR only log errors
	ERROR
	// WARN only log warnings and errors
	WARN
	// INFO log information, warnings and errors
	INFO
	// DEBUG log as much as possible
	DEBUG
)

// ParseLevel maps a level name (case insensitive) to a Level. Unknown names map to ERROR.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	default:
		return ERROR
	}
}

var (
	mu     sync.Mutex
	logger *bufio.Writer
	level  = ERROR

	tags = map[Level]func(a ...any) string{
		ERROR: color.New(color.FgRed, color.Bold).SprintFunc(),
		WARN:  color.New(color.FgYellow, color.Bold).SprintFunc(),
		DEBUG: color.New(color.Faint).SprintFunc(),
	}
	tagNames = map[Level]string{
		ERROR: "error: ",
		WARN:  "warning: ",
		DEBUG: "debug: ",
	}
)

func init() {
	logger = bufio.NewWriter(os.Stderr)
}

// SetOutput sets the writer to which the output is sent.
// If w is nil, no output is shown.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		logger = nil
		return
	}
	logger = bufio.NewWriter(w)
}

// SetLevel reconfigures the error level of the logger.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// GetLevel returns the current level.
func GetLevel() Level {
	mu.Lock()
	defer mu.Unlock()
	return level
}

// Fatal works as Error, but aborts the program.
func Fatal(args ...any) {
	write(fatal, fmt.Sprintln(args...))
	fail()
}

// Fatalf works as Errorf, but aborts the program.
func Fatalf(format string, args ...any) {
	write(fatal, fmt.Sprintf(format, args...)+"\n")
	fail()
}

// Error works as fmt.Println.
func Error(args ...any) {
	write(ERROR, fmt.Sprintln(args...))
}

// Errorf works as fmt.Printf, but it adds a newline at the end of the format string.
func Errorf(format string, args ...any) {
	write(ERROR, fmt.Sprintf(format, args...)+"\n")
}

// Warn works as Error when the level is WARN or above.
func Warn(args ...any) {
	write(WARN, fmt.Sprintln(args...))
}

// Warnf works as Errorf when the level is WARN or above.
func Warnf(format string, args ...any) {
	write(WARN, fmt.Sprintf(format, args...)+"\n")
}

// Info works as Error when the level is INFO or above. No tag is printed.
func Info(args ...any) {
	write(INFO, fmt.Sprintln(args...))
}

// Infof works as Errorf when the level is INFO or above. No tag is printed.
func Infof(format string, args ...any) {
	write(INFO, fmt.Sprintf(format, args...)+"\n")
}

// Debug works as Error when the level is DEBUG.
func Debug(args ...any) {
	write(DEBUG, fmt.Sprintln(args...))
}

// Debugf works as Errorf when the level is DEBUG.
func Debugf(format string, args ...any) {
	write(DEBUG, fmt.Sprintf(format, args...)+"\n")
}

// Print works as fmt.Print, but flushes the writer. Print ignores the level.
func Print(args ...any) {
	write(fatal, fmt.Sprint(args...))
}

// Println works as fmt.Println, but flushes the writer. Println ignores the level.
func Println(args ...any) {
	write(fatal, fmt.Sprintln(args...))
}

// Printf works as fmt.Printf, but flushes the writer. Printf ignores the level.
func Printf(format string, args ...any) {
	write(fatal, fmt.Sprintf(format, args...))
}

// write outputs msg, prefixed by the tag of l, if l is enabled. Messages of
// concurrent callers are not interleaved.
func write(l Level, msg string) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil || level < l {
		return
	}
	if tag, has := tags[l]; has {
		msg = tag(tagNames[l]) + msg
	}
	if _, err := logger.WriteString(msg); err != nil {
		fail()
	}
	if logger.Flush() != nil {
		fail()
	}
}

func fail() {
	// use fatal instead of panic to make linter happy
	log.Fatal()
}
