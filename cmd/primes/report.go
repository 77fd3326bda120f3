package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Report appends one line per computation to the configured report file.
type Report struct {
	w io.Writer
}

// NewReport opens the report destination described by config. Without a
// report_file every record is dropped.
func NewReport(config *Config) (*Report, error) {
	fileName := config.ReportFile
	switch fileName {
	case "":
		return &Report{w: io.Discard}, nil
	case "/dev/stdout":
		return &Report{w: os.Stdout}, nil
	}

	if st, _ := os.Stat(fileName); st != nil && !st.Mode().IsRegular() {
		if st.Mode().IsDir() {
			return nil, fmt.Errorf("[%v] is a directory", fileName)
		}
		fp, err := os.OpenFile(fileName, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			return nil, fmt.Errorf("unable to access [%v]: %w", fileName, err)
		}
		return &Report{w: fp}, nil
	}

	logger := &lumberjack.Logger{
		LocalTime:  true,
		MaxSize:    config.ReportMaxSize,
		MaxAge:     config.ReportMaxAge,
		MaxBackups: config.ReportMaxBackups,
		Filename:   fileName,
		Compress:   true,
	}
	return &Report{w: logger}, nil
}

// Record writes the outcome of one computation.
func (r *Report) Record(bound uint32, algorithm string, count int, elapsed time.Duration) error {
	line := fmt.Sprintf("%s bound=%d algorithm=%s count=%d elapsed=%s\n",
		time.Now().Format(time.RFC3339), bound, algorithm, count, elapsed)
	if _, err := io.WriteString(r.w, line); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// Close releases the report file, if one was opened.
func (r *Report) Close() error {
	if r.w == os.Stdout {
		return nil
	}
	if closer, ok := r.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
