package log

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

type EventType string

const (
	EventLoad      EventType = "load"
	EventRowSkip   EventType = "row_skipped"
	EventDefaulted EventType = "field_defaulted"
	EventLookup    EventType = "lookup"
	EventQuery     EventType = "query"
)

// Event is one diagnostic entry recorded during a session: a load summary, a
// recovered loader problem, or a query the user ran.
type Event struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Detail    string    `json:"detail"`
	Line      int       `json:"line,omitempty"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

type SessionMetadata struct {
	CommandArgs []string  `json:"command_args"`
	CSVPath     string    `json:"csv_path"`
	WorkingDir  string    `json:"working_dir"`
	Timestamp   time.Time `json:"timestamp"`
	SessionID   string    `json:"session_id"`
	TotalEvents int       `json:"total_events"`
	ErrorEvents int       `json:"error_events"`
}

type LogSession struct {
	Metadata SessionMetadata `json:"metadata"`
	Events   []Event         `json:"events"`
}

// Global singleton session manager
var (
	currentSession *LogSession
	sessionMutex   sync.Mutex
	loggingEnabled = true
)

// Initialize sets up the logging system with the given configuration and
// prunes logs older than retentionDays.
func Initialize(enabled bool, retentionDays int) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	loggingEnabled = enabled

	if enabled {
		if err := cleanupOldLogsUnsafe(retentionDays); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to clean up old logs: %v\n", err)
		}
	}
}

// StartSession initializes a new logging session
func StartSession(command string, args []string, csvPath string) error {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled {
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	now := time.Now()
	sessionID := fmt.Sprintf("%s_%03d", now.Format("20060102_150405"), now.Nanosecond()/1000000)

	currentSession = &LogSession{
		Metadata: SessionMetadata{
			CommandArgs: append([]string{command}, args...),
			CSVPath:     csvPath,
			WorkingDir:  wd,
			Timestamp:   now,
			SessionID:   sessionID,
		},
		Events: []Event{},
	}

	return nil
}

// EndSession saves the current session to disk
func EndSession() error {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled || currentSession == nil {
		return nil
	}

	updateStats()
	err := WriteSession(currentSession)
	currentSession = nil
	return err
}

// LogLoad records a completed catalog load.
func LogLoad(csvPath string, titles, skipped int) {
	logEvent(EventLoad, fmt.Sprintf("loaded %d titles from %s (%d rows skipped)", titles, csvPath, skipped), 0, true, nil)
}

// LogRowSkipped records a structurally invalid or dropped row.
func LogRowSkipped(line int, detail string) {
	logEvent(EventRowSkip, detail, line, false, nil)
}

// LogFieldDefaulted records a field parse failure downgraded to a default.
func LogFieldDefaulted(line int, detail string) {
	logEvent(EventDefaulted, detail, line, false, nil)
}

// LogLookup records an identifier lookup and its outcome.
func LogLookup(id string, err error) {
	logEvent(EventLookup, fmt.Sprintf("lookup %s", id), 0, err == nil, err)
}

// LogQuery records an aggregate query and its result.
func LogQuery(name, result string) {
	logEvent(EventQuery, fmt.Sprintf("%s -> %s", name, result), 0, true, nil)
}

func logEvent(eventType EventType, detail string, line int, success bool, err error) {
	sessionMutex.Lock()
	defer sessionMutex.Unlock()

	if !loggingEnabled || currentSession == nil {
		return
	}

	ev := Event{
		ID:        fmt.Sprintf("%s_%d", currentSession.Metadata.SessionID, len(currentSession.Events)),
		Timestamp: time.Now(),
		Type:      eventType,
		Detail:    detail,
		Line:      line,
		Success:   success,
	}

	if err != nil {
		ev.Error = err.Error()
	}

	currentSession.Events = append(currentSession.Events, ev)
}

// updateStats updates the session statistics
func updateStats() {
	if currentSession == nil {
		return
	}

	errors := 0
	for _, ev := range currentSession.Events {
		if !ev.Success {
			errors++
		}
	}

	currentSession.Metadata.TotalEvents = len(currentSession.Events)
	currentSession.Metadata.ErrorEvents = errors
}

func GetLogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, ".flixlens", "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	now := time.Now()
	filename := fmt.Sprintf("%s.%03d.json",
		now.Format("2006-01-02_150405"),
		now.Nanosecond()/1000000)

	return filepath.Join(logDir, filename), nil
}

func WriteSession(session *LogSession) error {
	if session == nil {
		return nil
	}

	logPath, err := GetLogPath()
	if err != nil {
		return fmt.Errorf("failed to get log path: %w", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(logPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write log file: %w", err)
	}

	return nil
}

func ReadSession(logPath string) (*LogSession, error) {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}

	var session LogSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// ReadSessions returns up to limit recent sessions, newest first.
func ReadSessions(limit int) ([]*LogSession, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, ".flixlens", "logs")

	// Check if log directory exists
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		return []*LogSession{}, nil
	}

	files, err := filepath.Glob(filepath.Join(logDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list log files: %w", err)
	}

	// Sort files by name (which includes timestamp) in descending order
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	// Apply limit
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}

	sessions := make([]*LogSession, 0, len(files))
	for _, f := range files {
		session, err := ReadSession(f)
		if err != nil {
			// A corrupt log file shouldn't hide the others.
			continue
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func cleanupOldLogsUnsafe(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, ".flixlens", "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(logDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list log files: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(f)
		}
	}

	return nil
}
