package suite

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	logs *bytes.Buffer
}

// New - returns a suite whose logger writes JSON records into memory.
func New(t *testing.T) *Suite {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &Suite{
		T:      t,
		Logger: logger,
		logs:   logs,
	}
}

// Records - decodes every log record written so far.
func (that *Suite) Records() []map[string]any {
	that.Helper()

	var records []map[string]any

	scanner := bufio.NewScanner(bytes.NewReader(that.logs.Bytes()))
	for scanner.Scan() {
		record := map[string]any{}
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			that.Fatalf("could not decode log record %q: %v", scanner.Text(), err)
		}

		records = append(records, record)
	}

	return records
}

// Messages - returns the msg field of every record in order.
func (that *Suite) Messages() []string {
	that.Helper()

	records := that.Records()
	messages := make([]string, 0, len(records))
	for _, record := range records {
		msg, _ := record[slog.MessageKey].(string)
		messages = append(messages, msg)
	}

	return messages
}
