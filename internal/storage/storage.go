package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Tiliavir/billable-hours/internal/model"
)

// HomeEnv overrides the data directory when set.
const HomeEnv = "BHR_HOME"

// BaseDir returns the root data directory ($BHR_HOME or ~/.bhr).
func BaseDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".bhr"), nil
}

// NewRecordID returns a fresh identifier for a timesheet entry.
func NewRecordID() string {
	return uuid.NewString()
}

// dayFilePath returns the path for the given date's JSON file.
func dayFilePath(base string, t time.Time) string {
	return filepath.Join(base, t.Format("2006"), t.Format("01"), t.Format("02")+".json")
}

// LoadDay loads the DayFile for the given date. Returns an empty DayFile if not found.
func LoadDay(base string, t time.Time) (model.DayFile, error) {
	path := dayFilePath(base, t)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.DayFile{Date: t.Format("2006-01-02"), Records: []model.Record{}}, nil
	}
	if err != nil {
		return model.DayFile{}, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var df model.DayFile
	if err := json.Unmarshal(data, &df); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return model.DayFile{}, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	if df.Records == nil {
		df.Records = []model.Record{}
	}
	return df, nil
}

// SaveDay atomically writes a DayFile for the given date.
func SaveDay(base string, t time.Time, df model.DayFile) error {
	path := dayFilePath(base, t)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(df, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// UpsertRecord replaces the record with the same entry ID in the day file for
// day, or appends it.
func UpsertRecord(base string, day time.Time, rec model.Record) error {
	if rec.Entry.ID == "" {
		return fmt.Errorf("storage error: record has no entry ID")
	}
	df, err := LoadDay(base, day)
	if err != nil {
		return err
	}
	for i, r := range df.Records {
		if r.Entry.ID == rec.Entry.ID {
			df.Records[i] = rec
			return SaveDay(base, day, df)
		}
	}
	df.Records = append(df.Records, rec)
	return SaveDay(base, day, df)
}

// FindOpenRecord searches the past week (most recent first) for a clocked
// session that has not been stopped. It returns the record and its day.
func FindOpenRecord(base string, now time.Time) (*model.Record, time.Time, error) {
	for i := 0; i < 7; i++ {
		day := now.AddDate(0, 0, -i)
		df, err := LoadDay(base, day)
		if err != nil {
			return nil, time.Time{}, err
		}
		for j := len(df.Records) - 1; j >= 0; j-- {
			if df.Records[j].Open() {
				return &df.Records[j], day, nil
			}
		}
	}
	return nil, time.Time{}, nil
}

// LoadRange loads all records in [from, to] inclusive, in date order.
func LoadRange(base string, from, to time.Time) ([]model.Record, error) {
	var records []model.Record
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		df, err := LoadDay(base, d)
		if err != nil {
			return nil, err
		}
		records = append(records, df.Records...)
	}
	return records, nil
}
