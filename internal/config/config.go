package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mariaiw8/apontamentos/internal/workhours"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of the apontamentos binary.
type Config struct {
	DBPath       string
	CalendarPath string
	LogUseCases  bool
	Calendar     workhours.Calendar
}

// DefaultConfig stores the database under ~/.apontamentos and uses the
// built-in shop calendar.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:   filepath.Join(home, ".apontamentos", "apontamentos.db"),
		Calendar: workhours.DefaultCalendar(),
	}, nil
}

// LoadConfig reads the configuration from environment variables, falling
// back to defaults for any unset values. A calendar file that cannot be
// read or parsed is an error rather than a silent fallback.
func LoadConfig() (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("APONTAMENTOS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("APONTAMENTOS_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("APONTAMENTOS_CALENDAR"); v != "" {
		cal, err := LoadCalendar(v)
		if err != nil {
			return Config{}, err
		}
		cfg.CalendarPath = v
		cfg.Calendar = cal
	}
	return cfg, nil
}

// calendarFile is the YAML layout of a calendar file:
//
//	days:
//	  monday: ["07:00-12:00", "13:00-17:30"]
//	  friday: ["07:00-12:30"]
type calendarFile struct {
	Days map[string][]string `yaml:"days"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// LoadCalendar reads a YAML calendar file.
func LoadCalendar(path string) (workhours.Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return workhours.Calendar{}, fmt.Errorf("reading calendar %s: %w", path, err)
	}
	cal, err := ParseCalendar(data)
	if err != nil {
		return workhours.Calendar{}, fmt.Errorf("calendar %s: %w", path, err)
	}
	return cal, nil
}

// ParseCalendar decodes a YAML calendar. Days left out are closed.
func ParseCalendar(data []byte) (workhours.Calendar, error) {
	var f calendarFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return workhours.Calendar{}, fmt.Errorf("parsing yaml: %w", err)
	}
	if len(f.Days) == 0 {
		return workhours.Calendar{}, fmt.Errorf("%w: no days", workhours.ErrInvalidCalendar)
	}

	days := make(map[time.Weekday][]workhours.Window, len(f.Days))
	for name, specs := range f.Days {
		day, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return workhours.Calendar{}, fmt.Errorf("%w: unknown day %q", workhours.ErrInvalidCalendar, name)
		}
		for _, s := range specs {
			w, err := workhours.ParseWindow(s)
			if err != nil {
				return workhours.Calendar{}, fmt.Errorf("%s: %w", name, err)
			}
			days[day] = append(days[day], w)
		}
	}
	return workhours.NewCalendar(days)
}
