package nestegg

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/nestegg/date"
	"github.com/shopspring/decimal"
)

// ValueLog is the history of the actual portfolio value, persisted as a JSONL
// file with one {"date","value","currency"} object per line.
//
// There is at most one value per day: the first one recorded wins.
type ValueLog struct {
	path     string
	currency string
	values   date.History[Money]
}

// OpenValueLog reads the value log at 'path'. A missing file is an empty log.
func OpenValueLog(path, currency string) (*ValueLog, error) {
	l := &ValueLog{path: path, currency: currency}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := l.decode(f); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return l, nil
}

type valueLine struct {
	Date     date.Date       `json:"date"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

func (l *ValueLog) decode(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var v valueLine
		if err := json.Unmarshal(line, &v); err != nil {
			return fmt.Errorf("cannot parse value log line %q: %w", string(line), err)
		}
		if !l.values.Has(v.Date) {
			l.values.Append(v.Date, M(v.Value, v.Currency))
		}
	}
	return scanner.Err()
}

// encodeLine returns the JSONL line of a value.
func encodeLine(day date.Date, v Money) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", day)
	w.Append("value", v.value)
	w.Append("currency", v.cur)
	line, err := w.MarshalJSON()
	return append(line, '\n'), err
}

// Record appends the portfolio value of 'day' to the log.
//
// It returns false, without error, when a value already exists for that day.
func (l *ValueLog) Record(day date.Date, v Money) (bool, error) {
	if l.values.Has(day) {
		return false, nil
	}
	v = v.orCurrency(l.currency)
	line, err := encodeLine(day, v)
	if err != nil {
		return false, err
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return false, err
	}
	if _, err := f.Write(line); err != nil {
		f.Close()
		return false, fmt.Errorf("cannot write %s: %w", l.path, err)
	}
	if err := f.Close(); err != nil {
		return false, err
	}
	l.values.Append(day, v)
	return true, nil
}

// Latest returns the last recorded day and value.
func (l *ValueLog) Latest() (date.Date, Money, bool) {
	if l.values.Len() == 0 {
		return date.Date{}, Money{}, false
	}
	day, v := l.values.Latest()
	return day, v, true
}

// History returns the recorded values.
func (l *ValueLog) History() *date.History[Money] { return &l.values }

// CurrentValue returns the latest recorded value. It implements CurrentValueProvider.
func (l *ValueLog) CurrentValue() (Money, error) {
	_, v, ok := l.Latest()
	if !ok {
		return Money{}, fmt.Errorf("no portfolio value recorded in %s, use the record command", l.path)
	}
	return v, nil
}
