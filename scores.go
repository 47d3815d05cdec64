package main

import (
	"errors"
	"maps"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// Sentinel errors returned by AppendOrUpdate for rejected input. Any other
// error means the sheet could not be persisted.
var (
	ErrInvalidDate     = errors.New(ErrorInvalidDate)
	ErrScoreOutOfRange = errors.New(ErrorScoreOutOfRange)
	ErrUnknownPlayer   = errors.New(ErrorUnknownPlayer)
)

// ScoreStore holds the tournament score sheet: one row per date with a
// column per player, persisted as a wide CSV the way the sheet has always
// been kept. Mutations are serialized by one mutex.
type ScoreStore struct {
	path    string
	mu      sync.Mutex
	players []string
	rows    []ScoreRow
}

// LoadScoreStore reads the score sheet CSV. The header must contain a Date
// column; every other column is a player. Unparseable cells are skipped
// with a warning rather than failing the whole sheet.
func LoadScoreStore(path string) (*ScoreStore, error) {
	header, records, err := readCSVFile(path)
	if err != nil {
		return nil, err
	}

	dateCol := -1
	players := make([]string, 0, len(header))
	playerCols := make(map[int]string)
	for i, name := range header {
		name = strings.TrimSpace(name)
		if strings.EqualFold(name, "date") {
			dateCol = i
			continue
		}
		if name != "" {
			players = append(players, name)
			playerCols[i] = name
		}
	}
	if dateCol < 0 {
		return nil, errors.New("score sheet has no Date column")
	}
	if len(players) == 0 {
		return nil, errors.New("score sheet has no player columns")
	}

	store := &ScoreStore{path: path, players: players}
	for _, record := range records {
		if dateCol >= len(record) {
			continue
		}
		date := strings.TrimSpace(record[dateCol])
		if date == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, date); err != nil {
			logWarn("Skipping score row with bad date %q: %v", date, err)
			continue
		}
		row := ScoreRow{Date: date, Scores: make(map[string]float64)}
		for i, player := range playerCols {
			if i >= len(record) || strings.TrimSpace(record[i]) == "" {
				continue
			}
			val, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
			if err != nil {
				logWarn("Skipping unparseable score %q for %s on %s", record[i], player, date)
				continue
			}
			row.Scores[player] = val
		}
		store.rows = append(store.rows, row)
	}
	return store, nil
}

// Players returns the player column names in sheet order.
func (st *ScoreStore) Players() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]string, len(st.players))
	copy(out, st.players)
	return out
}

// ReadAll returns every score row, newest date first. Each row's score map
// is cloned so callers can iterate the snapshot while the sheet keeps
// taking updates.
func (st *ScoreStore) ReadAll() []ScoreRow {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]ScoreRow, 0, len(st.rows))
	for _, row := range st.rows {
		out = append(out, ScoreRow{Date: row.Date, Scores: maps.Clone(row.Scores)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// AppendOrUpdate sets one player's score for a date: the existing row is
// updated in place if the date is already on the sheet, otherwise a new row
// is appended. The sheet is persisted on success.
func (st *ScoreStore) AppendOrUpdate(date, player string, score int) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrInvalidDate
	}
	if score < MinScore || score > MaxScore {
		return ErrScoreOutOfRange
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	found := false
	for _, p := range st.players {
		if p == player {
			found = true
			break
		}
	}
	if !found {
		return ErrUnknownPlayer
	}

	updated := false
	for i := range st.rows {
		if st.rows[i].Date == date {
			st.rows[i].Scores[player] = float64(score)
			updated = true
			break
		}
	}
	if !updated {
		st.rows = append(st.rows, ScoreRow{
			Date:   date,
			Scores: map[string]float64{player: float64(score)},
		})
	}
	logInfo("Saved score %d for %s on %s", score, player, date)
	return st.save()
}

// MonthlyAverages computes each player's mean score per month, rounded to 2
// decimals, newest month first.
func (st *ScoreStore) MonthlyAverages() []MonthlyAverage {
	st.mu.Lock()
	defer st.mu.Unlock()

	type bucket struct {
		sums   map[string]float64
		counts map[string]int
	}
	buckets := make(map[string]bucket)
	for _, row := range st.rows {
		month := row.Date[:7]
		b, ok := buckets[month]
		if !ok {
			b = bucket{sums: make(map[string]float64), counts: make(map[string]int)}
			buckets[month] = b
		}
		for player, score := range row.Scores {
			b.sums[player] += score
			b.counts[player]++
		}
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	out := make([]MonthlyAverage, 0, len(months))
	for _, month := range months {
		b := buckets[month]
		averages := make(map[string]float64, len(b.sums))
		for player, sum := range b.sums {
			averages[player] = roundScore(sum / float64(b.counts[player]))
		}
		out = append(out, MonthlyAverage{Month: month, Averages: averages})
	}
	return out
}

// save writes the sheet back to disk in the wide CSV form. Caller holds st.mu.
func (st *ScoreStore) save() error {
	header := append([]string{"Date"}, st.players...)

	rows := make([]ScoreRow, len(st.rows))
	copy(rows, st.rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date < rows[j].Date
	})

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Date)
		for _, player := range st.players {
			if score, ok := row.Scores[player]; ok {
				record = append(record, strconv.FormatFloat(score, 'g', -1, 64))
			} else {
				record = append(record, "")
			}
		}
		records = append(records, record)
	}
	return writeCSVAtomic(st.path, header, records)
}
