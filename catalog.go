package main

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// ErrWordNotInCatalog is returned by MarkUsed and Remove for unknown words.
// Any other error from them means the word list could not be persisted.
var ErrWordNotInCatalog = errors.New(ErrorWordNotInCatalog)

// WordCatalog is the persistent word list with per-word weights. All
// mutations and saves go through one mutex: the solver core never writes,
// so a single-writer discipline is enough even with concurrent sessions.
type WordCatalog struct {
	path    string
	mu      sync.Mutex
	entries []CatalogEntry
	index   map[string]int
}

// LoadWordCatalog reads a Word,Weight CSV into memory. The Weight column is
// optional; missing or empty cells default to 1.0. Words are uppercased and
// entries that are not 5 letters are skipped with a warning, matching how
// the word list has always been curated by hand.
func LoadWordCatalog(path string) (*WordCatalog, error) {
	header, records, err := readCSVFile(path)
	if err != nil {
		return nil, err
	}

	wordCol, weightCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "word":
			wordCol = i
		case "weight":
			weightCol = i
		}
	}
	if wordCol < 0 {
		return nil, errors.New("word list has no Word column")
	}

	catalog := &WordCatalog{
		path:  path,
		index: make(map[string]int),
	}
	for _, record := range records {
		if wordCol >= len(record) {
			continue
		}
		word := normalizeGuess(record[wordCol])
		if !isUppercaseWord(word) {
			logWarn("Skipping catalog word %q: not 5 letters", word)
			continue
		}
		if _, dup := catalog.index[word]; dup {
			logWarn("Skipping duplicate catalog word %q", word)
			continue
		}
		weight := DefaultWeight
		if weightCol >= 0 && weightCol < len(record) && strings.TrimSpace(record[weightCol]) != "" {
			parsed, err := strconv.ParseFloat(strings.TrimSpace(record[weightCol]), 64)
			if err != nil || parsed <= 0 || parsed > 1 {
				logWarn("Catalog word %q has invalid weight %q, using %.1f", word, record[weightCol], DefaultWeight)
			} else {
				weight = parsed
			}
		}
		catalog.index[word] = len(catalog.entries)
		catalog.entries = append(catalog.entries, CatalogEntry{Word: word, Weight: weight})
	}
	return catalog, nil
}

// Len returns the number of catalog entries.
func (wc *WordCatalog) Len() int {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return len(wc.entries)
}

// Words returns the catalog words in load order.
func (wc *WordCatalog) Words() []string {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return lo.Map(wc.entries, func(entry CatalogEntry, _ int) string {
		return entry.Word
	})
}

// Weights returns a word-to-weight snapshot for the ranker.
func (wc *WordCatalog) Weights() map[string]float64 {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return lo.Associate(wc.entries, func(entry CatalogEntry) (string, float64) {
		return entry.Word, entry.Weight
	})
}

// Entries returns a copy of the catalog entries in load order.
func (wc *WordCatalog) Entries() []CatalogEntry {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	out := make([]CatalogEntry, len(wc.entries))
	copy(out, wc.entries)
	return out
}

// Contains reports whether word is in the catalog.
func (wc *WordCatalog) Contains(word string) bool {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	_, ok := wc.index[word]
	return ok
}

// MarkUsed lowers a word's weight (typically to 0.02 after it was the
// day's answer) and persists the catalog.
func (wc *WordCatalog) MarkUsed(word string, weight float64) error {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	i, ok := wc.index[word]
	if !ok {
		return ErrWordNotInCatalog
	}
	wc.entries[i].Weight = weight
	logInfo("Marked catalog word %s as used (weight %.2f)", word, weight)
	return wc.save()
}

// Remove deletes a word from the catalog outright and persists the catalog.
func (wc *WordCatalog) Remove(word string) error {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	i, ok := wc.index[word]
	if !ok {
		return ErrWordNotInCatalog
	}
	wc.entries = append(wc.entries[:i], wc.entries[i+1:]...)
	delete(wc.index, word)
	for w, j := range wc.index {
		if j > i {
			wc.index[w] = j - 1
		}
	}
	logInfo("Removed catalog word %s", word)
	return wc.save()
}

// save writes the catalog back to disk. Caller must hold wc.mu.
func (wc *WordCatalog) save() error {
	records := lo.Map(wc.entries, func(entry CatalogEntry, _ int) []string {
		return []string{entry.Word, strconv.FormatFloat(entry.Weight, 'g', -1, 64)}
	})
	return writeCSVAtomic(wc.path, []string{"Word", "Weight"}, records)
}
