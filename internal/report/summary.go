// Package report computes campaign statistics over a company's encounters
// and renders them as a paginated corporate report.
package report

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/visionwow/visionwow/internal/domain/encounter"
)

// KeyCount is one checklist option with the number of encounters that have
// it checked.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// BucketCount is one prescription-strength range.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary aggregates every figure the corporate report shows.
type Summary struct {
	Total     int `json:"total"`
	Bought    int `json:"bought"`
	NotBought int `json:"not_bought"`
	// Rate is the purchase conversion as a whole percentage.
	Rate int `json:"rate"`

	Buckets []BucketCount `json:"buckets"`
	// KeyCounts maps every checked option to the number of encounters
	// carrying it; TopKeys is its ten largest entries.
	KeyCounts map[string]int `json:"key_counts,omitempty"`
	TopKeys   []KeyCount     `json:"top_keys"`
	Selected  []KeyCount     `json:"selected,omitempty"`
}

// Diopter ranges for the worst-eye sphere, checked in order.
var diopterBuckets = []struct {
	label string
	limit float64
}{
	{"Buena (0 a ±0.50)", 0.50},
	{"Leve (±0.50 a ±1.50)", 1.50},
	{"Media (±1.50 a ±3.00)", 3.00},
	{"Alta (±3.00 a ±6.00)", 6.00},
	{"Muy alta (>6.00)", math.Inf(1)},
}

const topKeyLimit = 10

// ComputeSummary folds the encounter set into report figures. selectedKeys
// are the checklist options the caller filtered on; their per-key counts are
// reported separately so the document can chart them.
func ComputeSummary(encs []*encounter.Encounter, selectedKeys []string) Summary {
	sum := Summary{Total: len(encs)}

	for _, lim := range diopterBuckets {
		sum.Buckets = append(sum.Buckets, BucketCount{Label: lim.label})
	}

	allCounts := make(map[string]int)
	for _, enc := range encs {
		if DidBuy(enc) {
			sum.Bought++
		}
		bucketWorstEye(sum.Buckets, enc)

		if a := encounter.DecodeAntecedents(enc.AntecedentesJSON); a != nil {
			for key := range a.EnabledKeys(false) {
				allCounts[key]++
			}
		}
	}

	sum.NotBought = sum.Total - sum.Bought
	if sum.NotBought < 0 {
		sum.NotBought = 0
	}
	if sum.Total > 0 {
		sum.Rate = int(math.Round(float64(sum.Bought) / float64(sum.Total) * 100))
	}

	if len(allCounts) > 0 {
		sum.KeyCounts = allCounts
	}
	sum.TopKeys = topCounts(allCounts, topKeyLimit)
	sum.Selected = selectedCounts(encs, selectedKeys)
	return sum
}

// DidBuy reports whether a visit ended in a lens purchase. Payment fields
// are free text, so this is deliberately forgiving: any status mentioning
// "pag" or any non-zero total counts.
func DidBuy(enc *encounter.Encounter) bool {
	status := strings.ToLower(strings.TrimSpace(enc.PayStatus))
	if strings.Contains(status, "pag") {
		return true
	}
	total := strings.TrimSpace(enc.PayTotal)
	return total != "" && total != "0"
}

// ParseDecimal parses a hand-entered decimal, accepting a comma separator.
// Returns nil when the field is blank or unparseable.
func ParseDecimal(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func bucketWorstEye(buckets []BucketCount, enc *encounter.Encounter) {
	od := ParseDecimal(enc.RxOdSph)
	os := ParseDecimal(enc.RxOsSph)

	var worst float64
	switch {
	case od == nil && os == nil:
		return
	case od == nil:
		worst = *os
	case os == nil:
		worst = *od
	case math.Abs(*od) >= math.Abs(*os):
		worst = *od
	default:
		worst = *os
	}

	abs := math.Abs(worst)
	for i, lim := range diopterBuckets {
		if abs <= lim.limit {
			buckets[i].Count++
			break
		}
	}
}

func topCounts(counts map[string]int, limit int) []KeyCount {
	out := make([]KeyCount, 0, len(counts))
	for key, n := range counts {
		out = append(out, KeyCount{Key: key, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func selectedCounts(encs []*encounter.Encounter, keys []string) []KeyCount {
	if len(keys) == 0 {
		return nil
	}
	counts := make(map[string]int, len(keys))
	for _, enc := range encs {
		a := encounter.DecodeAntecedents(enc.AntecedentesJSON)
		if a == nil {
			continue
		}
		// The generic "Otra" option is not a countable finding.
		enabled := a.EnabledKeys(false)
		for _, key := range keys {
			if enabled[strings.TrimSpace(key)] {
				counts[key]++
			}
		}
	}
	out := make([]KeyCount, 0, len(keys))
	for _, key := range keys {
		out = append(out, KeyCount{Key: key, Count: counts[key]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
