package stats

import (
	"math"
	"sort"
	"time"

	"github.com/jonathanRossato/treino-app/models"
)

// PersonalRecord is the heaviest weight ever logged for one exercise name,
// with the context of the workout where it happened.
type PersonalRecord struct {
	ExerciseName string    `json:"exerciseName"`
	MaxWeight    int       `json:"maxWeight"`
	Date         time.Time `json:"date"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
}

type RecordsSummary struct {
	TotalRecords int              `json:"totalRecords"`
	AvgWeight    int              `json:"avgWeight"`
	Records      []PersonalRecord `json:"records"`
}

// PersonalRecords walks workouts in list order and keeps, per exercise name,
// the occurrence with the strictly greatest weight. Equal weights never
// replace the current holder, so the first-seen occurrence wins ties.
// Results are sorted by max weight descending; ranking is positional.
func PersonalRecords(workouts []models.Workout) []PersonalRecord {
	byName := make(map[string]PersonalRecord)
	var order []string

	for _, w := range workouts {
		for _, ex := range w.Exercises {
			existing, ok := byName[ex.Name]
			if !ok {
				order = append(order, ex.Name)
			}
			if !ok || ex.Weight > existing.MaxWeight {
				byName[ex.Name] = PersonalRecord{
					ExerciseName: ex.Name,
					MaxWeight:    ex.Weight,
					Date:         w.Date,
					Sets:         ex.Sets,
					Reps:         ex.Reps,
				}
			}
		}
	}

	records := make([]PersonalRecord, 0, len(order))
	for _, name := range order {
		records = append(records, byName[name])
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].MaxWeight > records[j].MaxWeight
	})
	return records
}

// SummarizeRecords adds the headline numbers shown above the record list.
func SummarizeRecords(records []PersonalRecord) RecordsSummary {
	total := 0
	for _, r := range records {
		total += r.MaxWeight
	}
	avg := 0
	if len(records) > 0 {
		avg = int(math.Round(float64(total) / float64(len(records))))
	}
	return RecordsSummary{
		TotalRecords: len(records),
		AvgWeight:    avg,
		Records:      records,
	}
}
