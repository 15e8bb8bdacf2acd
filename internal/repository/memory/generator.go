package memory

import (
	"fmt"
	"time"

	"github.com/confirmly/dashboard-api/internal/model"
	"github.com/confirmly/dashboard-api/pkg/seedrand"
)

const (
	defaultChannel = "whatsapp"
	rosterSize     = 100
)

// Fixed given/family name pairs the roster cycles through. The list must
// never be reordered: roster generation consumes PRNG draws in a fixed
// order, and any change here breaks seed reproducibility.
var rosterNames = [][2]string{
	{"James", "Walker"},
	{"Mary", "Bennett"},
	{"Robert", "Hayes"},
	{"Patricia", "Coleman"},
	{"John", "Fischer"},
	{"Jennifer", "Dawson"},
	{"Michael", "Sutton"},
	{"Linda", "Harmon"},
	{"David", "Mercer"},
	{"Elizabeth", "Quinn"},
	{"William", "Barrett"},
	{"Barbara", "Lowell"},
	{"Richard", "Chandler"},
	{"Susan", "Whitfield"},
	{"Joseph", "Maddox"},
	{"Jessica", "Sterling"},
	{"Thomas", "Radford"},
	{"Sarah", "Ellison"},
	{"Charles", "Hargrove"},
	{"Karen", "Winslow"},
}

// generate builds the entire synthetic dataset: a fixed customer roster,
// then one sent/received batch pair and the derived DailyStats per day of
// history, counting back from today. The order of PRNG draws is fixed;
// two runs with the same seed yield identical data.
func (s *Store) generate(cfg GeneratorConfig) {
	rng := seedrand.New(cfg.Seed)
	now := s.now()

	s.generateRoster(rng, now)

	for offset := 0; offset < cfg.DaysOfHistory; offset++ {
		day := now.AddDate(0, 0, -offset)
		s.generateDay(rng, cfg, day)
	}
}

func (s *Store) generateRoster(rng *seedrand.Rand, now time.Time) {
	for i := 0; i < rosterSize; i++ {
		pair := rosterNames[i%len(rosterNames)]

		// Redraw on the rare phone collision; the collision pattern is
		// itself a deterministic function of the seed.
		var phone string
		for {
			phone = fmt.Sprintf("+1%03d%07d", rng.NextInt(200, 999), rng.NextInt(0, 9999999))
			if _, taken := s.phoneIndex[phone]; !taken {
				break
			}
		}

		c := &model.Customer{
			ID:        fmt.Sprintf("customer-%d", i+1),
			Name:      pair[0] + " " + pair[1],
			Phone:     phone,
			CreatedAt: now,
		}
		s.customers[c.ID] = c
		s.phoneIndex[c.Phone] = c.ID
	}
}

func (s *Store) generateDay(rng *seedrand.Rand, cfg GeneratorConfig, day time.Time) {
	date := day.Format(dateLayout)
	y, m, d := day.Date()
	loc := day.Location()

	customerCount := rng.NextInt(cfg.CustomersPerDayMin, cfg.CustomersPerDayMax)

	sent := &model.Batch{
		ID:            batchID(model.BatchTypeSent, date),
		Date:          date,
		Type:          model.BatchTypeSent,
		FileName:      batchFileName(model.BatchTypeSent, date),
		Channel:       defaultChannel,
		CustomerCount: customerCount,
		CreatedAt:     time.Date(y, m, d, 9, 0, 0, 0, loc),
	}
	s.insertGenerated(sent)

	rate := cfg.ResponseRateMin + rng.Next()*(cfg.ResponseRateMax-cfg.ResponseRateMin)
	totalResponses := int(float64(customerCount) * rate)

	confirmed := int(float64(totalResponses) * cfg.Proportions.Confirmed)
	notConfirmed := int(float64(totalResponses) * cfg.Proportions.NotConfirmed)
	questions := int(float64(totalResponses) * cfg.Proportions.Questions)
	// The last category absorbs the rounding loss so the four always sum
	// exactly to totalResponses.
	other := totalResponses - confirmed - notConfirmed - questions

	received := &model.Batch{
		ID:            batchID(model.BatchTypeReceived, date),
		Date:          date,
		Type:          model.BatchTypeReceived,
		FileName:      batchFileName(model.BatchTypeReceived, date),
		Channel:       defaultChannel,
		CustomerCount: totalResponses,
		Confirmed:     confirmed,
		NotConfirmed:  notConfirmed,
		Questions:     questions,
		Other:         other,
		CreatedAt:     time.Date(y, m, d, 18, 0, 0, 0, loc),
	}
	s.insertGenerated(received)

	s.stats[date] = &model.DailyStats{
		Date:          date,
		TotalSent:     customerCount,
		TotalReceived: totalResponses,
		Confirmed:     confirmed,
		NotConfirmed:  notConfirmed,
		Questions:     questions,
		Other:         other,
		Pending:       customerCount - totalResponses,
	}
}

func (s *Store) insertGenerated(b *model.Batch) {
	s.batches[b.ID] = b
	s.batchOrder = append(s.batchOrder, b.ID)
}

func batchID(t model.BatchType, date string) string {
	return fmt.Sprintf("%s-%s", t, date)
}

func batchFileName(t model.BatchType, date string) string {
	if t == model.BatchTypeSent {
		return fmt.Sprintf("confirmations_%s.csv", date)
	}
	return fmt.Sprintf("responses_%s.csv", date)
}
