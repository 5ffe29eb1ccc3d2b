// Package recommend picks related videos for the detail view.
package recommend

import (
	"math/rand"

	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
)

// DefaultCount is how many recommendations the detail view shows.
const DefaultCount = 12

// Pick returns up to n videos other than currentID in random order. The
// catalog is not modified. A nil rng uses the global source.
func Pick(catalog []models.Video, currentID string, n int, rng *rand.Rand) []models.Video {
	if n <= 0 {
		return []models.Video{}
	}
	others := make([]models.Video, 0, len(catalog))
	for _, v := range catalog {
		if v.ID != currentID {
			others = append(others, v)
		}
	}

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for i := len(others) - 1; i > 0; i-- {
		j := intn(i + 1)
		others[i], others[j] = others[j], others[i]
	}
	if len(others) > n {
		others = others[:n]
	}
	return others
}
