package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/sporthub/internal/app/repositories"
	"github.com/yigit/sporthub/internal/pkg/helpers"
)

type sport struct {
	name        string
	description string
}

// DefaultSports is the taxonomy every fresh database starts with.
var DefaultSports = []sport{
	{"football", "Association football"},
	{"basketball", "Five-a-side court basketball"},
	{"tennis", "Singles and doubles tennis"},
	{"running", "Road and trail running"},
	{"cycling", "Road, track and mountain cycling"},
	{"swimming", "Pool and open water swimming"},
	{"volleyball", "Indoor and beach volleyball"},
	{"handball", "Indoor handball"},
	{"rugby", "Rugby union and league"},
	{"climbing", "Bouldering and rope climbing"},
}

// CreateDefaultData inserts the default sports. Existing names are left as
// they are, so it is safe to run on every start.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Sports)...")

	var finalErr error
	for _, s := range DefaultSports {
		if err := repos.Sports.EnsureExists(ctx, s.name, helpers.NullableString(s.description)); err != nil {
			lgr.Error().Err(err).Str("sport", s.name).Msg("Error creating default sport")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr != nil {
		lgr.Warn().Err(finalErr).Msg("Default data creation finished with errors")
		return finalErr
	}
	lgr.Info().Int("count", len(DefaultSports)).Msg("Default sports ensured")
	return nil
}
