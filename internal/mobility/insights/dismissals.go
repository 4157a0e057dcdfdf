package insights

import (
	"context"
	"strconv"
	"time"

	"github.com/2beens/mobilitystats/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	// DismissalTTL is the window after which a dismissed insight may
	// resurface if its detector still fires.
	DismissalTTL = 7 * 24 * time.Hour

	dismissalsKey = "mobility-service-insight-dismissals"
)

// DismissalStore keeps insight ID -> dismissed-at pairs in a redis hash.
// Losing the hash only means previously dismissed insights resurface, it is
// never a hard failure for the callers.
type DismissalStore struct {
	redisClient *redis.Client
}

func NewDismissalStore(redisClient *redis.Client) *DismissalStore {
	return &DismissalStore{
		redisClient: redisClient,
	}
}

// Load returns all still-valid dismissals. Entries past the TTL (or with a
// garbled timestamp) are pruned as a side effect, but only when at least one
// such entry exists.
func (s *DismissalStore) Load(ctx context.Context) (_ map[string]time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insights.dismissals.load")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	raw, err := s.redisClient.HGetAll(ctx, dismissalsKey).Result()
	if err != nil {
		return nil, err
	}

	dismissed := make(map[string]time.Time, len(raw))
	var expired []string
	for id, value := range raw {
		timestamp, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			expired = append(expired, id)
			continue
		}
		dismissedAt := time.Unix(timestamp, 0)
		if time.Since(dismissedAt) > DismissalTTL {
			expired = append(expired, id)
			continue
		}
		dismissed[id] = dismissedAt
	}

	if len(expired) > 0 {
		if err := s.redisClient.HDel(ctx, dismissalsKey, expired...).Err(); err != nil {
			log.Warnf("insight dismissals, failed to prune %d expired entries: %s", len(expired), err)
		}
	}

	return dismissed, nil
}

func (s *DismissalStore) Dismiss(ctx context.Context, id string, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insights.dismissals.dismiss")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.redisClient.HSet(ctx, dismissalsKey, id, at.Unix()).Err()
}
