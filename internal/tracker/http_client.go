package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/rs/zerolog/log"
)

type httpClient struct {
	cfg        Config
	httpClient *http.Client
}

func newHTTPClient(cfg Config) Client {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	return &httpClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

// Activities pages through /athlete/activities until a short page signals the
// end of the history. Activities whose dates fail to parse are dropped here,
// so the aggregation core only ever sees valid dates.
func (c *httpClient) Activities(ctx context.Context, after time.Time) ([]Activity, error) {
	var all []Activity

	for page := 1; ; page++ {
		batch, err := c.fetchPage(ctx, after, page)
		if err != nil {
			return nil, err
		}

		for _, a := range batch {
			if _, err := a.LocalDate(); err != nil {
				log.Warn().Int64("id", a.ID).Str("start", a.StartDateLocal).Msg("Dropping activity with unparseable date")
				continue
			}
			all = append(all, a)
		}

		if len(batch) < c.cfg.PageSize {
			break
		}

		if c.cfg.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.cfg.RequestDelay):
			}
		}
	}

	log.Info().Int("count", len(all)).Msg("Fetched activities from tracker")
	return all, nil
}

func (c *httpClient) fetchPage(ctx context.Context, after time.Time, page int) ([]Activity, error) {
	endpoint, err := url.Parse(c.cfg.BaseURL + "/athlete/activities")
	if err != nil {
		return nil, fmt.Errorf("invalid tracker URL: %w", err)
	}

	q := endpoint.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(c.cfg.PageSize))
	if !after.IsZero() {
		q.Set("after", strconv.FormatInt(after.Unix(), 10))
	}
	endpoint.RawQuery = q.Encode()

	var batch []Activity
	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
			if err != nil {
				return err
			}
			req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
				return fmt.Errorf("tracker returned %d: %s", resp.StatusCode, body)
			}

			batch = nil
			return json.NewDecoder(resp.Body).Decode(&batch)
		},
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(time.Second),
		retry.MaxDelay(time.Minute),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Uint("attempt", n+1).Err(err).Int("page", page).Msg("Retrying activity page fetch")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity page %d: %w", page, err)
	}

	log.Debug().Int("page", page).Int("count", len(batch)).Msg("Fetched activity page")
	return batch, nil
}
