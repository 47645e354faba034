// workers/player_sync_worker.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"nation-game-server/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileFromSync matches the JSON shape of the profile sync service.
type profileFromSync struct {
	ExternalID  string    `json:"external_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"profile_picture_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type profileChangesResponse struct {
	Profiles []profileFromSync `json:"profiles"`
}

// PlayerSyncWorker mirrors player profiles from the central profile
// service into the local player_mirrors table, so the game engine can
// decorate responses without a cross-service call per request.
type PlayerSyncWorker struct {
	db           *gorm.DB
	interval     time.Duration
	baseURL      string
	endpointPath string
	serviceToken string
	httpClient   *http.Client
}

func NewPlayerSyncWorker(db *gorm.DB, syncServiceBaseURL, endpointPath, serviceToken string) *PlayerSyncWorker {
	return &PlayerSyncWorker{
		db:           db,
		interval:     1 * time.Minute,
		baseURL:      syncServiceBaseURL,
		endpointPath: endpointPath,
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (w *PlayerSyncWorker) Start(ctx context.Context) {
	log.Println("🔁 Starting Player Sync Worker (profile service → player_mirrors)…")
	go w.run(ctx)
}

func (w *PlayerSyncWorker) run(ctx context.Context) {
	// Initial backfill from the beginning of time.
	if err := w.syncBatch(ctx, time.Time{}); err != nil {
		log.Printf("⚠️ Initial player sync failed: %v", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.syncBatch(ctx, w.lastSyncTime()); err != nil {
				log.Printf("❌ Player sync batch failed: %v", err)
			}
		case <-ctx.Done():
			log.Println("⏹️ Player Sync Worker stopped")
			return
		}
	}
}

// lastSyncTime finds the most recent SyncedAt in the local mirror table.
func (w *PlayerSyncWorker) lastSyncTime() time.Time {
	var lastTime time.Time
	err := w.db.Raw("SELECT MAX(synced_at) FROM player_mirrors").Scan(&lastTime).Error
	if err != nil || lastTime.IsZero() {
		return time.Unix(0, 0)
	}
	return lastTime
}

// syncBatch fetches profile changes since the watermark and upserts them.
func (w *PlayerSyncWorker) syncBatch(ctx context.Context, since time.Time) error {
	sinceStr := since.UTC().Format(time.RFC3339)

	base, err := url.Parse(w.baseURL)
	if err != nil {
		return fmt.Errorf("invalid profile sync URL '%s': %w", w.baseURL, err)
	}
	endpointURL := base.JoinPath(w.endpointPath)
	q := endpointURL.Query()
	q.Set("since", sinceStr)
	endpointURL.RawQuery = q.Encode()
	finalURL := endpointURL.String()

	req, err := http.NewRequestWithContext(ctx, "GET", finalURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request to %s: %w", finalURL, err)
	}
	req.Header.Set("X-Service-Token", w.serviceToken)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request to profile sync service failed: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("profile sync service non-200 response: %d — %s", resp.StatusCode, string(body))
	}

	var response profileChangesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode profile sync response: %w", err)
	}

	if len(response.Profiles) == 0 {
		return nil
	}

	var upsertCount, errorCount int
	for _, remote := range response.Profiles {
		mirror := models.PlayerMirror{
			PlayerID:    remote.ExternalID,
			Username:    remote.Username,
			DisplayName: remote.DisplayName,
			AvatarURL:   remote.AvatarURL,
			SyncedAt:    remote.UpdatedAt,
		}

		if err := w.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "player_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username", "display_name", "avatar_url", "synced_at",
			}),
		}).Create(&mirror).Error; err != nil {
			errorCount++
			log.Printf("[SYNC] ⚠️ Failed to upsert player mirror (player_id=%q): %v", remote.ExternalID, err)
		} else {
			upsertCount++
		}
	}

	log.Printf("[SYNC] ✅ Player sync: %d upserted, %d failed (since %s)", upsertCount, errorCount, sinceStr)
	return nil
}
