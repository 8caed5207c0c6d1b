package cms

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loganlanou/reviewhub/internal/content"
)

// GetSite returns the site config singleton with defaults filled in.
func (s *Service) GetSite(ctx context.Context) (content.SiteConfig, error) {
	row, err := s.store.Queries.GetSiteConfig(ctx)
	if err != nil {
		return content.SiteConfig{}, storeErr("get site config", "site config", err)
	}
	return content.SiteConfigFromRow(row), nil
}

// UpdateSite applies the patch in a single row update. Changed groups are
// computed against the current document for the audit log only.
func (s *Service) UpdateSite(ctx context.Context, patch content.SiteConfigPatch) (content.SiteConfig, error) {
	if patch.ID == "" {
		return content.SiteConfig{}, invalid("site config id required")
	}

	current, err := s.GetSite(ctx)
	if err != nil {
		return content.SiteConfig{}, err
	}
	changed := patch.ChangedGroups(current)

	row, err := s.store.Queries.UpdateSiteConfig(ctx, patch.Params(patch.ID))
	if err != nil {
		return content.SiteConfig{}, storeErr("update site config", "site config "+patch.ID, err)
	}
	slog.Info("site config updated", "id", row.ID, "changed", changed)
	return content.SiteConfigFromRow(row), nil
}

// AISettings returns the generation settings from the site config.
func (s *Service) AISettings(ctx context.Context) (content.AISettings, error) {
	site, err := s.GetSite(ctx)
	if err != nil {
		return content.AISettings{}, fmt.Errorf("load ai settings: %w", err)
	}
	return site.AI, nil
}
