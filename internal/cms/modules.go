package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/storage/db"
)

// OrderUpdate is one entry of a module reorder.
type OrderUpdate struct {
	ID    string `json:"id"`
	Order int64  `json:"order"`
}

func moduleList(rows []db.Module) []content.Module {
	out := make([]content.Module, 0, len(rows))
	for _, row := range rows {
		m, err := content.ModuleFromRow(row)
		if err != nil {
			slog.Warn("skipping stored module", "module", row.ID, "error", err)
			continue
		}
		out = append(out, m)
	}
	return out
}

func moduleID(id string) (content.ModuleID, error) {
	if id == "" {
		return "", invalid("module id required")
	}
	mid, err := content.ParseModuleID(id)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return mid, nil
}

// ListModules returns every known module ordered for display.
func (s *Service) ListModules(ctx context.Context) ([]content.Module, error) {
	rows, err := s.store.Queries.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return moduleList(rows), nil
}

// ListEnabledModules returns the modules the public page renders.
func (s *Service) ListEnabledModules(ctx context.Context) ([]content.Module, error) {
	rows, err := s.store.Queries.ListEnabledModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled modules: %w", err)
	}
	return moduleList(rows), nil
}

func (s *Service) GetModule(ctx context.Context, id string) (content.Module, error) {
	mid, err := moduleID(id)
	if err != nil {
		return content.Module{}, err
	}
	row, err := s.store.Queries.GetModule(ctx, string(mid))
	if err != nil {
		return content.Module{}, storeErr("get module", "module "+id, err)
	}
	return content.ModuleFromRow(row)
}

// UpdateModule patches enabled, order and content independently.
func (s *Service) UpdateModule(ctx context.Context, patch content.ModulePatch) (content.Module, error) {
	if _, err := moduleID(patch.ID); err != nil {
		return content.Module{}, err
	}
	params, err := patch.Params()
	if err != nil {
		return content.Module{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	row, err := s.store.Queries.UpdateModule(ctx, params)
	if err != nil {
		return content.Module{}, storeErr("update module", "module "+patch.ID, err)
	}
	slog.Info("module updated", "id", row.ID, "content", params.Content.Valid)
	return content.ModuleFromRow(row)
}

// ToggleModule flips only the enabled flag and returns the full list.
func (s *Service) ToggleModule(ctx context.Context, id string, enabled bool) ([]content.Module, error) {
	mid, err := moduleID(id)
	if err != nil {
		return nil, err
	}
	n, err := s.store.Queries.SetModuleEnabled(ctx, db.SetModuleEnabledParams{Enabled: enabled, ID: string(mid)})
	if err != nil {
		return nil, fmt.Errorf("toggle module: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: module %s", ErrNotFound, id)
	}
	slog.Info("module toggled", "id", id, "enabled", enabled)
	return s.ListModules(ctx)
}

// ReorderModules sets every display order in one transaction.
func (s *Service) ReorderModules(ctx context.Context, updates []OrderUpdate) ([]content.Module, error) {
	if len(updates) == 0 {
		return nil, invalid("reorder requires at least one module")
	}
	for _, u := range updates {
		if _, err := moduleID(u.ID); err != nil {
			return nil, err
		}
	}

	err := s.store.InTx(ctx, func(q *db.Queries) error {
		for _, u := range updates {
			n, err := q.SetModuleOrder(ctx, db.SetModuleOrderParams{DisplayOrder: u.Order, ID: u.ID})
			if err != nil {
				return fmt.Errorf("set module order: %w", err)
			}
			if n == 0 {
				return fmt.Errorf("%w: module %s", ErrNotFound, u.ID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("modules reordered", "count", len(updates))
	return s.ListModules(ctx)
}

// BulkUpdateModules writes every module wholesale in one transaction.
func (s *Service) BulkUpdateModules(ctx context.Context, modules []content.Module) ([]content.Module, error) {
	if len(modules) == 0 {
		return nil, invalid("bulk update requires at least one module")
	}

	err := s.store.InTx(ctx, func(q *db.Queries) error {
		for _, m := range modules {
			if _, err := q.UpdateModule(ctx, content.ModuleRow(m)); err != nil {
				return storeErr("update module", "module "+string(m.ID), err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Info("modules bulk updated", "count", len(modules))
	return s.ListModules(ctx)
}

// ReplaceModuleItems replaces the item list of the testimonials or faq
// module, or the rows of the comparison module.
func (s *Service) ReplaceModuleItems(ctx context.Context, id string, items json.RawMessage) (content.Module, error) {
	mid, err := moduleID(id)
	if err != nil {
		return content.Module{}, err
	}
	switch mid {
	case content.ModuleTestimonials, content.ModuleFAQ, content.ModuleComparison:
	default:
		return content.Module{}, invalid("module %s has no item list", id)
	}
	if len(items) == 0 {
		return content.Module{}, invalid("items required")
	}

	var updated content.Module
	err = s.store.InTx(ctx, func(q *db.Queries) error {
		row, err := q.GetModule(ctx, string(mid))
		if err != nil {
			return storeErr("get module", "module "+id, err)
		}
		m, err := content.ModuleFromRow(row)
		if err != nil {
			return err
		}
		c, err := content.ReplaceItems(m.Content, items)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		m.Content = c
		row, err = q.UpdateModule(ctx, content.ModuleRow(m))
		if err != nil {
			return storeErr("update module", "module "+id, err)
		}
		updated, err = content.ModuleFromRow(row)
		return err
	})
	if err != nil {
		return content.Module{}, err
	}
	slog.Info("module items replaced", "id", id, "batch", ImportBatch(ctx))
	return updated, nil
}
