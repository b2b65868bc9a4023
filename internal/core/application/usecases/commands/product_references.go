package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
)

// verifyProductReferences fails with errs.InvalidReferenceError unless every uid names an
// existing product. Duplicates are counted once. An empty list needs no lookup.
func verifyProductReferences(ctx context.Context, repo ports.ProductRepository, uids []kernel.UID) error {
	unique := make([]kernel.UID, 0, len(uids))
	seen := make(map[string]struct{}, len(uids))
	for _, uid := range uids {
		if _, ok := seen[uid.String()]; ok {
			continue
		}
		seen[uid.String()] = struct{}{}
		unique = append(unique, uid)
	}

	if len(unique) == 0 {
		return nil
	}

	found, err := repo.FindByUIDs(ctx, unique)
	if err != nil {
		return err
	}
	if len(found) >= len(unique) {
		return nil
	}

	existing := make(map[string]struct{}, len(found))
	for _, uid := range found {
		existing[uid.String()] = struct{}{}
	}
	missing := make([]string, 0, len(unique)-len(found))
	for _, uid := range unique {
		if _, ok := existing[uid.String()]; !ok {
			missing = append(missing, uid.String())
		}
	}

	return errs.NewInvalidReferenceError("productUids", missing...)
}
