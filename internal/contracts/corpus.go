// Package contracts aggregates the per-module endpoint contract corpus and seeds it
// into a contract repository.
package contracts

import (
	"context"
	"errors"
	"fmt"

	"github.com/omniwork/contracthub/internal/contract"
	"github.com/omniwork/contracthub/internal/contracts/accounts"
	"github.com/omniwork/contracthub/internal/contracts/assets"
	"github.com/omniwork/contracthub/internal/contracts/crm"
	"github.com/omniwork/contracthub/internal/contracts/finance"
	"github.com/omniwork/contracthub/internal/contracts/hr"
	"github.com/omniwork/contracthub/internal/contracts/manufacturing"
	"github.com/omniwork/contracthub/internal/contracts/support"
)

// All returns the full seed corpus of endpoint contract descriptors
func All() []*contract.Create {
	var corpus []*contract.Create
	corpus = append(corpus, accounts.Descriptors()...)
	corpus = append(corpus, assets.Descriptors()...)
	corpus = append(corpus, crm.Descriptors()...)
	corpus = append(corpus, finance.Descriptors()...)
	corpus = append(corpus, hr.Descriptors()...)
	corpus = append(corpus, manufacturing.Descriptors()...)
	corpus = append(corpus, support.Descriptors()...)
	return corpus
}

// Seed registers every corpus descriptor that is not yet present in the given repository.
// Already registered routes are skipped; the amount of newly registered contracts is returned.
func Seed(ctx context.Context, repo contract.Repository) (int, error) {
	registered := 0
	for _, create := range All() {
		if err := create.Validate(); err != nil {
			return registered, fmt.Errorf("invalid corpus descriptor '%s %s': %w", create.Method, create.Path, err)
		}
		if _, err := repo.Create(ctx, create); err != nil {
			if errors.Is(err, contract.ErrDuplicateRoute) {
				continue
			}
			return registered, err
		}
		registered++
	}
	return registered, nil
}
