package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lmoraes/dexbook/internal/catalog"
)

// ErrEmptyCategory means a category has no members, so no item can be picked.
var ErrEmptyCategory = errors.New("category has no members")

type CatalogClient interface {
	ListCategories(ctx context.Context) ([]catalog.Category, error)
	ListMembers(ctx context.Context, categoryID string) ([]catalog.Member, error)
	GetDetail(ctx context.Context, ref string) (catalog.Detail, error)
	GetDescription(ctx context.Context, ref string) (catalog.Description, error)
}

// ItemSummary is the minimal record a display slot needs. DetailRef keys the
// follow-up detail and description fetches when an overlay opens.
type ItemSummary struct {
	ID        int
	Name      string
	ImageURL  string
	DetailRef string
	Category  string
}

type Service struct {
	client CatalogClient
	pickFn func(n int) int
}

func NewService(client CatalogClient) *Service {
	return &Service{client: client, pickFn: rand.IntN}
}

func (s *Service) Categories(ctx context.Context) ([]catalog.Category, error) {
	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return categories, nil
}

// Refresh picks one member of the category uniformly at random and resolves
// it to an ItemSummary. The membership fetch strictly precedes the detail
// fetch.
func (s *Service) Refresh(ctx context.Context, categoryID string) (ItemSummary, error) {
	members, err := s.client.ListMembers(ctx, categoryID)
	if err != nil {
		return ItemSummary{}, fmt.Errorf("fetch members of %s: %w", categoryID, err)
	}
	if len(members) == 0 {
		return ItemSummary{}, fmt.Errorf("category %s: %w", categoryID, ErrEmptyCategory)
	}

	member := members[s.pickFn(len(members))]
	detail, err := s.client.GetDetail(ctx, member.DetailRef)
	if err != nil {
		return ItemSummary{}, fmt.Errorf("fetch detail of %s: %w", member.DetailRef, err)
	}

	return ItemSummary{
		ID:        detail.ID,
		Name:      detail.Name,
		ImageURL:  detail.ImageURL,
		DetailRef: member.DetailRef,
		Category:  categoryID,
	}, nil
}

func (s *Service) Detail(ctx context.Context, ref string) (catalog.Detail, error) {
	detail, err := s.client.GetDetail(ctx, ref)
	if err != nil {
		return catalog.Detail{}, fmt.Errorf("fetch detail of %s: %w", ref, err)
	}
	return detail, nil
}

func (s *Service) Description(ctx context.Context, ref string) (catalog.Description, error) {
	description, err := s.client.GetDescription(ctx, ref)
	if err != nil {
		return catalog.Description{}, fmt.Errorf("fetch description of %s: %w", ref, err)
	}
	return description, nil
}
